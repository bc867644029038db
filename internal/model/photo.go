package model

// Photo is a record in the photos.json document. ID is derived from the
// upload time in unix milliseconds. Filename joins the record to the
// physical file; Hearted marks it for the public gallery; Order defines
// the display sequence.
type Photo struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	Alt         string `json:"alt"`
	Category    string `json:"category"`
	Hearted     bool   `json:"hearted"`
	Order       int    `json:"order"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
