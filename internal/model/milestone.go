package model

const (
	DateFormatExact     = "exact"
	DateFormatMonthYear = "month-year"
)

// MilestonePhoto pairs a photo file with its vertical alignment, so the
// two can never drift apart the way independent parallel lists could.
type MilestonePhoto struct {
	Filename string `json:"filename"`
	Align    string `json:"align"`
}

// Milestone is a dated entry on the relationship timeline with up to
// two attached photos.
type Milestone struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Date        string           `json:"date"`
	DateFormat  string           `json:"dateFormat"`
	Description string           `json:"description"`
	Photos      []MilestonePhoto `json:"photos"`
}

// MaxMilestonePhotos caps the number of photos a milestone may carry.
const MaxMilestonePhotos = 2
