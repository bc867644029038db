package model

type ScheduleEvent struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type WeddingPartyMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Relationship string `json:"relationship"`
	Photo        string `json:"photo,omitempty"`
	PhotoAlign   string `json:"photoAlign,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

type WeddingParty struct {
	BrideParty []WeddingPartyMember `json:"brideParty"`
	GroomParty []WeddingPartyMember `json:"groomParty"`
	Officiant  *WeddingPartyMember  `json:"officiant,omitempty"`
}

// SiteConfig is the single site.json document. Updates are a shallow
// merge: a top-level field present in the patch replaces the stored
// value wholesale, nested structures included.
type SiteConfig struct {
	BrideName       string `json:"brideName"`
	GroomName       string `json:"groomName"`
	WeddingDate     string `json:"weddingDate"`
	WeddingLocation string `json:"weddingLocation"`
	WeddingVenue    string `json:"weddingVenue,omitempty"`
	WeddingTime     string `json:"weddingTime"`
	RSVPDeadline    string `json:"rsvpDeadline,omitempty"`
	CountdownMode   string `json:"countdownMode,omitempty"`

	HomeHero       string `json:"homeHero,omitempty"`
	HomeHeadline   string `json:"homeHeadline,omitempty"`
	HomeIntroTitle string `json:"homeIntroTitle,omitempty"`
	HomeIntroBody  string `json:"homeIntroBody,omitempty"`

	AboutHero        string `json:"aboutHero,omitempty"`
	OurStoryTitle    string `json:"ourStoryTitle,omitempty"`
	OurStoryBody     string `json:"ourStoryBody,omitempty"`
	VenueDescription string `json:"venueDescription,omitempty"`

	FAQs           []FAQ           `json:"faqs,omitempty"`
	ScheduleEvents []ScheduleEvent `json:"scheduleEvents,omitempty"`
	WeddingParty   *WeddingParty   `json:"weddingParty,omitempty"`
}

// DefaultSiteConfig is what the read path serves before the document
// has ever been written.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		BrideName:       "Sarah",
		GroomName:       "James",
		WeddingDate:     "June 15, 2024",
		WeddingLocation: "The Garden Estate",
		WeddingTime:     "4:00 PM",
		CountdownMode:   "full",
	}
}
