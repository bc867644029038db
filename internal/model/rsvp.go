package model

import "time"

// RSVP is a submitted response. GuestID is filled when the submission
// went through verification; older rows may carry nil and are still
// found by the name-based lookup. The current status for a name is the
// most recently created row.
type RSVP struct {
	ID                  int       `json:"id"`
	GuestID             *int      `json:"guest_id"`
	GuestName           string    `json:"guest_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Attending           bool      `json:"attending"`
	NumberOfGuests      int       `json:"number_of_guests"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	Message             string    `json:"message"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
