package model

import "time"

// Guest is an invited party on the guest list. Identity toward RSVPs is
// informal: RSVPs are matched by case-insensitive name, not by id.
type Guest struct {
	ID          int       `json:"id"`
	GuestName   string    `json:"guest_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	PartySize   int       `json:"party_size"`
	PlusOneName string    `json:"plus_one_name"`
	Side        string    `json:"side"`
	Notes       string    `json:"notes"`
	Invited     bool      `json:"invited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
