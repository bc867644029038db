package mq

import "time"

// Routing key for the event published when a new RSVP row is created.
const RSVPCreatedKey = "rsvp.created"

type RSVPCreatedPayload struct {
	RSVPID              int       `json:"rsvp_id"`
	GuestName           string    `json:"guest_name"`
	Email               string    `json:"email"`
	Attending           bool      `json:"attending"`
	NumberOfGuests      int       `json:"number_of_guests"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	Message             string    `json:"message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
