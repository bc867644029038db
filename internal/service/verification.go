package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"weddinghub/internal/model"
	"weddinghub/pkg/metrics"
)

// NotOnListMessage is the guidance text returned for names that do not
// match the guest list. Not finding a name is a normal negative result,
// not an error.
const NotOnListMessage = "We could not find your name on our guest list. " +
	"Please check the spelling or contact us if you believe this is an error."

// GuestFinder is the slice of the guest repository verification needs.
type GuestFinder interface {
	FindInvitedByName(ctx context.Context, name string) (*model.Guest, error)
}

// RSVPFinder looks up the current RSVP for a name.
type RSVPFinder interface {
	FindLatestByName(ctx context.Context, name string) (*model.RSVP, error)
}

// GuestInfo is the canonical guest context returned to a verified caller.
type GuestInfo struct {
	Name        string `json:"name"`
	PartySize   int    `json:"party_size"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PlusOneName string `json:"plus_one_name"`
}

// ExistingRSVP surfaces a prior submission so the caller can pre-fill
// an edit form.
type ExistingRSVP struct {
	ID                  int    `json:"id"`
	Attending           bool   `json:"attending"`
	GuestCount          int    `json:"guestCount"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Message             string `json:"message"`
}

type VerificationResult struct {
	Verified     bool          `json:"verified"`
	Message      string        `json:"message,omitempty"`
	Guest        *GuestInfo    `json:"guest,omitempty"`
	ExistingRSVP *ExistingRSVP `json:"existingRsvp"`
}

// VerificationService matches a free-text name against the guest list
// and reconciles it with any prior RSVP.
type VerificationService struct {
	guests GuestFinder
	rsvps  RSVPFinder
	logger *zap.Logger
}

func NewVerificationService(guests GuestFinder, rsvps RSVPFinder, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		guests: guests,
		rsvps:  rsvps,
		logger: logger,
	}
}

// Verify trims the submitted name and matches it case-insensitively
// against invited guests. On a match it also fetches the most recent
// RSVP filed under the same name, purely by string match: a response
// filed under a different spelling stays invisible.
func (s *VerificationService) Verify(ctx context.Context, name string) (*VerificationResult, error) {
	name = strings.TrimSpace(name)

	guest, err := s.guests.FindInvitedByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		metrics.IncrementGuestVerification("not_found")
		return &VerificationResult{
			Verified: false,
			Message:  NotOnListMessage,
		}, nil
	}

	result := &VerificationResult{
		Verified: true,
		Guest: &GuestInfo{
			Name:        guest.GuestName,
			PartySize:   guest.PartySize,
			Email:       guest.Email,
			Phone:       guest.Phone,
			PlusOneName: guest.PlusOneName,
		},
	}

	rsvp, err := s.rsvps.FindLatestByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rsvp != nil {
		result.ExistingRSVP = &ExistingRSVP{
			ID:                  rsvp.ID,
			Attending:           rsvp.Attending,
			GuestCount:          rsvp.NumberOfGuests,
			Email:               rsvp.Email,
			Phone:               rsvp.Phone,
			DietaryRestrictions: rsvp.DietaryRestrictions,
			Message:             rsvp.Message,
		}
	}

	metrics.IncrementGuestVerification("verified")
	s.logger.Info("Guest verified",
		zap.String("guest_name", guest.GuestName),
		zap.Bool("has_existing_rsvp", rsvp != nil),
	)
	return result, nil
}
