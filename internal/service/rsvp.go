package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	mqcontracts "weddinghub/contracts/mq"
	"weddinghub/internal/model"
	"weddinghub/pkg/metrics"
)

// ErrMissingFields is returned when a submission lacks a required field.
var ErrMissingFields = errors.New("missing required fields")

// RSVPWriter is the slice of the RSVP repository submissions need.
type RSVPWriter interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	Update(ctx context.Context, rsvp *model.RSVP) error
}

// EventPublisher publishes domain events; failures are best-effort.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Submission is one RSVP form post. RSVPID is set when the caller is
// editing the response found during verification; otherwise a new row
// is created.
type Submission struct {
	RSVPID              *int
	GuestName           string
	Email               string
	Phone               string
	Attending           bool
	GuestCount          int
	DietaryRestrictions string
	Message             string
}

// RSVPService persists submissions and emits the rsvp.created event
// consumed by the email notifier.
type RSVPService struct {
	guests    GuestFinder
	rsvps     RSVPWriter
	publisher EventPublisher
	logger    *zap.Logger
}

func NewRSVPService(guests GuestFinder, rsvps RSVPWriter, publisher EventPublisher, logger *zap.Logger) *RSVPService {
	return &RSVPService{
		guests:    guests,
		rsvps:     rsvps,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit validates and persists one submission. Created reports whether
// a new row was inserted (as opposed to an in-place update). Guest
// counts are forced to zero when not attending and clamped to the
// invited party size, so a client cannot claim more seats than the
// guest list grants.
func (s *RSVPService) Submit(ctx context.Context, sub Submission) (rsvp *model.RSVP, created bool, err error) {
	sub.GuestName = strings.TrimSpace(sub.GuestName)
	if sub.GuestName == "" || sub.Email == "" {
		return nil, false, ErrMissingFields
	}

	guest, err := s.guests.FindInvitedByName(ctx, sub.GuestName)
	if err != nil {
		return nil, false, err
	}

	count := sub.GuestCount
	if !sub.Attending {
		count = 0
	} else {
		if count < 1 {
			count = 1
		}
		if guest != nil && count > guest.PartySize {
			s.logger.Warn("Clamping RSVP guest count to invited party size",
				zap.String("guest_name", sub.GuestName),
				zap.Int("requested", count),
				zap.Int("party_size", guest.PartySize),
			)
			count = guest.PartySize
		}
	}

	rsvp = &model.RSVP{
		GuestName:           sub.GuestName,
		Email:               sub.Email,
		Phone:               sub.Phone,
		Attending:           sub.Attending,
		NumberOfGuests:      count,
		DietaryRestrictions: sub.DietaryRestrictions,
		Message:             sub.Message,
	}
	if guest != nil {
		id := guest.ID
		rsvp.GuestID = &id
	}

	if sub.RSVPID != nil {
		rsvp.ID = *sub.RSVPID
		if err := s.rsvps.Update(ctx, rsvp); err != nil {
			return nil, false, err
		}
		metrics.IncrementRSVPSubmission("update")
		s.logger.Info("RSVP updated",
			zap.Int("rsvp_id", rsvp.ID),
			zap.String("guest_name", rsvp.GuestName),
			zap.Bool("attending", rsvp.Attending),
		)
		return rsvp, false, nil
	}

	if err := s.rsvps.Create(ctx, rsvp); err != nil {
		return nil, false, err
	}
	metrics.IncrementRSVPSubmission("create")
	s.logger.Info("RSVP created",
		zap.Int("rsvp_id", rsvp.ID),
		zap.String("guest_name", rsvp.GuestName),
		zap.Bool("attending", rsvp.Attending),
		zap.Int("number_of_guests", rsvp.NumberOfGuests),
	)

	// Fire and forget: a notification failure never undoes the write.
	payload := mqcontracts.RSVPCreatedPayload{
		RSVPID:              rsvp.ID,
		GuestName:           rsvp.GuestName,
		Email:               rsvp.Email,
		Attending:           rsvp.Attending,
		NumberOfGuests:      rsvp.NumberOfGuests,
		DietaryRestrictions: rsvp.DietaryRestrictions,
		Message:             rsvp.Message,
		CreatedAt:           rsvp.CreatedAt,
	}
	if err := s.publisher.Publish(mqcontracts.RSVPCreatedKey, payload); err != nil {
		s.logger.Error("Failed to publish rsvp.created event",
			zap.Int("rsvp_id", rsvp.ID),
			zap.Error(err),
		)
	}

	return rsvp, true, nil
}
