package mqhandler

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	mqcontracts "weddinghub/contracts/mq"
	"weddinghub/internal/mailer"
	"weddinghub/pkg/metrics"
)

// RSVPCreatedHandler consumes rsvp.created events and sends the
// notification emails. Delivery is best-effort: failures are logged
// and the message is acked anyway, never retried against the guest.
type RSVPCreatedHandler struct {
	mailer *mailer.Mailer
	logger *zap.Logger
}

func NewRSVPCreatedHandler(m *mailer.Mailer, logger *zap.Logger) *RSVPCreatedHandler {
	return &RSVPCreatedHandler{
		mailer: m,
		logger: logger,
	}
}

func (h *RSVPCreatedHandler) HandleRSVPCreated(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.RSVPCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal rsvp.created payload", zap.Error(err))
		// Malformed payloads would fail forever; drop them.
		return nil
	}

	if !h.mailer.Configured() {
		h.logger.Info("Mailer not configured, skipping RSVP emails",
			zap.Int("rsvp_id", p.RSVPID),
		)
		return nil
	}

	if err := h.mailer.SendRSVPConfirmation(p); err != nil {
		metrics.IncrementEmailSent("failed")
		h.logger.Error("Failed to send RSVP confirmation email",
			zap.Int("rsvp_id", p.RSVPID),
			zap.String("guest_name", p.GuestName),
			zap.Error(err),
		)
	} else {
		metrics.IncrementEmailSent("success")
		h.logger.Info("RSVP confirmation email sent",
			zap.Int("rsvp_id", p.RSVPID),
			zap.String("guest_name", p.GuestName),
		)
	}

	if err := h.mailer.SendCoupleNotification(p); err != nil {
		metrics.IncrementEmailSent("failed")
		h.logger.Error("Failed to send couple notification email",
			zap.Int("rsvp_id", p.RSVPID),
			zap.Error(err),
		)
	}

	return nil
}
