package main

import (
	"go.uber.org/zap"

	mqcontracts "weddinghub/contracts/mq"
	"weddinghub/internal/config"
	"weddinghub/internal/mailer"
	"weddinghub/internal/mqhandler"
	"weddinghub/pkg/logger"
	"weddinghub/pkg/mq"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	if cfg.Mail.SendGridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY not set, emails will be skipped")
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, "rsvp.created.notify.q", mqcontracts.RSVPCreatedKey, log)
	if err != nil {
		log.Fatal("MQ consumer initialization failed", zap.Error(err))
	}
	defer consumer.Close()

	h := mqhandler.NewRSVPCreatedHandler(mailer.New(cfg.Mail, log), log)
	consumer.SetHandler(h.HandleRSVPCreated)

	log.Info("Notifier started")
	if err := consumer.StartConsuming(); err != nil {
		log.Fatal("consumer start failed", zap.Error(err))
	}
}
