package main

import (
	"go.uber.org/zap"

	"weddinghub/internal/config"
	"weddinghub/internal/content"
	"weddinghub/internal/db"
	"weddinghub/internal/handler"
	"weddinghub/internal/httpserver"
	"weddinghub/internal/repository"
	"weddinghub/internal/service"
	"weddinghub/pkg/logger"
	"weddinghub/pkg/mq"
	"weddinghub/pkg/ratelimit"
	"weddinghub/pkg/redis"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// 3. Init RabbitMQ publisher for rsvp.created events
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("MQ publisher initialization failed", zap.Error(err))
	}
	defer publisher.Close()

	// 4. Init redis-backed rate limiter
	rdb := redis.NewClient(cfg.Redis)
	defer rdb.Close()
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window())

	// 5. Init repositories and document stores
	guestRepo := repository.NewGuestRepository(dbConn)
	rsvpRepo := repository.NewRSVPRepository(dbConn)
	wipRepo := repository.NewWipToggleRepository(dbConn)

	photoStore := content.NewPhotoStore(cfg.Content.Dir, cfg.Content.PhotosDir, log)
	timelineStore := content.NewTimelineStore(cfg.Content.Dir, cfg.Content.PhotosDir, log)
	siteConfigStore := content.NewSiteConfigStore(cfg.Content.Dir, log)

	// 6. Init services
	authService := service.NewAuthService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret)
	verificationService := service.NewVerificationService(guestRepo, rsvpRepo, log)
	rsvpService := service.NewRSVPService(guestRepo, rsvpRepo, publisher, log)

	// 7. Init handlers and router
	router := httpserver.NewRouter(httpserver.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Verification: handler.NewVerificationHandler(verificationService, log),
		RSVP:         handler.NewRSVPHandler(rsvpService, log),
		RSVPAdmin:    handler.NewRSVPAdminHandler(rsvpRepo, log),
		Guest:        handler.NewGuestHandler(guestRepo, log),
		Photo:        handler.NewPhotoHandler(photoStore, log),
		Timeline:     handler.NewTimelineHandler(timelineStore, log),
		SiteConfig:   handler.NewSiteConfigHandler(siteConfigStore, log),
		WeddingParty: handler.NewWeddingPartyHandler(photoStore, log),
		Wip:          handler.NewWipHandler(wipRepo, log),
		Media:        handler.NewMediaHandler(photoStore, log),
	}, limiter, cfg.Admin.JWTSecret)

	// 8. Run server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
