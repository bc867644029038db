package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weddinghub/internal/handler"
	"weddinghub/pkg/ratelimit"
)

type Router struct {
	Engine *gin.Engine
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Verification *handler.VerificationHandler
	RSVP         *handler.RSVPHandler
	RSVPAdmin    *handler.RSVPAdminHandler
	Guest        *handler.GuestHandler
	Photo        *handler.PhotoHandler
	Timeline     *handler.TimelineHandler
	SiteConfig   *handler.SiteConfigHandler
	WeddingParty *handler.WeddingPartyHandler
	Wip          *handler.WipHandler
	Media        *handler.MediaHandler
}

func NewRouter(h Handlers, limiter *ratelimit.Limiter, jwtSecret string) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/api/guest-verification",
		RateLimitMiddleware(limiter, "guest-verification"), h.Verification.Verify)
	r.POST("/api/rsvp",
		RateLimitMiddleware(limiter, "rsvp"), h.RSVP.Submit)
	r.GET("/api/wip-status", h.Wip.Status)
	r.GET("/api/gallery", h.Photo.Gallery)
	r.GET("/api/timeline", h.Timeline.List)
	r.GET("/api/site-config", h.SiteConfig.Get)
	r.GET("/api/photos/:filename", h.Media.Serve)

	r.POST("/api/auth/login", h.Auth.Login)
	r.GET("/api/auth/check", h.Auth.Check)
	r.POST("/api/auth/logout", h.Auth.Logout)

	// Admin
	admin := r.Group("/api/admin")
	admin.Use(AdminAuthMiddleware(jwtSecret))
	{
		admin.GET("/guest-list", h.Guest.List)
		admin.POST("/guest-list", h.Guest.Create)
		admin.PUT("/guest-list", h.Guest.Update)
		admin.DELETE("/guest-list", h.Guest.Delete)

		admin.GET("/rsvps", h.RSVPAdmin.List)
		admin.DELETE("/rsvps", h.RSVPAdmin.Delete)

		admin.GET("/photos", h.Photo.List)
		admin.POST("/photos", h.Photo.Upload)
		admin.PATCH("/photos", h.Photo.Update)
		admin.DELETE("/photos", h.Photo.Delete)

		admin.GET("/timeline", h.Timeline.List)
		admin.POST("/timeline", h.Timeline.Create)
		admin.PUT("/timeline", h.Timeline.Update)
		admin.DELETE("/timeline", h.Timeline.Delete)

		admin.POST("/wedding-party/photo", h.WeddingParty.UploadPhoto)
		admin.DELETE("/wedding-party/photo", h.WeddingParty.DeletePhoto)

		admin.POST("/site-config", h.SiteConfig.Update)

		admin.GET("/wip-toggles", h.Wip.List)
		admin.POST("/wip-toggles", h.Wip.Upsert)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
