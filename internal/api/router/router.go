package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/api/handler"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/api/middleware"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/ratelimit"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	repo *repository.Repository,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	// file uploads dominate body size; cap at the PDF ceiling plus
	// multipart overhead
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSizeBytes() + 1<<20))

	// ── operational endpoints ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.JWTAuth(jwtMgr, rdb, repo.User)

	// ── API ──
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(limiter, logger), h.Auth.Login)
			auth.GET("/me", authRequired, h.Auth.GetMe)
			auth.POST("/logout", authRequired, h.Auth.Logout)
		}

		events := api.Group("/events")
		{
			events.GET("", h.Event.List)
			events.GET("/:id", h.Event.GetByID)
			events.POST("", authRequired, h.Event.Create)
			events.PUT("/:id", authRequired, h.Event.Update)
			events.DELETE("/:id", authRequired, h.Event.Delete)
		}

		registrations := api.Group("/registrations")
		{
			registrations.POST("", h.Registration.Create)
			registrations.GET("", authRequired, h.Registration.List)
			registrations.GET("/export/csv", authRequired, h.Registration.ExportCSV)
			registrations.GET("/export/xlsx", authRequired, h.Registration.ExportXLSX)
			registrations.GET("/:id", authRequired, h.Registration.GetByID)
		}

		teams := api.Group("/hackathon-teams")
		{
			teams.POST("", h.Team.Create)
			teams.GET("", h.Team.List)
			teams.GET("/:id", h.Team.GetByID)
		}

		resources := api.Group("/resources")
		{
			resources.GET("", h.Resource.List)
			resources.GET("/:id", h.Resource.GetByID)
			resources.GET("/:id/download", h.Resource.Download)
			resources.POST("", authRequired, h.Resource.Create)
			resources.PUT("/:id", authRequired, h.Resource.Update)
			resources.DELETE("/:id", authRequired, h.Resource.Delete)
		}
	}

	return r
}
