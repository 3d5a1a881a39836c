package router

import (
	"fmt"
	"strings"

	"github.com/dumo-express/internal/cache"
	"github.com/dumo-express/internal/config"
	adminhandlers "github.com/dumo-express/internal/http/handlers/admin"
	publichandlers "github.com/dumo-express/internal/http/handlers/public"
	"github.com/dumo-express/internal/logger"
	"github.com/dumo-express/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP routing tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "dumo"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	submitRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:submit", redisPrefix),
		WindowSeconds: cfg.Security.SubmitRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SubmitRateLimit.MaxAttempts,
		Message:       "too many submissions",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/tracking/:tracking_number", publicHandler.TrackParcel)
			public.POST("/bookings", RateLimitMiddleware(redisClient, submitRule, KeyByIP), publicHandler.CreateBooking)
			public.GET("/bookings/:booking_ref", publicHandler.CheckBooking)
			public.POST("/contact", RateLimitMiddleware(redisClient, submitRule, KeyByIP), publicHandler.SubmitContact)
			public.GET("/pricing", publicHandler.GetPricing)
			public.GET("/pricing/quote", publicHandler.QuoteParcel)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/auth/me", adminHandler.GetAuthMe)

				authorized.GET("/parcels", adminHandler.ListParcels)
				authorized.POST("/parcels", adminHandler.CreateParcel)
				authorized.POST("/parcels/:id/status", adminHandler.UpdateParcelStatus)

				authorized.GET("/bookings", adminHandler.ListBookings)
				authorized.POST("/bookings/:booking_ref/status", adminHandler.UpdateBookingStatus)

				authorized.GET("/contact", adminHandler.ListInquiries)
				authorized.POST("/contact/:id/status", adminHandler.UpdateInquiryStatus)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
