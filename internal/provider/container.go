package provider

import (
	"github.com/dumo-express/internal/cache"
	"github.com/dumo-express/internal/config"
	"github.com/dumo-express/internal/logger"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/queue"
	"github.com/dumo-express/internal/repository"
	"github.com/dumo-express/internal/service"
)

// Container wires repositories and services for the handlers.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo   repository.AdminRepository
	ParcelRepo  repository.ParcelRepository
	BookingRepo repository.BookingRepository
	ContactRepo repository.ContactRepository

	// Services
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	NotificationService *service.NotificationService
	TrackingService     *service.TrackingService
	BookingService      *service.BookingService
	ContactService      *service.ContactService
	PricingService      *service.PricingService
	CaptchaService      *service.CaptchaService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ParcelRepo = repository.NewParcelRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.NotificationService = service.NewNotificationService(c.EmailService, c.QueueClient, c.Config.Notify.OperatorEmail)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.TrackingService = service.NewTrackingService(c.ParcelRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.NotificationService)
	c.ContactService = service.NewContactService(c.ContactRepo, c.NotificationService)
	c.PricingService = service.NewPricingService()
}
