package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/logger"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/queue"

	"github.com/hibiken/asynq"
)

// NotificationService turns domain events into operator alerts. Every
// path is best-effort: failures are logged and swallowed so intake
// operations never fail because of the notifier.
type NotificationService struct {
	emailService  *EmailService
	queueClient   *queue.Client
	operatorEmail string
}

// NewNotificationService creates a notifier. When the queue client is
// inert, alerts are sent inline on a background goroutine.
func NewNotificationService(emailService *EmailService, queueClient *queue.Client, operatorEmail string) *NotificationService {
	return &NotificationService{
		emailService:  emailService,
		queueClient:   queueClient,
		operatorEmail: strings.TrimSpace(operatorEmail),
	}
}

// NotifyBooking alerts the operator about a new booking and sends the
// customer a confirmation.
func (s *NotificationService) NotifyBooking(booking *models.Booking) {
	if s == nil || booking == nil {
		return
	}

	title := fmt.Sprintf("New Booking: %s - %s", booking.BookingRef, booking.CustomerName)
	content := fmt.Sprintf(
		"A new booking was submitted.\n\n"+
			"Booking reference: %s\n"+
			"Tracking number: %s\n"+
			"Customer: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Service: %s\n"+
			"Pickup: %s\n"+
			"Delivery: %s\n"+
			"Weight: %s\n"+
			"Scheduled: %s\n"+
			"Instructions: %s\n",
		booking.BookingRef,
		booking.TrackingNumber,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		ServiceTypeLabel(booking.ServiceType),
		booking.PickupAddress,
		booking.DeliveryAddress,
		booking.PackageWeight,
		formatOptionalTime(booking.ScheduledDate),
		booking.SpecialInstructions,
	)
	s.dispatch(queue.TaskBookingNotify, title, content)

	go func() {
		err := s.emailService.SendBookingConfirmation(
			booking.CustomerEmail,
			booking.BookingRef,
			booking.TrackingNumber,
			ServiceTypeLabel(booking.ServiceType),
		)
		if err != nil && !errors.Is(err, ErrEmailServiceDisabled) {
			logger.Warnw("booking_confirmation_send_failed",
				"booking_ref", booking.BookingRef,
				"error", err,
			)
		}
	}()
}

// NotifyContact alerts the operator about a new contact inquiry.
func (s *NotificationService) NotifyContact(inquiry *models.ContactInquiry) {
	if s == nil || inquiry == nil {
		return
	}

	title := fmt.Sprintf("New Inquiry: %s", inquiry.Subject)
	content := fmt.Sprintf(
		"A new contact inquiry was submitted.\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Subject: %s\n\n"+
			"%s\n",
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Subject,
		inquiry.Message,
	)
	s.dispatch(queue.TaskContactNotify, title, content)
}

// DeliverOperatorAlert performs the actual send. Called by the worker
// for queued tasks and by dispatch on the inline fallback. A disabled
// email service is a normal outcome, not a task failure.
func (s *NotificationService) DeliverOperatorAlert(title, content string) error {
	if s == nil || s.emailService == nil || s.operatorEmail == "" {
		return nil
	}
	err := s.emailService.SendOperatorAlert(s.operatorEmail, title, content)
	if errors.Is(err, ErrEmailServiceDisabled) || errors.Is(err, ErrEmailServiceNotConfigured) {
		return nil
	}
	return err
}

func (s *NotificationService) dispatch(taskType, title, content string) {
	title = truncateForNotify(title, constants.NotifyTitleMaxLen)
	content = truncateForNotify(content, constants.NotifyContentMaxLen)

	if s.queueClient.Enabled() {
		payload := queue.OperatorNotifyPayload{Title: title, Content: content}
		var err error
		switch taskType {
		case queue.TaskContactNotify:
			err = s.queueClient.EnqueueContactNotify(payload, asynq.MaxRetry(3))
		default:
			err = s.queueClient.EnqueueBookingNotify(payload, asynq.MaxRetry(3))
		}
		if err == nil {
			return
		}
		logger.Warnw("notify_enqueue_failed",
			"task", taskType,
			"error", err,
		)
	}

	// Inline fallback off the request path. The SMTP dial timeout
	// bounds how long the goroutine can hang.
	go func() {
		if err := s.DeliverOperatorAlert(title, content); err != nil {
			logger.Warnw("notify_send_failed",
				"task", taskType,
				"error", err,
			)
		}
	}()
}

func truncateForNotify(value string, maxLen int) string {
	if maxLen <= 0 || len(value) <= maxLen {
		return value
	}
	return value[:maxLen]
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "not scheduled"
	}
	return t.Format("2006-01-02 15:04")
}
