package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/reference"
	"github.com/dumo-express/internal/repository"

	"gorm.io/gorm"
)

// BookingService handles booking intake and the operator booking flow.
type BookingService struct {
	bookingRepo repository.BookingRepository
	notifier    *NotificationService
}

// NewBookingService creates a booking service. The notifier is
// injected so tests can observe or silence outbound alerts.
func NewBookingService(bookingRepo repository.BookingRepository, notifier *NotificationService) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

// CreateBookingInput is the customer booking form payload. ScheduledDate
// is RFC 3339 when present.
type CreateBookingInput struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	PickupAddress       string
	DeliveryAddress     string
	PackageWeight       string
	ServiceType         string
	ScheduledDate       string
	SpecialInstructions string
}

func (in *CreateBookingInput) validate() (*time.Time, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, ErrCustomerNameRequired
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.CustomerEmail)); err != nil {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, ErrCustomerPhoneRequired
	}
	if strings.TrimSpace(in.PickupAddress) == "" {
		return nil, ErrPickupAddressRequired
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, ErrDeliveryAddressRequired
	}
	if strings.TrimSpace(in.PackageWeight) == "" {
		return nil, ErrPackageWeightRequired
	}
	if !isOneOf(in.ServiceType, constants.ServiceTypes) {
		return nil, ErrServiceTypeInvalid
	}
	if raw := strings.TrimSpace(in.ScheduledDate); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, ErrScheduledDateInvalid
		}
		return &parsed, nil
	}
	return nil, nil
}

// Create validates and persists a booking together with its derived
// trackable parcel, then fires a best-effort operator notification.
// The returned booking carries both the booking reference and the
// derived tracking number. Reference issuance is retried on
// duplicate-key conflicts; notification outcome never affects the
// result.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	scheduledDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	estimated := now.AddDate(0, 0, EstimatedDeliveryDays(input.ServiceType))

	var booking *models.Booking
	for attempt := 0; ; attempt++ {
		if attempt >= referenceMaxAttempts {
			return nil, ErrReferenceExhausted
		}
		booking = &models.Booking{
			BookingRef:          reference.BookingRef(),
			CustomerName:        strings.TrimSpace(input.CustomerName),
			CustomerEmail:       strings.TrimSpace(input.CustomerEmail),
			CustomerPhone:       strings.TrimSpace(input.CustomerPhone),
			PickupAddress:       strings.TrimSpace(input.PickupAddress),
			DeliveryAddress:     strings.TrimSpace(input.DeliveryAddress),
			PackageWeight:       strings.TrimSpace(input.PackageWeight),
			ServiceType:         input.ServiceType,
			ScheduledDate:       scheduledDate,
			SpecialInstructions: strings.TrimSpace(input.SpecialInstructions),
			Status:              constants.BookingStatusPending,
			TrackingNumber:      reference.TrackingNumber(),
		}
		parcel := &models.Parcel{
			TrackingNumber:    booking.TrackingNumber,
			SenderName:        booking.CustomerName,
			SenderPhone:       booking.CustomerPhone,
			SenderAddress:     booking.PickupAddress,
			ReceiverName:      "To be assigned",
			ReceiverPhone:     booking.CustomerPhone,
			ReceiverAddress:   booking.DeliveryAddress,
			Weight:            booking.PackageWeight,
			ServiceType:       booking.ServiceType,
			Status:            constants.ParcelStatusCollected,
			EstimatedDelivery: &estimated,
			Notes:             booking.SpecialInstructions,
		}
		firstEntry := &models.ParcelStatusHistory{
			Status:      constants.ParcelStatusCollected,
			Location:    constants.OnlineBookingLocation,
			Description: constants.OnlineBookingCreateDesc,
			Timestamp:   now,
		}
		err := s.bookingRepo.CreateWithParcel(booking, parcel, firstEntry)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	s.notifier.NotifyBooking(booking)
	return booking, nil
}

// CheckResult is the public booking lookup outcome.
type CheckResult struct {
	Found   bool            `json:"found"`
	Booking *models.Booking `json:"booking"`
}

// Check resolves a raw booking reference. Missing bookings are a
// normal result, not an error.
func (s *BookingService) Check(rawBookingRef string) (*CheckResult, error) {
	normalized := NormalizeReference(rawBookingRef)
	if normalized == "" {
		return &CheckResult{Found: false}, nil
	}
	booking, err := s.bookingRepo.GetByRef(normalized)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return &CheckResult{Found: false}, nil
	}
	return &CheckResult{Found: true, Booking: booking}, nil
}

// List returns the admin booking listing.
func (s *BookingService) List(filter repository.BookingListFilter) ([]models.Booking, int64, error) {
	return s.bookingRepo.List(filter)
}

// UpdateStatus advances a booking's status. Operator action only.
func (s *BookingService) UpdateStatus(rawBookingRef, status string) error {
	if !isOneOf(status, constants.BookingStatuses) {
		return ErrBookingStatusInvalid
	}
	normalized := NormalizeReference(rawBookingRef)
	err := s.bookingRepo.UpdateStatus(normalized, status, time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	return err
}
