package service

import (
	"errors"
	"strings"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/reference"
	"github.com/dumo-express/internal/repository"

	"gorm.io/gorm"
)

// referenceMaxAttempts bounds regeneration after duplicate-key inserts.
const referenceMaxAttempts = 5

// TrackingService resolves tracking numbers and maintains the parcel
// status ledger.
type TrackingService struct {
	parcelRepo repository.ParcelRepository
}

// NewTrackingService creates a tracking service.
func NewTrackingService(parcelRepo repository.ParcelRepository) *TrackingService {
	return &TrackingService{parcelRepo: parcelRepo}
}

// TrackResult is the public lookup outcome. A missing parcel is a
// normal result, not an error.
type TrackResult struct {
	Found   bool                         `json:"found"`
	Parcel  *models.Parcel               `json:"parcel"`
	History []models.ParcelStatusHistory `json:"history"`
}

// Track resolves a raw tracking number to the parcel and its full
// timeline. Input is trimmed and upper-cased; matching is exact.
// Read-only and idempotent.
func (s *TrackingService) Track(rawTrackingNumber string) (*TrackResult, error) {
	normalized := NormalizeReference(rawTrackingNumber)
	if normalized == "" {
		return &TrackResult{Found: false, History: []models.ParcelStatusHistory{}}, nil
	}

	parcel, err := s.parcelRepo.GetByTrackingNumber(normalized)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return &TrackResult{Found: false, History: []models.ParcelStatusHistory{}}, nil
	}

	history, err := s.parcelRepo.GetHistory(parcel.ID)
	if err != nil {
		return nil, err
	}
	return &TrackResult{Found: true, Parcel: parcel, History: history}, nil
}

// CreateParcelInput is the admin parcel intake payload.
type CreateParcelInput struct {
	SenderName      string
	SenderPhone     string
	SenderAddress   string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	Weight          string
	ServiceType     string
	Notes           string
}

func (in *CreateParcelInput) validate() error {
	if strings.TrimSpace(in.SenderName) == "" {
		return ErrSenderNameRequired
	}
	if strings.TrimSpace(in.SenderPhone) == "" {
		return ErrSenderPhoneRequired
	}
	if strings.TrimSpace(in.SenderAddress) == "" {
		return ErrSenderAddressRequired
	}
	if strings.TrimSpace(in.ReceiverName) == "" {
		return ErrReceiverNameRequired
	}
	if strings.TrimSpace(in.ReceiverPhone) == "" {
		return ErrReceiverPhoneRequired
	}
	if strings.TrimSpace(in.ReceiverAddress) == "" {
		return ErrReceiverAddressRequired
	}
	if strings.TrimSpace(in.Weight) == "" {
		return ErrWeightRequired
	}
	if !isOneOf(in.ServiceType, constants.ServiceTypes) {
		return ErrServiceTypeInvalid
	}
	return nil
}

// CreateParcel registers a parcel at the hub: status collected, seed
// history entry, fresh tracking number. On a duplicate tracking number
// the whole insert is retried with a new one.
func (s *TrackingService) CreateParcel(input CreateParcelInput) (*models.Parcel, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	estimated := now.AddDate(0, 0, EstimatedDeliveryDays(input.ServiceType))

	for attempt := 0; attempt < referenceMaxAttempts; attempt++ {
		parcel := &models.Parcel{
			TrackingNumber:    reference.TrackingNumber(),
			SenderName:        strings.TrimSpace(input.SenderName),
			SenderPhone:       strings.TrimSpace(input.SenderPhone),
			SenderAddress:     strings.TrimSpace(input.SenderAddress),
			ReceiverName:      strings.TrimSpace(input.ReceiverName),
			ReceiverPhone:     strings.TrimSpace(input.ReceiverPhone),
			ReceiverAddress:   strings.TrimSpace(input.ReceiverAddress),
			Weight:            strings.TrimSpace(input.Weight),
			ServiceType:       input.ServiceType,
			Status:            constants.ParcelStatusCollected,
			EstimatedDelivery: &estimated,
			Notes:             strings.TrimSpace(input.Notes),
		}
		firstEntry := &models.ParcelStatusHistory{
			Status:      constants.ParcelStatusCollected,
			Location:    constants.HubLocation,
			Description: constants.ParcelCreatedDesc,
			Timestamp:   now,
		}
		err := s.parcelRepo.Create(parcel, firstEntry)
		if err == nil {
			return parcel, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, ErrReferenceExhausted
}

// UpdateStatus appends a status transition to a parcel's ledger. The
// repository keeps the history row and the parcel's status column in
// one transaction.
func (s *TrackingService) UpdateStatus(parcelID uint, status, location, description string) error {
	if !isOneOf(status, constants.ParcelStatuses) {
		return ErrParcelStatusInvalid
	}
	parcel, err := s.parcelRepo.GetByID(parcelID)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrParcelNotFound
	}
	return s.parcelRepo.AppendStatus(parcelID, status, strings.TrimSpace(location), strings.TrimSpace(description), time.Now())
}

// ListParcels returns the admin parcel listing.
func (s *TrackingService) ListParcels(filter repository.ParcelListFilter) ([]models.Parcel, int64, error) {
	return s.parcelRepo.List(filter)
}

// NormalizeReference upper-cases and trims a public identifier so
// lookups are case-insensitive from the caller's perspective.
func NormalizeReference(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// EstimatedDeliveryDays maps a service class to its default delivery
// estimate in days.
func EstimatedDeliveryDays(serviceType string) int {
	switch serviceType {
	case constants.ServiceTypeSameDay, constants.ServiceTypeNextDay:
		return 1
	case constants.ServiceTypeScheduled:
		return 3
	case constants.ServiceTypeBulk:
		return 5
	default:
		return 3
	}
}

// ServiceTypeLabel maps a service class to its customer-facing name.
func ServiceTypeLabel(serviceType string) string {
	switch serviceType {
	case constants.ServiceTypeSameDay:
		return "Same-Day Delivery"
	case constants.ServiceTypeNextDay:
		return "Next-Day Delivery"
	case constants.ServiceTypeScheduled:
		return "Scheduled Pickup"
	case constants.ServiceTypeBulk:
		return "Bulk Shipment"
	default:
		return serviceType
	}
}
