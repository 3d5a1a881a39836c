package repository

import (
	"errors"
	"time"

	"github.com/dumo-express/internal/models"

	"gorm.io/gorm"
)

// BookingRepository is the booking data access interface.
type BookingRepository interface {
	CreateWithParcel(booking *models.Booking, parcel *models.Parcel, firstEntry *models.ParcelStatusHistory) error
	GetByRef(bookingRef string) (*models.Booking, error)
	List(filter BookingListFilter) ([]models.Booking, int64, error)
	UpdateStatus(bookingRef, status string, at time.Time) error
}

// BookingListFilter narrows admin booking listings.
type BookingListFilter struct {
	Page        int
	PageSize    int
	Status      string
	ServiceType string
}

// GormBookingRepository is the GORM implementation.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// CreateWithParcel persists the booking and its derived trackable
// parcel in one transaction. The original site wrote these separately
// with no rollback; here a duplicate reference or a failed parcel
// insert rolls the whole submission back.
func (r *GormBookingRepository) CreateWithParcel(booking *models.Booking, parcel *models.Parcel, firstEntry *models.ParcelStatusHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		if parcel == nil {
			return nil
		}
		if err := tx.Create(parcel).Error; err != nil {
			return err
		}
		if firstEntry == nil {
			return nil
		}
		firstEntry.ParcelID = parcel.ID
		if firstEntry.Timestamp.IsZero() {
			firstEntry.Timestamp = time.Now()
		}
		return tx.Create(firstEntry).Error
	})
}

// GetByRef fetches a booking by its exact reference.
func (r *GormBookingRepository) GetByRef(bookingRef string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Where("booking_ref = ?", bookingRef).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// List returns bookings for the admin surface, newest first.
func (r *GormBookingRepository) List(filter BookingListFilter) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	query := r.db.Model(&models.Booking{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// UpdateStatus advances a booking's status by reference.
func (r *GormBookingRepository) UpdateStatus(bookingRef, status string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	result := r.db.Model(&models.Booking{}).
		Where("booking_ref = ?", bookingRef).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
