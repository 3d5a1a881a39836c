package repository

import (
	"errors"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"

	"gorm.io/gorm"
)

// ParcelRepository is the parcel and status-ledger data access interface.
type ParcelRepository interface {
	Create(parcel *models.Parcel, firstEntry *models.ParcelStatusHistory) error
	GetByID(id uint) (*models.Parcel, error)
	GetByTrackingNumber(trackingNumber string) (*models.Parcel, error)
	List(filter ParcelListFilter) ([]models.Parcel, int64, error)
	AppendStatus(parcelID uint, status, location, description string, at time.Time) error
	GetHistory(parcelID uint) ([]models.ParcelStatusHistory, error)
}

// ParcelListFilter narrows admin parcel listings.
type ParcelListFilter struct {
	Page        int
	PageSize    int
	Status      string
	ServiceType string
}

// GormParcelRepository is the GORM implementation.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository creates a parcel repository.
func NewParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Create inserts a parcel together with its seed history entry in one
// transaction, so a parcel can never exist without a timeline.
func (r *GormParcelRepository) Create(parcel *models.Parcel, firstEntry *models.ParcelStatusHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
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

// GetByID fetches a parcel by primary key.
func (r *GormParcelRepository) GetByID(id uint) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.db.First(&parcel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parcel, nil
}

// GetByTrackingNumber fetches a parcel by its exact tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(trackingNumber string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.db.Where("tracking_number = ?", trackingNumber).First(&parcel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parcel, nil
}

// List returns parcels for the admin surface, newest first.
func (r *GormParcelRepository) List(filter ParcelListFilter) ([]models.Parcel, int64, error) {
	var parcels []models.Parcel
	query := r.db.Model(&models.Parcel{})
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
	if err := query.Order("created_at desc").Find(&parcels).Error; err != nil {
		return nil, 0, err
	}
	return parcels, total, nil
}

// AppendStatus inserts a history entry and updates the parent parcel's
// status column as one transaction; either both land or neither does.
// Delivery sets the actual delivery timestamp as well.
func (r *GormParcelRepository) AppendStatus(parcelID uint, status, location, description string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var parcel models.Parcel
		if err := tx.First(&parcel, parcelID).Error; err != nil {
			return err
		}
		entry := models.ParcelStatusHistory{
			ParcelID:    parcelID,
			Status:      status,
			Location:    location,
			Description: description,
			Timestamp:   at,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"status":     status,
			"updated_at": at,
		}
		if status == constants.ParcelStatusDelivered {
			updates["actual_delivery"] = at
		}
		return tx.Model(&models.Parcel{}).Where("id = ?", parcelID).Updates(updates).Error
	})
}

// GetHistory returns a parcel's timeline, most recent first. Entries
// sharing a timestamp surface newest-insert first.
func (r *GormParcelRepository) GetHistory(parcelID uint) ([]models.ParcelStatusHistory, error) {
	var entries []models.ParcelStatusHistory
	if err := r.db.Where("parcel_id = ?", parcelID).
		Order("timestamp desc, id desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
