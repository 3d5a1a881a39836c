package repository

import (
	"errors"
	"time"

	"github.com/dumo-express/internal/models"

	"gorm.io/gorm"
)

// ContactRepository is the contact inquiry data access interface.
type ContactRepository interface {
	Create(inquiry *models.ContactInquiry) error
	GetByID(id uint) (*models.ContactInquiry, error)
	List(filter ContactListFilter) ([]models.ContactInquiry, int64, error)
	UpdateStatus(id uint, status string, at time.Time) error
}

// ContactListFilter narrows admin inquiry listings.
type ContactListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// GormContactRepository is the GORM implementation.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a contact inquiry repository.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create inserts an inquiry.
func (r *GormContactRepository) Create(inquiry *models.ContactInquiry) error {
	return r.db.Create(inquiry).Error
}

// GetByID fetches an inquiry by primary key.
func (r *GormContactRepository) GetByID(id uint) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	if err := r.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

// List returns inquiries for the admin surface, newest first.
func (r *GormContactRepository) List(filter ContactListFilter) ([]models.ContactInquiry, int64, error) {
	var inquiries []models.ContactInquiry
	query := r.db.Model(&models.ContactInquiry{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at desc").Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

// UpdateStatus advances an inquiry's status.
func (r *GormContactRepository) UpdateStatus(id uint, status string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	result := r.db.Model(&models.ContactInquiry{}).
		Where("id = ?", id).
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
