package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/repository"

	"gorm.io/gorm"
)

// ContactService handles public contact form submissions and the
// operator inquiry queue.
type ContactService struct {
	contactRepo repository.ContactRepository
	notifier    *NotificationService
}

// NewContactService creates a contact service.
func NewContactService(contactRepo repository.ContactRepository, notifier *NotificationService) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// SubmitContactInput is the public contact form payload.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (in *SubmitContactInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(in.Subject) == "" {
		return ErrSubjectRequired
	}
	if strings.TrimSpace(in.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

// Submit validates and stores an inquiry with status new, then fires a
// best-effort operator notification. Invalid input creates no row.
func (s *ContactService) Submit(input SubmitContactInput) (*models.ContactInquiry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	inquiry := &models.ContactInquiry{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  constants.InquiryStatusNew,
	}
	if err := s.contactRepo.Create(inquiry); err != nil {
		return nil, err
	}

	s.notifier.NotifyContact(inquiry)
	return inquiry, nil
}

// List returns the admin inquiry listing.
func (s *ContactService) List(filter repository.ContactListFilter) ([]models.ContactInquiry, int64, error) {
	return s.contactRepo.List(filter)
}

// UpdateStatus moves an inquiry through its workflow states.
func (s *ContactService) UpdateStatus(id uint, status string) error {
	if !isOneOf(status, constants.InquiryStatuses) {
		return ErrInquiryStatusInvalid
	}
	err := s.contactRepo.UpdateStatus(id, status, time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInquiryNotFound
	}
	return err
}
