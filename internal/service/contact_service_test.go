package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupContactServiceTest(t *testing.T) (*ContactService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:contact_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ContactInquiry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewContactService(repository.NewContactRepository(db), silentNotifier(t)), db
}

func validContactInput() SubmitContactInput {
	return SubmitContactInput{
		Name:    "Wong Kar Mun",
		Email:   "kar.mun@example.com",
		Phone:   "+60 11-234 5678",
		Subject: "Bulk shipping rates",
		Message: "We ship around 200 parcels a month and would like a contract quote.",
	}
}

func TestSubmitContactStoresInquiryAsNew(t *testing.T) {
	svc, db := setupContactServiceTest(t)

	inquiry, err := svc.Submit(validContactInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if inquiry.ID == 0 {
		t.Fatalf("expected inquiry id to be assigned")
	}
	if inquiry.Status != constants.InquiryStatusNew {
		t.Fatalf("expected new status, got: %q", inquiry.Status)
	}

	var stored models.ContactInquiry
	if err := db.First(&stored, inquiry.ID).Error; err != nil {
		t.Fatalf("stored inquiry not found: %v", err)
	}
	if stored.Subject != "Bulk shipping rates" {
		t.Fatalf("unexpected stored subject: %q", stored.Subject)
	}
}

func TestSubmitContactRejectsInvalidInput(t *testing.T) {
	svc, db := setupContactServiceTest(t)

	input := validContactInput()
	input.Message = "   "
	if _, err := svc.Submit(input); err != ErrMessageRequired {
		t.Fatalf("expected ErrMessageRequired, got: %v", err)
	}

	input = validContactInput()
	input.Email = "kar.mun"
	if _, err := svc.Submit(input); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got: %v", err)
	}

	input = validContactInput()
	input.Name = ""
	if _, err := svc.Submit(input); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.ContactInquiry{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected input must not create rows, found: %d", count)
	}
}

func TestSubmitContactConcurrentIDsAreDistinct(t *testing.T) {
	svc, _ := setupContactServiceTest(t)

	const submissions = 10
	ids := make([]uint, submissions)
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			input := validContactInput()
			input.Subject = fmt.Sprintf("Inquiry %d", idx)
			inquiry, err := svc.Submit(input)
			if err != nil {
				t.Errorf("submit %d failed: %v", idx, err)
				return
			}
			ids[idx] = inquiry.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[uint]struct{}, submissions)
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate inquiry id: %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestUpdateInquiryStatus(t *testing.T) {
	svc, _ := setupContactServiceTest(t)

	inquiry, err := svc.Submit(validContactInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.UpdateStatus(inquiry.ID, constants.InquiryStatusReplied); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if err := svc.UpdateStatus(inquiry.ID, "spam"); err != ErrInquiryStatusInvalid {
		t.Fatalf("expected ErrInquiryStatusInvalid, got: %v", err)
	}
	if err := svc.UpdateStatus(inquiry.ID+999, constants.InquiryStatusClosed); err != ErrInquiryNotFound {
		t.Fatalf("expected ErrInquiryNotFound, got: %v", err)
	}
}
