package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTrackingServiceTest(t *testing.T) (*TrackingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:tracking_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Parcel{},
		&models.ParcelStatusHistory{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewTrackingService(repository.NewParcelRepository(db)), db
}

func validParcelInput() CreateParcelInput {
	return CreateParcelInput{
		SenderName:      "Ahmad Faizal",
		SenderPhone:     "+60 12-345 6789",
		SenderAddress:   "12 Jalan Ampang, Kuala Lumpur",
		ReceiverName:    "Lim Wei Ling",
		ReceiverPhone:   "+60 16-987 6543",
		ReceiverAddress: "88 Lebuh Chulia, George Town",
		Weight:          "2.5 kg",
		ServiceType:     constants.ServiceTypeNextDay,
	}
}

func TestCreateParcelSeedsHistory(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	parcel, err := svc.CreateParcel(validParcelInput())
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}
	if parcel.Status != constants.ParcelStatusCollected {
		t.Fatalf("expected collected status, got: %q", parcel.Status)
	}
	if parcel.TrackingNumber[:2] != "DE" {
		t.Fatalf("expected DE tracking number, got: %q", parcel.TrackingNumber)
	}

	result, err := svc.Track(parcel.TrackingNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected parcel to be found")
	}
	if len(result.History) != 1 {
		t.Fatalf("expected one history entry, got: %d", len(result.History))
	}
	entry := result.History[0]
	if entry.Location != constants.HubLocation {
		t.Fatalf("expected hub location, got: %q", entry.Location)
	}
	if entry.Description != constants.ParcelCreatedDesc {
		t.Fatalf("unexpected seed description: %q", entry.Description)
	}
}

func TestTrackUnknownNumberIsNotAnError(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	result, err := svc.Track("DE0000000000")
	if err != nil {
		t.Fatalf("track returned error for unknown number: %v", err)
	}
	if result.Found {
		t.Fatalf("expected found=false")
	}
	if result.History == nil || len(result.History) != 0 {
		t.Fatalf("expected empty history slice, got: %v", result.History)
	}
}

func TestTrackIsCaseInsensitiveAndIdempotent(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	parcel, err := svc.CreateParcel(validParcelInput())
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	lowered := "  " + strings.ToLower(parcel.TrackingNumber) + "  "
	first, err := svc.Track(lowered)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if !first.Found {
		t.Fatalf("expected lowercase lookup to find the parcel")
	}

	second, err := svc.Track(lowered)
	if err != nil {
		t.Fatalf("second track failed: %v", err)
	}
	if !second.Found || second.Parcel.ID != first.Parcel.ID {
		t.Fatalf("expected identical results on repeated lookup")
	}
	if len(second.History) != len(first.History) {
		t.Fatalf("expected lookup to leave history unchanged")
	}
}

func TestUpdateStatusAppearsAtHistoryHead(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	parcel, err := svc.CreateParcel(validParcelInput())
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	if err := svc.UpdateStatus(parcel.ID, constants.ParcelStatusInTransit, "KL Sortation Centre", "Departed facility"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	result, err := svc.Track(parcel.TrackingNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if result.Parcel.Status != constants.ParcelStatusInTransit {
		t.Fatalf("expected in-transit status, got: %q", result.Parcel.Status)
	}
	if len(result.History) != 2 {
		t.Fatalf("expected two history entries, got: %d", len(result.History))
	}
	if result.History[0].Status != constants.ParcelStatusInTransit {
		t.Fatalf("expected newest entry first, got: %q", result.History[0].Status)
	}
}

func TestUpdateStatusDeliveredSetsActualDelivery(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	parcel, err := svc.CreateParcel(validParcelInput())
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	if err := svc.UpdateStatus(parcel.ID, constants.ParcelStatusDelivered, "Recipient address", "Delivered to recipient"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	result, err := svc.Track(parcel.TrackingNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if result.Parcel.ActualDelivery == nil {
		t.Fatalf("expected actual delivery timestamp to be set")
	}
}

func TestUpdateStatusRejectsInvalidValues(t *testing.T) {
	svc, _ := setupTrackingServiceTest(t)

	parcel, err := svc.CreateParcel(validParcelInput())
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	if err := svc.UpdateStatus(parcel.ID, "lost", "", ""); err != ErrParcelStatusInvalid {
		t.Fatalf("expected ErrParcelStatusInvalid, got: %v", err)
	}
	if err := svc.UpdateStatus(parcel.ID+999, constants.ParcelStatusInTransit, "", ""); err != ErrParcelNotFound {
		t.Fatalf("expected ErrParcelNotFound, got: %v", err)
	}
}

func TestCreateParcelValidation(t *testing.T) {
	svc, db := setupTrackingServiceTest(t)

	input := validParcelInput()
	input.ServiceType = "overnight"
	if _, err := svc.CreateParcel(input); err != ErrServiceTypeInvalid {
		t.Fatalf("expected ErrServiceTypeInvalid, got: %v", err)
	}

	input = validParcelInput()
	input.SenderName = "   "
	if _, err := svc.CreateParcel(input); err != ErrSenderNameRequired {
		t.Fatalf("expected ErrSenderNameRequired, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.Parcel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected input must not create rows, found: %d", count)
	}
}
