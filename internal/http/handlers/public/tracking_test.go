package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dumo-express/internal/config"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/provider"
	"github.com/dumo-express/internal/queue"
	"github.com/dumo-express/internal/repository"
	"github.com/dumo-express/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPublicHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Parcel{},
		&models.ParcelStatusHistory{},
		&models.Booking{},
		&models.ContactInquiry{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	notifier := service.NewNotificationService(
		service.NewEmailService(&config.EmailConfig{}),
		queueClient,
		"ops@example.com",
	)

	parcelRepo := repository.NewParcelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	container := &provider.Container{
		QueueClient:         queueClient,
		ParcelRepo:          parcelRepo,
		BookingRepo:         bookingRepo,
		ContactRepo:         contactRepo,
		NotificationService: notifier,
		TrackingService:     service.NewTrackingService(parcelRepo),
		BookingService:      service.NewBookingService(bookingRepo, notifier),
		ContactService:      service.NewContactService(contactRepo, notifier),
		PricingService:      service.NewPricingService(),
		CaptchaService:      service.NewCaptchaService(config.CaptchaConfig{}),
	}
	return New(container), db
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal envelope failed: %v", err)
	}
	return resp
}

func TestTrackParcelEndpoint(t *testing.T) {
	h, _ := setupPublicHandlerTest(t)

	parcel, err := h.TrackingService.CreateParcel(service.CreateParcelInput{
		SenderName:      "Ahmad Faizal",
		SenderPhone:     "+60 12-345 6789",
		SenderAddress:   "12 Jalan Ampang, Kuala Lumpur",
		ReceiverName:    "Lim Wei Ling",
		ReceiverPhone:   "+60 16-987 6543",
		ReceiverAddress: "88 Lebuh Chulia, George Town",
		Weight:          "2.5 kg",
		ServiceType:     "next-day",
	})
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	r := gin.New()
	r.GET("/tracking/:tracking_number", h.TrackParcel)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracking/"+parcel.TrackingNumber, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w.Body.Bytes())
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	var data struct {
		Found   bool `json:"found"`
		History []struct {
			Status string `json:"status"`
		} `json:"history"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if !data.Found || len(data.History) != 1 {
		t.Fatalf("expected found parcel with one history entry, got: %+v", data)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/tracking/DE0000000000", nil)
	r.ServeHTTP(w2, req2)

	resp2 := decodeEnvelope(t, w2.Body.Bytes())
	if resp2.StatusCode != 0 {
		t.Fatalf("unknown tracking number should still be a success envelope, got %d", resp2.StatusCode)
	}
	var missing struct {
		Found bool `json:"found"`
	}
	if err := json.Unmarshal(resp2.Data, &missing); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if missing.Found {
		t.Fatalf("expected found=false for unknown number")
	}
}

func TestQuoteParcelEndpoint(t *testing.T) {
	h, _ := setupPublicHandlerTest(t)

	r := gin.New()
	r.GET("/pricing/quote", h.QuoteParcel)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pricing/quote?service_type=next-day&weight_kg=2.5", nil)
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w.Body.Bytes())
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var quote struct {
		WeightBand string `json:"weight_band"`
		Price      string `json:"price"`
		Currency   string `json:"currency"`
	}
	if err := json.Unmarshal(resp.Data, &quote); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if quote.WeightBand != "1-3 kg" || quote.Price != "12" || quote.Currency != "MYR" {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/pricing/quote?service_type=next-day&weight_kg=heavy", nil)
	r.ServeHTTP(w2, req2)

	resp2 := decodeEnvelope(t, w2.Body.Bytes())
	if resp2.StatusCode != 400 {
		t.Fatalf("non-numeric weight should be a 400, got %d", resp2.StatusCode)
	}
}
