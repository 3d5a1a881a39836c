package service

import (
	"testing"

	"github.com/dumo-express/internal/constants"

	"github.com/shopspring/decimal"
)

func TestQuoteParcelSelectsWeightBand(t *testing.T) {
	svc := NewPricingService()

	quote, err := svc.QuoteParcel(constants.ServiceTypeNextDay, decimal.RequireFromString("2.5"))
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.WeightBand != "1-3 kg" {
		t.Fatalf("expected 1-3 kg band, got: %q", quote.WeightBand)
	}
	if !quote.Price.Equal(decimal.RequireFromString("12")) {
		t.Fatalf("expected RM12, got: %s", quote.Price)
	}
	if quote.Currency != "MYR" {
		t.Fatalf("expected MYR, got: %q", quote.Currency)
	}

	// Band edges are inclusive.
	edge, err := svc.QuoteParcel(constants.ServiceTypeSameDay, decimal.RequireFromString("1"))
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if edge.WeightBand != "Up to 1 kg" {
		t.Fatalf("expected first band at 1 kg, got: %q", edge.WeightBand)
	}
	if !edge.Price.Equal(decimal.RequireFromString("15")) {
		t.Fatalf("expected RM15, got: %s", edge.Price)
	}
}

func TestQuoteParcelRejectsOutOfRangeWeights(t *testing.T) {
	svc := NewPricingService()

	if _, err := svc.QuoteParcel(constants.ServiceTypeNextDay, decimal.Zero); err != ErrWeightOutOfRange {
		t.Fatalf("expected ErrWeightOutOfRange for zero, got: %v", err)
	}
	if _, err := svc.QuoteParcel(constants.ServiceTypeNextDay, decimal.RequireFromString("-2")); err != ErrWeightOutOfRange {
		t.Fatalf("expected ErrWeightOutOfRange for negative, got: %v", err)
	}
	if _, err := svc.QuoteParcel(constants.ServiceTypeNextDay, decimal.RequireFromString("20.1")); err != ErrWeightOutOfRange {
		t.Fatalf("expected ErrWeightOutOfRange above 20 kg, got: %v", err)
	}
}

func TestQuoteParcelBulkAndInvalidService(t *testing.T) {
	svc := NewPricingService()

	if _, err := svc.QuoteParcel(constants.ServiceTypeBulk, decimal.RequireFromString("5")); err != ErrQuoteUnavailable {
		t.Fatalf("expected ErrQuoteUnavailable for bulk, got: %v", err)
	}
	if _, err := svc.QuoteParcel("drone", decimal.RequireFromString("5")); err != ErrServiceTypeInvalid {
		t.Fatalf("expected ErrServiceTypeInvalid, got: %v", err)
	}
}

func TestBulkDiscountTiers(t *testing.T) {
	svc := NewPricingService()

	if tier := svc.BulkDiscountFor(5); tier != nil {
		t.Fatalf("expected no tier below 10 parcels, got: %+v", tier)
	}
	if tier := svc.BulkDiscountFor(10); tier == nil || tier.DiscountPercent != 10 {
		t.Fatalf("expected 10%% tier at 10 parcels, got: %+v", tier)
	}
	if tier := svc.BulkDiscountFor(75); tier == nil || tier.DiscountPercent != 15 {
		t.Fatalf("expected 15%% tier at 75 parcels, got: %+v", tier)
	}
	if tier := svc.BulkDiscountFor(200); tier == nil || tier.DiscountPercent != 20 {
		t.Fatalf("expected 20%% tier at 200 parcels, got: %+v", tier)
	}
	if tier := svc.BulkDiscountFor(1000); tier == nil || tier.MinParcels != 501 {
		t.Fatalf("expected contract tier at 1000 parcels, got: %+v", tier)
	}
}

func TestRateCardShape(t *testing.T) {
	card := NewPricingService().RateCard()

	if card.Currency != "MYR" {
		t.Fatalf("expected MYR, got: %q", card.Currency)
	}
	if len(card.Services) != 3 {
		t.Fatalf("expected 3 service classes, got: %d", len(card.Services))
	}
	for _, svc := range card.Services {
		if len(svc.Rates) != 5 {
			t.Fatalf("expected 5 weight bands for %s, got: %d", svc.ServiceType, len(svc.Rates))
		}
		if svc.Label == "" {
			t.Fatalf("expected label for %s", svc.ServiceType)
		}
	}
	if len(card.BulkDiscounts) != 4 {
		t.Fatalf("expected 4 bulk tiers, got: %d", len(card.BulkDiscounts))
	}
}
