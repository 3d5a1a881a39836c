package service

import (
	"github.com/dumo-express/internal/constants"

	"github.com/shopspring/decimal"
)

// WeightRate is one weight band of the rate card.
type WeightRate struct {
	WeightBand string          `json:"weight_band"`
	MaxKg      decimal.Decimal `json:"max_kg"`
	Price      decimal.Decimal `json:"price"`
}

// ServiceRates is the rate table for one service class.
type ServiceRates struct {
	ServiceType string       `json:"service_type"`
	Label       string       `json:"label"`
	Rates       []WeightRate `json:"rates"`
}

// BulkDiscount is one tier of the bulk shipment discount ladder.
type BulkDiscount struct {
	MinParcels      int    `json:"min_parcels"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discount_percent"`
}

// RateCard is the published pricing page payload.
type RateCard struct {
	Currency      string         `json:"currency"`
	Services      []ServiceRates `json:"services"`
	BulkDiscounts []BulkDiscount `json:"bulk_discounts"`
}

// Quote is a price estimate for one parcel.
type Quote struct {
	ServiceType string          `json:"service_type"`
	Label       string          `json:"label"`
	WeightBand  string          `json:"weight_band"`
	Currency    string          `json:"currency"`
	Price       decimal.Decimal `json:"price"`
}

// PricingService publishes the rate card and quotes single parcels.
// Rates are fixed per weight band, in Malaysian Ringgit.
type PricingService struct {
	card RateCard
}

// NewPricingService creates a pricing service with the published rate
// card.
func NewPricingService() *PricingService {
	bands := []string{"Up to 1 kg", "1-3 kg", "3-5 kg", "5-10 kg", "10-20 kg"}
	maxKg := []string{"1", "3", "5", "10", "20"}

	build := func(serviceType string, prices []string) ServiceRates {
		rates := make([]WeightRate, 0, len(bands))
		for i, band := range bands {
			rates = append(rates, WeightRate{
				WeightBand: band,
				MaxKg:      decimal.RequireFromString(maxKg[i]),
				Price:      decimal.RequireFromString(prices[i]),
			})
		}
		return ServiceRates{
			ServiceType: serviceType,
			Label:       ServiceTypeLabel(serviceType),
			Rates:       rates,
		}
	}

	return &PricingService{
		card: RateCard{
			Currency: "MYR",
			Services: []ServiceRates{
				build(constants.ServiceTypeSameDay, []string{"15", "20", "28", "38", "55"}),
				build(constants.ServiceTypeNextDay, []string{"8", "12", "18", "25", "38"}),
				build(constants.ServiceTypeScheduled, []string{"10", "14", "20", "28", "42"}),
			},
			BulkDiscounts: []BulkDiscount{
				{MinParcels: 10, Description: "10-50 parcels", DiscountPercent: 10},
				{MinParcels: 51, Description: "51-100 parcels", DiscountPercent: 15},
				{MinParcels: 101, Description: "101-500 parcels", DiscountPercent: 20},
				{MinParcels: 501, Description: "500+ parcels, custom contract rates", DiscountPercent: 0},
			},
		},
	}
}

// RateCard returns the full published rate card.
func (s *PricingService) RateCard() RateCard {
	return s.card
}

// QuoteParcel estimates the price for one parcel. Bulk shipments are
// contract-priced and cannot be quoted here.
func (s *PricingService) QuoteParcel(serviceType string, weightKg decimal.Decimal) (*Quote, error) {
	if serviceType == constants.ServiceTypeBulk {
		return nil, ErrQuoteUnavailable
	}
	if !isOneOf(serviceType, constants.ServiceTypes) {
		return nil, ErrServiceTypeInvalid
	}
	if weightKg.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWeightOutOfRange
	}

	for _, svc := range s.card.Services {
		if svc.ServiceType != serviceType {
			continue
		}
		for _, rate := range svc.Rates {
			if weightKg.LessThanOrEqual(rate.MaxKg) {
				return &Quote{
					ServiceType: serviceType,
					Label:       svc.Label,
					WeightBand:  rate.WeightBand,
					Currency:    s.card.Currency,
					Price:       rate.Price,
				}, nil
			}
		}
		return nil, ErrWeightOutOfRange
	}
	return nil, ErrQuoteUnavailable
}

// BulkDiscountFor returns the discount tier for a parcel count, nil
// below the first tier.
func (s *PricingService) BulkDiscountFor(parcels int) *BulkDiscount {
	var matched *BulkDiscount
	for i := range s.card.BulkDiscounts {
		tier := s.card.BulkDiscounts[i]
		if parcels >= tier.MinParcels {
			matched = &tier
		}
	}
	return matched
}
