package main

import (
	"time"

	"github.com/dumo-express/internal/config"
	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/logger"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/reference"
)

type seedParcel struct {
	parcel  models.Parcel
	history []models.ParcelStatusHistory
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()
	estimateNextDay := now.Add(24 * time.Hour)
	estimateScheduled := now.AddDate(0, 0, 3)

	demoParcels := []seedParcel{
		{
			parcel: models.Parcel{
				TrackingNumber:    reference.TrackingNumber(),
				SenderName:        "Ahmad Faizal",
				SenderPhone:       "+60 12-345 6789",
				SenderAddress:     "12 Jalan Ampang, Kuala Lumpur",
				ReceiverName:      "Lim Wei Ling",
				ReceiverPhone:     "+60 16-987 6543",
				ReceiverAddress:   "88 Lebuh Chulia, George Town, Penang",
				Weight:            "2.5 kg",
				ServiceType:       constants.ServiceTypeNextDay,
				Status:            constants.ParcelStatusInTransit,
				EstimatedDelivery: &estimateNextDay,
			},
			history: []models.ParcelStatusHistory{
				{
					Status:      constants.ParcelStatusCollected,
					Location:    constants.HubLocation,
					Description: constants.ParcelCreatedDesc,
					Timestamp:   now.Add(-6 * time.Hour),
				},
				{
					Status:      constants.ParcelStatusInTransit,
					Location:    "KL Sortation Centre",
					Description: "Departed facility, heading north",
					Timestamp:   now.Add(-2 * time.Hour),
				},
			},
		},
		{
			parcel: models.Parcel{
				TrackingNumber:    reference.TrackingNumber(),
				SenderName:        "Siti Nurhaliza",
				SenderPhone:       "+60 13-222 1100",
				SenderAddress:     "5 Jalan Tun Razak, Kuala Lumpur",
				ReceiverName:      "Rajesh Kumar",
				ReceiverPhone:     "+60 17-555 0001",
				ReceiverAddress:   "21 Jalan Wong Ah Fook, Johor Bahru",
				Weight:            "0.8 kg",
				ServiceType:       constants.ServiceTypeScheduled,
				Status:            constants.ParcelStatusCollected,
				EstimatedDelivery: &estimateScheduled,
				Notes:             "Fragile, handle with care",
			},
			history: []models.ParcelStatusHistory{
				{
					Status:      constants.ParcelStatusCollected,
					Location:    constants.HubLocation,
					Description: constants.ParcelCreatedDesc,
					Timestamp:   now.Add(-1 * time.Hour),
				},
			},
		},
	}

	for i := range demoParcels {
		entry := demoParcels[i]
		if err := models.DB.Create(&entry.parcel).Error; err != nil {
			stdLog.Printf("Failed to create parcel: %v", err)
			continue
		}
		for j := range entry.history {
			entry.history[j].ParcelID = entry.parcel.ID
			if err := models.DB.Create(&entry.history[j]).Error; err != nil {
				stdLog.Printf("Failed to create history entry: %v", err)
			}
		}
		stdLog.Printf("Created parcel: %s", entry.parcel.TrackingNumber)
	}

	scheduled := now.AddDate(0, 0, 2)
	booking := models.Booking{
		BookingRef:      reference.BookingRef(),
		CustomerName:    "Tan Mei Chen",
		CustomerEmail:   "mei.chen@example.com",
		CustomerPhone:   "+60 19-888 7766",
		PickupAddress:   "3 Jalan Bukit Bintang, Kuala Lumpur",
		DeliveryAddress: "10 Persiaran Gurney, Ipoh",
		PackageWeight:   "4 kg",
		ServiceType:     constants.ServiceTypeScheduled,
		ScheduledDate:   &scheduled,
		Status:          constants.BookingStatusPending,
		TrackingNumber:  reference.TrackingNumber(),
	}
	if err := models.DB.Create(&booking).Error; err != nil {
		stdLog.Printf("Failed to create booking: %v", err)
	} else {
		stdLog.Printf("Created booking: %s", booking.BookingRef)
	}

	inquiry := models.ContactInquiry{
		Name:    "Wong Kar Mun",
		Email:   "kar.mun@example.com",
		Phone:   "+60 11-234 5678",
		Subject: "Bulk shipping rates",
		Message: "We ship around 200 parcels a month and would like a contract quote.",
		Status:  constants.InquiryStatusNew,
	}
	if err := models.DB.Create(&inquiry).Error; err != nil {
		stdLog.Printf("Failed to create inquiry: %v", err)
	} else {
		stdLog.Printf("Created inquiry: %s", inquiry.Subject)
	}

	stdLog.Println("Seed complete")
}
