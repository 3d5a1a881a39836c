package models

import (
	"time"
)

// Booking is a customer-submitted delivery request.
type Booking struct {
	ID                  uint       `gorm:"primarykey" json:"id"`
	BookingRef          string     `gorm:"uniqueIndex;size:32;not null" json:"booking_ref"` // DES + 8 upper alphanumerics, immutable
	CustomerName        string     `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail       string     `gorm:"size:320;not null" json:"customer_email"`
	CustomerPhone       string     `gorm:"size:20;not null" json:"customer_phone"`
	PickupAddress       string     `gorm:"type:text;not null" json:"pickup_address"`
	DeliveryAddress     string     `gorm:"type:text;not null" json:"delivery_address"`
	PackageWeight       string     `gorm:"size:20;not null" json:"package_weight"`
	ServiceType         string     `gorm:"size:20;not null" json:"service_type"`
	ScheduledDate       *time.Time `json:"scheduled_date,omitempty"`
	SpecialInstructions string     `gorm:"type:text" json:"special_instructions,omitempty"`
	Status              string     `gorm:"index;size:20;not null;default:pending" json:"status"`
	TrackingNumber      string     `gorm:"index;size:32" json:"tracking_number,omitempty"` // derived trackable parcel
	CreatedAt           time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName sets the table name.
func (Booking) TableName() string {
	return "bookings"
}
