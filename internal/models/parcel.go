package models

import (
	"time"
)

// Parcel is a physical shipment tracked end-to-end.
type Parcel struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	TrackingNumber    string     `gorm:"uniqueIndex;size:32;not null" json:"tracking_number"` // DE + 10 upper alphanumerics, immutable
	SenderName        string     `gorm:"size:255;not null" json:"sender_name"`
	SenderPhone       string     `gorm:"size:20;not null" json:"sender_phone"`
	SenderAddress     string     `gorm:"type:text;not null" json:"sender_address"`
	ReceiverName      string     `gorm:"size:255;not null" json:"receiver_name"`
	ReceiverPhone     string     `gorm:"size:20;not null" json:"receiver_phone"`
	ReceiverAddress   string     `gorm:"type:text;not null" json:"receiver_address"`
	Weight            string     `gorm:"size:20;not null" json:"weight"` // free-text bucket, e.g. "1-3 kg"
	ServiceType       string     `gorm:"size:20;not null" json:"service_type"`
	Status            string     `gorm:"index;size:20;not null;default:collected" json:"status"` // always mirrors the newest history entry
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	History []ParcelStatusHistory `gorm:"foreignKey:ParcelID" json:"history,omitempty"`
}

// TableName sets the table name.
func (Parcel) TableName() string {
	return "parcels"
}
