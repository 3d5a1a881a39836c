package models

import (
	"time"
)

// ParcelStatusHistory is one append-only entry in a parcel's timeline.
// Entries are never updated or deleted; the owning parcel's status
// column is kept in sync in the same transaction that inserts one.
type ParcelStatusHistory struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ParcelID    uint      `gorm:"index;not null" json:"parcel_id"`
	Status      string    `gorm:"size:20;not null" json:"status"`
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
}

// TableName sets the table name.
func (ParcelStatusHistory) TableName() string {
	return "parcel_status_history"
}
