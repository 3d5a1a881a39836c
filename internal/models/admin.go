package models

import (
	"time"
)

// Admin is an operator account. Role decides whether the account may
// call admin operations; non-admin operators can log in but reach
// nothing privileged.
type Admin struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string     `gorm:"size:200;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:user" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
