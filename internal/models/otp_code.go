package models

import (
	"time"
)

// OtpCode is a one-time phone verification code. Rows are never updated
// after being marked verified; stale rows are removed by the sweeper.
type OtpCode struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"size:11;not null;index" json:"phoneNumber"`
	Code        string    `gorm:"size:4;not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expiresAt"`
	IsVerified  bool      `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (OtpCode) TableName() string { return "otp_codes" }
