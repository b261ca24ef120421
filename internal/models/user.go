package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber   string    `gorm:"uniqueIndex;size:11;not null" json:"phoneNumber"`
	FirstName     string    `gorm:"size:64;not null" json:"firstName"`
	LastName      string    `gorm:"size:64;not null" json:"lastName"`
	NationalID    string    `gorm:"uniqueIndex;size:10;not null" json:"nationalId"`
	BirthDate     *string   `gorm:"size:10" json:"birthDate"` // YYYY-MM-DD
	GoldBalance   float64   `gorm:"not null;default:0" json:"goldBalance"`  // sut
	TomanBalance  float64   `gorm:"not null;default:0" json:"tomanBalance"`
	ReferralCode  string    `gorm:"uniqueIndex;size:20;not null" json:"referralCode"`
	ReferredBy    *string   `gorm:"size:20" json:"referredBy"` // referrer's code, set once at registration
	IsKycVerified bool      `gorm:"not null;default:false" json:"isKycVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string { return u.FirstName + " " + u.LastName }
