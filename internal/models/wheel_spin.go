package models

import (
	"time"
)

// WheelSpin is one lucky-wheel attempt. PrizeAmount 0 means the empty
// slot; the row still counts against the per-day limit.
type WheelSpin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	PrizeAmount float64   `gorm:"not null" json:"prizeAmount"` // sut
	SpunAt      time.Time `gorm:"autoCreateTime;index" json:"spunAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WheelSpin) TableName() string { return "wheel_spins" }
