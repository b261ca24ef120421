package models

import (
	"time"
)

// Referral links a referrer to a user who registered with their code.
// IsVerified flips (once) when the referred user passes KYC, which is
// also the moment the bonus is credited. BonusPaid exists in the schema
// but is not consulted by the crediting logic.
type Referral struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReferrerID     uint      `gorm:"not null;index" json:"referrerId"`
	ReferredUserID uint      `gorm:"not null;index" json:"referredUserId"`
	IsVerified     bool      `gorm:"not null;default:false" json:"isVerified"`
	BonusPaid      bool      `gorm:"not null;default:false" json:"bonusPaid"`
	CreatedAt      time.Time `json:"createdAt"`

	Referrer     User `gorm:"foreignKey:ReferrerID;constraint:OnDelete:CASCADE" json:"-"`
	ReferredUser User `gorm:"foreignKey:ReferredUserID;constraint:OnDelete:CASCADE" json:"referredUser"`
}

func (Referral) TableName() string { return "referrals" }
