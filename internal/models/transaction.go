package models

import (
	"time"
)

// Transaction is an append-only ledger entry for every gold/toman
// movement. Positive deltas are credits, negative are debits.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Type        string    `gorm:"size:30;not null;index" json:"type"` // sell_gold, buy_gold, wheel_prize, referral_bonus, withdrawal
	GoldAmount  *float64  `json:"goldAmount"`
	TomanAmount *float64  `json:"tomanAmount"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
