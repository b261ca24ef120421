package models

import (
	"fmt"
	"time"

	"sutbazar/internal/domain"
)

type KycVerification struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"userId"`
	BankAccountNumber string    `gorm:"size:20;not null" json:"bankAccountNumber"`
	BankCardImageURL  string    `gorm:"size:512;not null" json:"bankCardImageUrl"`
	Status            string    `gorm:"size:10;not null;default:'pending'" json:"status"` // pending, approved, rejected
	SubmittedAt       time.Time `gorm:"autoCreateTime" json:"submittedAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (KycVerification) TableName() string { return "kyc_verifications" }

// Transition moves the submission to the next status. Only pending
// submissions may change state; a future manual-review step reuses this.
func (k *KycVerification) Transition(next string) error {
	if k.Status == domain.KycStatusPending &&
		(next == domain.KycStatusApproved || next == domain.KycStatusRejected) {
		k.Status = next
		return nil
	}
	return fmt.Errorf("kyc: invalid status transition %s -> %s", k.Status, next)
}
