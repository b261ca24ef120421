// Package service holds the business rules. Dependencies are consumed
// through the interfaces below so tests can swap in-memory fakes for
// the gorm repositories and the outbound clients.
package service

import (
	"context"
	"io"
	"time"

	"sutbazar/internal/models"
)

type UserRepo interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	GetByNationalID(nationalID string) (*models.User, error)
	GetByReferralCode(code string) (*models.User, error)
	UpdateBirthDate(id uint, birthDate string) error
	MarkKycVerified(id uint) error
}

type OtpRepo interface {
	Create(o *models.OtpCode) error
	LatestByPhone(phone string) (*models.OtpCode, error)
	MarkVerified(id uint) error
}

type KycRepo interface {
	Create(k *models.KycVerification) error
	UpdateStatus(id uint, status string) error
	LatestByUser(userID uint) (*models.KycVerification, error)
}

type WheelRepo interface {
	TodaySpin(userID uint, dayStart time.Time) (*models.WheelSpin, error)
	CreateSpin(userID uint, prize float64, dayStart time.Time) (*models.WheelSpin, error)
}

// LedgerRepo is the ledger & balance service: every money movement goes
// through Apply/ApplySpend, which pair the balance delta with its entry.
type LedgerRepo interface {
	Apply(userID uint, goldDelta, tomanDelta float64, txType, description string) error
	ApplySpend(userID uint, goldSpent, tomanDelta float64, txType, description string) error
	ListByUser(userID uint, limit int) ([]models.Transaction, error)
}

type ReferralRepo interface {
	Create(ref *models.Referral) error
	FindByReferrerAndReferred(referrerID, referredID uint) (*models.Referral, error)
	MarkVerified(id uint) (bool, error)
	ListByReferrer(referrerID uint) ([]models.Referral, error)
}

// SMSSender dispatches one-time codes; failures surface to the caller.
type SMSSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// Notifier is the best-effort admin alert relay. Implementations log
// failures and never return them.
type Notifier interface {
	Notify(ctx context.Context, text string)
	NotifyPhoto(ctx context.Context, text, photoURL string)
}

// ImageStore persists uploaded documents and returns a serving URL.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
}

// Rand is the draw source for codes and wheel prizes; *rand.Rand
// satisfies it, tests use stubs.
type Rand interface {
	Intn(n int) int
}
