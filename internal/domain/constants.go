package domain

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

// Transaction types recorded in the ledger.
const (
	TxTypeSellGold      = "sell_gold"
	TxTypeBuyGold       = "buy_gold"
	TxTypeWheelPrize    = "wheel_prize"
	TxTypeReferralBonus = "referral_bonus"
	TxTypeWithdrawal    = "withdrawal"
)

// KYC submission statuses.
const (
	KycStatusPending  = "pending"
	KycStatusApproved = "approved"
	KycStatusRejected = "rejected"
)

const (
	// GoldPriceToman is the fixed conversion rate: 1 sut = 1000 toman.
	GoldPriceToman = 1000

	// ReferralBonusSut is credited to the referrer when the referred
	// user passes identity verification.
	ReferralBonusSut = 1000

	// OtpTTL is how long a one-time code stays valid after issue.
	OtpTTL = 5 * time.Minute
)

// WheelPrizes is the 8-segment lucky wheel, drawn uniformly. 0 is the
// empty slot.
var WheelPrizes = [...]float64{50, 100, 500, 1000, 5000, 10000, 50000, 0}

var (
	// PhoneRe matches local mobile numbers: 11 digits starting with 09.
	PhoneRe = regexp.MustCompile(`^09\d{9}$`)

	// NationalIDRe matches a 10-digit national identity number.
	NationalIDRe = regexp.MustCompile(`^\d{10}$`)
)

// NewReferralCode returns an 8-character uppercase hex code. Uniqueness
// is the caller's problem (regenerate on collision).
func NewReferralCode() string {
	b := make([]byte, 4)
	_, _ = cryptorand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))
}
