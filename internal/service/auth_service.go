package service

import (
	"context"
	"fmt"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"
)

// AuthService completes registration for phone numbers that passed OTP
// verification.
type AuthService struct {
	users     UserRepo
	otps      OtpRepo
	referrals ReferralRepo
	notify    Notifier
}

func NewAuthService(users UserRepo, otps OtpRepo, referrals ReferralRepo, notify Notifier) *AuthService {
	return &AuthService{users: users, otps: otps, referrals: referrals, notify: notify}
}

type RegisterInput struct {
	PhoneNumber  string
	FirstName    string
	LastName     string
	NationalID   string
	ReferralCode string // referrer's code, optional
}

// Register creates the user once per phone number. Calling it again
// with an already-registered phone returns the existing user, so the
// operation is idempotent at the API level.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, bool, error) {
	otp, err := s.otps.LatestByPhone(in.PhoneNumber)
	if err != nil {
		return nil, false, err
	}
	if otp == nil || !otp.IsVerified {
		return nil, false, domain.ErrPhoneNotVerified
	}

	existing, err := s.users.GetByPhone(in.PhoneNumber)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	other, err := s.users.GetByNationalID(in.NationalID)
	if err != nil {
		return nil, false, err
	}
	if other != nil {
		return nil, false, domain.ErrNationalIDTaken
	}

	code, err := s.uniqueReferralCode()
	if err != nil {
		return nil, false, err
	}

	u := &models.User{
		PhoneNumber:  in.PhoneNumber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		NationalID:   in.NationalID,
		ReferralCode: code,
	}
	if in.ReferralCode != "" {
		referredBy := in.ReferralCode
		u.ReferredBy = &referredBy
	}
	if err := s.users.Create(u); err != nil {
		return nil, false, err
	}

	// Link the referral only when the supplied code resolves; an
	// unknown code is ignored without error.
	if in.ReferralCode != "" {
		referrer, err := s.users.GetByReferralCode(in.ReferralCode)
		if err != nil {
			return nil, false, err
		}
		if referrer != nil {
			if err := s.referrals.Create(&models.Referral{
				ReferrerID:     referrer.ID,
				ReferredUserID: u.ID,
			}); err != nil {
				return nil, false, err
			}
		}
	}

	referredBy := in.ReferralCode
	if referredBy == "" {
		referredBy = "-"
	}
	s.notify.Notify(ctx, fmt.Sprintf(
		"🆕 New registration:\n\nName: %s\nPhone: %s\nNational ID: %s\nReferral code: %s\nReferred by: %s",
		u.FullName(), u.PhoneNumber, u.NationalID, u.ReferralCode, referredBy))

	return u, true, nil
}

func (s *AuthService) uniqueReferralCode() (string, error) {
	for {
		code := domain.NewReferralCode()
		taken, err := s.users.GetByReferralCode(code)
		if err != nil {
			return "", err
		}
		if taken == nil {
			return code, nil
		}
	}
}
