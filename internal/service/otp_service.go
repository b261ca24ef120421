package service

import (
	"context"
	"strconv"
	"time"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"

	"go.uber.org/zap"
)

// OtpService issues and verifies one-time phone codes.
type OtpService struct {
	otps OtpRepo
	sms  SMSSender
	rng  Rand
	now  func() time.Time
}

func NewOtpService(otps OtpRepo, sms SMSSender) *OtpService {
	return &OtpService{otps: otps, sms: sms, rng: systemRand{}, now: time.Now}
}

// RequestCode generates a 4-digit code, persists it with a 5-minute
// expiry and dispatches it by SMS. The code row stays persisted even
// when delivery fails.
func (s *OtpService) RequestCode(ctx context.Context, phone string) error {
	if !domain.PhoneRe.MatchString(phone) {
		return domain.ErrInvalidPhone
	}
	code := strconv.Itoa(1000 + s.rng.Intn(9000))
	otp := &models.OtpCode{
		PhoneNumber: phone,
		Code:        code,
		ExpiresAt:   s.now().Add(domain.OtpTTL),
	}
	if err := s.otps.Create(otp); err != nil {
		return err
	}
	if err := s.sms.SendOTP(ctx, phone, code); err != nil {
		zap.S().Errorf("otp: sms delivery to %s failed: %v", phone, err)
		return domain.ErrSMSDelivery
	}
	return nil
}

// VerifyCode checks the latest code issued for the phone number and
// marks it verified on match.
func (s *OtpService) VerifyCode(phone, code string) error {
	otp, err := s.otps.LatestByPhone(phone)
	if err != nil {
		return err
	}
	if otp == nil {
		return domain.ErrCodeNotFound
	}
	if otp.IsVerified {
		return domain.ErrCodeUsed
	}
	if s.now().After(otp.ExpiresAt) {
		return domain.ErrCodeExpired
	}
	if otp.Code != code {
		return domain.ErrCodeMismatch
	}
	return s.otps.MarkVerified(otp.ID)
}
