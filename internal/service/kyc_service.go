package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"

	"github.com/google/uuid"
)

// KycService handles identity verification submissions. Submissions are
// auto-approved; the explicit status transition keeps room for a manual
// review step.
type KycService struct {
	users     UserRepo
	kyc       KycRepo
	referrals ReferralRepo
	ledger    LedgerRepo
	images    ImageStore
	notify    Notifier
}

func NewKycService(users UserRepo, kyc KycRepo, referrals ReferralRepo, ledger LedgerRepo, images ImageStore, notify Notifier) *KycService {
	return &KycService{users: users, kyc: kyc, referrals: referrals, ledger: ledger, images: images, notify: notify}
}

// Submit stores the document image, records the submission, approves it
// and settles the referrer's bonus when this user was referred.
func (s *KycService) Submit(ctx context.Context, userID uint, birthDate, bankAccountNumber string, image io.Reader) error {
	if image == nil {
		return domain.ErrMissingImage
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	publicID := "kyc_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	folder := "sutbazar/kyc/" + strconv.FormatUint(uint64(userID), 10)
	imageURL, err := s.images.UploadImage(ctx, image, folder, publicID)
	if err != nil {
		return err
	}

	if err := s.users.UpdateBirthDate(userID, birthDate); err != nil {
		return err
	}
	submission := &models.KycVerification{
		UserID:            userID,
		BankAccountNumber: bankAccountNumber,
		BankCardImageURL:  imageURL,
		Status:            domain.KycStatusPending,
	}
	if err := s.kyc.Create(submission); err != nil {
		return err
	}

	// Auto-approval policy: no manual review exists.
	if err := submission.Transition(domain.KycStatusApproved); err != nil {
		return err
	}
	if err := s.kyc.UpdateStatus(submission.ID, submission.Status); err != nil {
		return err
	}
	if err := s.users.MarkKycVerified(userID); err != nil {
		return err
	}

	if err := s.settleReferralBonus(ctx, user); err != nil {
		return err
	}

	s.notify.NotifyPhoto(ctx, fmt.Sprintf(
		"✅ New identity verification:\n\nName: %s\nNational ID: %s\nPhone: %s\nBirth date: %s\nBank account: %s",
		user.FullName(), user.NationalID, user.PhoneNumber, birthDate, bankAccountNumber), imageURL)

	return nil
}

// settleReferralBonus credits the referrer exactly once per referred
// user. The conditional MarkVerified is the at-most-once gate.
func (s *KycService) settleReferralBonus(ctx context.Context, user *models.User) error {
	if user.ReferredBy == nil {
		return nil
	}
	referrer, err := s.users.GetByReferralCode(*user.ReferredBy)
	if err != nil {
		return err
	}
	if referrer == nil {
		return nil
	}
	ref, err := s.referrals.FindByReferrerAndReferred(referrer.ID, user.ID)
	if err != nil {
		return err
	}
	if ref == nil || ref.IsVerified {
		return nil
	}
	flipped, err := s.referrals.MarkVerified(ref.ID)
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}
	err = s.ledger.Apply(referrer.ID, domain.ReferralBonusSut, 0, domain.TxTypeReferralBonus,
		fmt.Sprintf("Referral bonus for %s", user.FullName()))
	if err != nil {
		return err
	}
	s.notify.Notify(ctx, fmt.Sprintf(
		"💰 Referral bonus:\n\n%s (%s)\nreceived: %d sut\nfor referring: %s",
		referrer.FullName(), referrer.PhoneNumber, domain.ReferralBonusSut, user.FullName()))
	return nil
}
