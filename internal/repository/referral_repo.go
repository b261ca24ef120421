package repository

import (
	"errors"

	"sutbazar/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ref *models.Referral) error {
	return r.db.Create(ref).Error
}

// FindByReferrerAndReferred returns the link between two users, or
// (nil, nil) when they are not linked.
func (r *ReferralRepository) FindByReferrerAndReferred(referrerID, referredID uint) (*models.Referral, error) {
	var ref models.Referral
	err := r.db.Where("referrer_id = ? AND referred_user_id = ?", referrerID, referredID).
		First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// MarkVerified flips is_verified at most once. Returns false when the
// referral was already verified, so the bonus cannot be paid twice.
func (r *ReferralRepository) MarkVerified(id uint) (bool, error) {
	res := r.db.Model(&models.Referral{}).
		Where("id = ? AND is_verified = ?", id, false).
		Update("is_verified", true)
	return res.RowsAffected > 0, res.Error
}

// ListByReferrer returns a user's referrals, newest first, with the
// referred user loaded for the API summary.
func (r *ReferralRepository) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	var refs []models.Referral
	err := r.db.Preload("ReferredUser").
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&refs).Error
	return refs, err
}
