package repository

import (
	"errors"
	"time"

	"sutbazar/internal/models"

	"gorm.io/gorm"
)

type OtpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

func (r *OtpRepository) Create(o *models.OtpCode) error {
	return r.db.Create(o).Error
}

// LatestByPhone returns the most recently issued code for a phone
// number, or (nil, nil) when none exists.
func (r *OtpRepository) LatestByPhone(phone string) (*models.OtpCode, error) {
	var o models.OtpCode
	err := r.db.Where("phone_number = ?", phone).
		Order("created_at DESC, id DESC").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OtpRepository) MarkVerified(id uint) error {
	return r.db.Model(&models.OtpCode{}).Where("id = ?", id).
		Update("is_verified", true).Error
}

// DeleteExpiredBefore removes codes whose expiry is older than cutoff.
// Used by the retention sweeper.
func (r *OtpRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", cutoff).Delete(&models.OtpCode{})
	return res.RowsAffected, res.Error
}
