package repository

import (
	"errors"

	"sutbazar/internal/models"

	"gorm.io/gorm"
)

type KycRepository struct {
	db *gorm.DB
}

func NewKycRepository(db *gorm.DB) *KycRepository {
	return &KycRepository{db: db}
}

func (r *KycRepository) Create(k *models.KycVerification) error {
	return r.db.Create(k).Error
}

func (r *KycRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.KycVerification{}).Where("id = ?", id).
		Update("status", status).Error
}

// LatestByUser returns the newest submission for a user, or (nil, nil).
func (r *KycRepository) LatestByUser(userID uint) (*models.KycVerification, error) {
	var k models.KycVerification
	err := r.db.Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		First(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}
