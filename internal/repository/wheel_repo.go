package repository

import (
	"errors"
	"time"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WheelRepository struct {
	db *gorm.DB
}

func NewWheelRepository(db *gorm.DB) *WheelRepository {
	return &WheelRepository{db: db}
}

// TodaySpin returns the user's spin since dayStart, or (nil, nil).
func (r *WheelRepository) TodaySpin(userID uint, dayStart time.Time) (*models.WheelSpin, error) {
	var s models.WheelSpin
	err := r.db.Where("user_id = ? AND spun_at >= ?", userID, dayStart).
		Order("spun_at DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSpin records a spin for the user unless one already exists since
// dayStart. The eligibility re-check and the insert share a transaction
// holding the user row lock, so concurrent spins cannot both pay out.
func (r *WheelRepository) CreateSpin(userID uint, prize float64, dayStart time.Time) (*models.WheelSpin, error) {
	spin := &models.WheelSpin{UserID: userID, PrizeAmount: prize}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&u, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.WheelSpin{}).
			Where("user_id = ? AND spun_at >= ?", userID, dayStart).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadySpun
		}
		return tx.Create(spin).Error
	})
	if err != nil {
		return nil, err
	}
	return spin, nil
}
