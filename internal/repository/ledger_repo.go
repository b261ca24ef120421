package repository

import (
	"errors"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository is the balance-mutation and audit-trail layer. Every
// balance change and its ledger entry commit in one transaction.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Apply adds the signed deltas to the user's balances and appends the
// matching ledger entry. It performs no sufficiency check; use
// ApplySpend when a debit must be covered.
func (r *LedgerRepository) Apply(userID uint, goldDelta, tomanDelta float64, txType, description string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"gold_balance":  gorm.Expr("gold_balance + ?", goldDelta),
			"toman_balance": gorm.Expr("toman_balance + ?", tomanDelta),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return tx.Create(entry(userID, goldDelta, tomanDelta, txType, description)).Error
	})
}

// ApplySpend debits goldSpent and credits tomanDelta, but only when the
// locked gold balance covers the debit.
func (r *LedgerRepository) ApplySpend(userID uint, goldSpent, tomanDelta float64, txType, description string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if u.GoldBalance < goldSpent {
			return domain.ErrInsufficientGold
		}
		err = tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"gold_balance":  gorm.Expr("gold_balance - ?", goldSpent),
			"toman_balance": gorm.Expr("toman_balance + ?", tomanDelta),
		}).Error
		if err != nil {
			return err
		}
		return tx.Create(entry(userID, -goldSpent, tomanDelta, txType, description)).Error
	})
}

// ListByUser returns the newest ledger entries for a user.
func (r *LedgerRepository) ListByUser(userID uint, limit int) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func entry(userID uint, goldDelta, tomanDelta float64, txType, description string) *models.Transaction {
	t := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Description: description,
	}
	if goldDelta != 0 {
		t.GoldAmount = &goldDelta
	}
	if tomanDelta != 0 {
		t.TomanAmount = &tomanDelta
	}
	return t
}
