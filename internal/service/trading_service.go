package service

import (
	"context"
	"fmt"

	"sutbazar/internal/domain"
)

// TradingService converts gold balance to toman at the fixed rate.
// Gold purchase has no backend operation.
type TradingService struct {
	users  UserRepo
	ledger LedgerRepo
	notify Notifier
}

func NewTradingService(users UserRepo, ledger LedgerRepo, notify Notifier) *TradingService {
	return &TradingService{users: users, ledger: ledger, notify: notify}
}

// SellGold debits goldAmount sut and credits the toman proceeds.
// Returns the toman received.
func (s *TradingService) SellGold(ctx context.Context, userID uint, goldAmount float64) (float64, error) {
	if goldAmount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, domain.ErrUserNotFound
	}
	if !user.IsKycVerified {
		return 0, domain.ErrKycRequired
	}
	if user.GoldBalance < goldAmount {
		return 0, domain.ErrInsufficientGold
	}

	proceeds := goldAmount * domain.GoldPriceToman
	err = s.ledger.ApplySpend(userID, goldAmount, proceeds, domain.TxTypeSellGold,
		fmt.Sprintf("Sold %g sut of gold", goldAmount))
	if err != nil {
		return 0, err
	}

	s.notify.Notify(ctx, fmt.Sprintf(
		"📉 Gold sale:\n\nUser: %s\nSold: %g sut\nReceived: %g toman",
		user.FullName(), goldAmount, proceeds))
	return proceeds, nil
}
