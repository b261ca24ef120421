package service

import (
	"context"
	"fmt"
	"time"

	"sutbazar/internal/domain"
)

// WheelService runs the daily lucky wheel.
type WheelService struct {
	users  UserRepo
	wheel  WheelRepo
	ledger LedgerRepo
	notify Notifier
	rng    Rand
	now    func() time.Time
}

func NewWheelService(users UserRepo, wheel WheelRepo, ledger LedgerRepo, notify Notifier, rng Rand) *WheelService {
	if rng == nil {
		rng = systemRand{}
	}
	return &WheelService{users: users, wheel: wheel, ledger: ledger, notify: notify, rng: rng, now: time.Now}
}

// CanSpinToday reports eligibility and, when already spun, the time of
// today's spin.
func (s *WheelService) CanSpinToday(userID uint) (bool, *time.Time, error) {
	spin, err := s.wheel.TodaySpin(userID, startOfDay(s.now()))
	if err != nil {
		return false, nil, err
	}
	if spin == nil {
		return true, nil, nil
	}
	return false, &spin.SpunAt, nil
}

// Spin draws a prize, records the spin and credits the gold when the
// slot is not empty. At most one spin per user per local calendar day.
func (s *WheelService) Spin(ctx context.Context, userID uint) (float64, error) {
	prize := s.draw()
	if _, err := s.wheel.CreateSpin(userID, prize, startOfDay(s.now())); err != nil {
		return 0, err
	}
	if prize > 0 {
		if err := s.ledger.Apply(userID, prize, 0, domain.TxTypeWheelPrize, "Lucky wheel prize"); err != nil {
			return 0, err
		}
	}

	if user, err := s.users.GetByID(userID); err == nil && user != nil {
		label := "empty"
		if prize > 0 {
			label = fmt.Sprintf("%g sut", prize)
		}
		s.notify.Notify(ctx, fmt.Sprintf("🎰 Lucky wheel:\n\nUser: %s\nPrize: %s", user.FullName(), label))
	}
	return prize, nil
}

func (s *WheelService) draw() float64 {
	return domain.WheelPrizes[s.rng.Intn(len(domain.WheelPrizes))]
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
