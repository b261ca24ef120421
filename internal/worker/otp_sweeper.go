package worker

import (
	"time"

	"go.uber.org/zap"
)

// OtpStore is the slice of the OTP repository the sweeper needs.
type OtpStore interface {
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

// OtpSweeper periodically removes one-time codes that expired long
// enough ago that no registration can still reference them.
type OtpSweeper struct {
	otps      OtpStore
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

func NewOtpSweeper(otps OtpStore) *OtpSweeper {
	return &OtpSweeper{
		otps:      otps,
		interval:  time.Hour,
		retention: 24 * time.Hour,
		now:       time.Now,
	}
}

func (w *OtpSweeper) Start() {
	ticker := time.NewTicker(w.interval)
	zap.S().Info("otp sweeper started")

	// Run once at start
	w.sweep()

	for range ticker.C {
		w.sweep()
	}
}

func (w *OtpSweeper) sweep() {
	cutoff := w.now().Add(-w.retention)
	n, err := w.otps.DeleteExpiredBefore(cutoff)
	if err != nil {
		zap.S().Errorf("otp sweeper: %v", err)
		return
	}
	if n > 0 {
		zap.S().Infof("otp sweeper: removed %d stale codes", n)
	}
}
