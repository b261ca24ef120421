// Package servicetest provides in-memory fakes for the service-layer
// interfaces so business rules can be exercised without a database or
// network.
package servicetest

import (
	"context"
	"fmt"
	"io"
	"time"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"
)

type FakeUsers struct {
	seq   uint
	Users map[uint]*models.User
}

func NewFakeUsers() *FakeUsers {
	return &FakeUsers{Users: make(map[uint]*models.User)}
}

func (f *FakeUsers) Create(u *models.User) error {
	f.seq++
	u.ID = f.seq
	u.CreatedAt = time.Now()
	f.Users[u.ID] = u
	return nil
}

func (f *FakeUsers) GetByID(id uint) (*models.User, error) {
	return f.Users[id], nil
}

func (f *FakeUsers) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.Users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *FakeUsers) GetByNationalID(nationalID string) (*models.User, error) {
	for _, u := range f.Users {
		if u.NationalID == nationalID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *FakeUsers) GetByReferralCode(code string) (*models.User, error) {
	for _, u := range f.Users {
		if u.ReferralCode == code {
			return u, nil
		}
	}
	return nil, nil
}

func (f *FakeUsers) UpdateBirthDate(id uint, birthDate string) error {
	if u := f.Users[id]; u != nil {
		bd := birthDate
		u.BirthDate = &bd
	}
	return nil
}

func (f *FakeUsers) MarkKycVerified(id uint) error {
	if u := f.Users[id]; u != nil {
		u.IsKycVerified = true
	}
	return nil
}

type FakeOtps struct {
	seq   uint
	Codes []*models.OtpCode
}

func NewFakeOtps() *FakeOtps { return &FakeOtps{} }

func (f *FakeOtps) Create(o *models.OtpCode) error {
	f.seq++
	o.ID = f.seq
	o.CreatedAt = time.Now()
	f.Codes = append(f.Codes, o)
	return nil
}

func (f *FakeOtps) LatestByPhone(phone string) (*models.OtpCode, error) {
	for i := len(f.Codes) - 1; i >= 0; i-- {
		if f.Codes[i].PhoneNumber == phone {
			return f.Codes[i], nil
		}
	}
	return nil, nil
}

func (f *FakeOtps) MarkVerified(id uint) error {
	for _, o := range f.Codes {
		if o.ID == id {
			o.IsVerified = true
			return nil
		}
	}
	return nil
}

func (f *FakeOtps) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	var kept []*models.OtpCode
	var removed int64
	for _, o := range f.Codes {
		if o.ExpiresAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	f.Codes = kept
	return removed, nil
}

type FakeKyc struct {
	seq         uint
	Submissions []*models.KycVerification
}

func NewFakeKyc() *FakeKyc { return &FakeKyc{} }

func (f *FakeKyc) Create(k *models.KycVerification) error {
	f.seq++
	k.ID = f.seq
	k.SubmittedAt = time.Now()
	f.Submissions = append(f.Submissions, k)
	return nil
}

func (f *FakeKyc) UpdateStatus(id uint, status string) error {
	for _, k := range f.Submissions {
		if k.ID == id {
			k.Status = status
			return nil
		}
	}
	return nil
}

func (f *FakeKyc) LatestByUser(userID uint) (*models.KycVerification, error) {
	for i := len(f.Submissions) - 1; i >= 0; i-- {
		if f.Submissions[i].UserID == userID {
			return f.Submissions[i], nil
		}
	}
	return nil, nil
}

type FakeWheel struct {
	users *FakeUsers
	seq   uint
	Spins []*models.WheelSpin
}

func NewFakeWheel(users *FakeUsers) *FakeWheel { return &FakeWheel{users: users} }

func (f *FakeWheel) TodaySpin(userID uint, dayStart time.Time) (*models.WheelSpin, error) {
	for i := len(f.Spins) - 1; i >= 0; i-- {
		s := f.Spins[i]
		if s.UserID == userID && !s.SpunAt.Before(dayStart) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *FakeWheel) CreateSpin(userID uint, prize float64, dayStart time.Time) (*models.WheelSpin, error) {
	if f.users.Users[userID] == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, _ := f.TodaySpin(userID, dayStart)
	if existing != nil {
		return nil, domain.ErrAlreadySpun
	}
	f.seq++
	spin := &models.WheelSpin{ID: f.seq, UserID: userID, PrizeAmount: prize, SpunAt: time.Now()}
	f.Spins = append(f.Spins, spin)
	return spin, nil
}

type FakeLedger struct {
	users   *FakeUsers
	Entries []models.Transaction
}

func NewFakeLedger(users *FakeUsers) *FakeLedger { return &FakeLedger{users: users} }

func (f *FakeLedger) Apply(userID uint, goldDelta, tomanDelta float64, txType, description string) error {
	u := f.users.Users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.GoldBalance += goldDelta
	u.TomanBalance += tomanDelta
	f.record(userID, goldDelta, tomanDelta, txType, description)
	return nil
}

func (f *FakeLedger) ApplySpend(userID uint, goldSpent, tomanDelta float64, txType, description string) error {
	u := f.users.Users[userID]
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.GoldBalance < goldSpent {
		return domain.ErrInsufficientGold
	}
	u.GoldBalance -= goldSpent
	u.TomanBalance += tomanDelta
	f.record(userID, -goldSpent, tomanDelta, txType, description)
	return nil
}

func (f *FakeLedger) ListByUser(userID uint, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(f.Entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.Entries[i].UserID == userID {
			out = append(out, f.Entries[i])
		}
	}
	return out, nil
}

func (f *FakeLedger) record(userID uint, goldDelta, tomanDelta float64, txType, description string) {
	t := models.Transaction{
		ID:          uint(len(f.Entries) + 1),
		UserID:      userID,
		Type:        txType,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if goldDelta != 0 {
		g := goldDelta
		t.GoldAmount = &g
	}
	if tomanDelta != 0 {
		tm := tomanDelta
		t.TomanAmount = &tm
	}
	f.Entries = append(f.Entries, t)
}

type FakeReferrals struct {
	users *FakeUsers
	seq   uint
	Refs  []*models.Referral
}

func NewFakeReferrals(users *FakeUsers) *FakeReferrals { return &FakeReferrals{users: users} }

func (f *FakeReferrals) Create(ref *models.Referral) error {
	f.seq++
	ref.ID = f.seq
	ref.CreatedAt = time.Now()
	f.Refs = append(f.Refs, ref)
	return nil
}

func (f *FakeReferrals) FindByReferrerAndReferred(referrerID, referredID uint) (*models.Referral, error) {
	for _, ref := range f.Refs {
		if ref.ReferrerID == referrerID && ref.ReferredUserID == referredID {
			return ref, nil
		}
	}
	return nil, nil
}

func (f *FakeReferrals) MarkVerified(id uint) (bool, error) {
	for _, ref := range f.Refs {
		if ref.ID == id {
			if ref.IsVerified {
				return false, nil
			}
			ref.IsVerified = true
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeReferrals) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	var out []models.Referral
	for i := len(f.Refs) - 1; i >= 0; i-- {
		ref := f.Refs[i]
		if ref.ReferrerID != referrerID {
			continue
		}
		r := *ref
		if u := f.users.Users[ref.ReferredUserID]; u != nil {
			r.ReferredUser = *u
		}
		out = append(out, r)
	}
	return out, nil
}

type SentSMS struct {
	Phone string
	Code  string
}

type FakeSMS struct {
	Err  error
	Sent []SentSMS
}

func (f *FakeSMS) SendOTP(ctx context.Context, phone, code string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, SentSMS{Phone: phone, Code: code})
	return nil
}

type PhotoNote struct {
	Text     string
	PhotoURL string
}

type FakeNotifier struct {
	Messages []string
	Photos   []PhotoNote
}

func (f *FakeNotifier) Notify(ctx context.Context, text string) {
	f.Messages = append(f.Messages, text)
}

func (f *FakeNotifier) NotifyPhoto(ctx context.Context, text, photoURL string) {
	f.Photos = append(f.Photos, PhotoNote{Text: text, PhotoURL: photoURL})
}

type FakeImages struct {
	Err     error
	Uploads []string
}

func (f *FakeImages) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	url := fmt.Sprintf("https://images.example.com/%s/%s.jpg", folder, publicID)
	f.Uploads = append(f.Uploads, url)
	return url, nil
}

// StubRand always returns N, for forcing a wheel slot or OTP digits.
type StubRand struct {
	N int
}

func (s StubRand) Intn(n int) int { return s.N }
