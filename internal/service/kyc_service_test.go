package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sutbazar/internal/domain"
	"sutbazar/internal/models"
	"sutbazar/internal/service/servicetest"
)

type kycFixture struct {
	users     *servicetest.FakeUsers
	kyc       *servicetest.FakeKyc
	referrals *servicetest.FakeReferrals
	ledger    *servicetest.FakeLedger
	images    *servicetest.FakeImages
	notify    *servicetest.FakeNotifier
	svc       *KycService
}

func newKycFixture() *kycFixture {
	users := servicetest.NewFakeUsers()
	kyc := servicetest.NewFakeKyc()
	referrals := servicetest.NewFakeReferrals(users)
	ledger := servicetest.NewFakeLedger(users)
	images := &servicetest.FakeImages{}
	notify := &servicetest.FakeNotifier{}
	return &kycFixture{
		users:     users,
		kyc:       kyc,
		referrals: referrals,
		ledger:    ledger,
		images:    images,
		notify:    notify,
		svc:       NewKycService(users, kyc, referrals, ledger, images, notify),
	}
}

func (f *kycFixture) addUser(t *testing.T, phone, code string, referredBy *string) *models.User {
	t.Helper()
	u := &models.User{
		PhoneNumber:  phone,
		FirstName:    "Ali",
		LastName:     "Ahmadi",
		NationalID:   phone[1:],
		ReferralCode: code,
		ReferredBy:   referredBy,
	}
	require.NoError(t, f.users.Create(u))
	return u
}

func cardImage() *strings.Reader { return strings.NewReader("jpeg bytes") }

func TestSubmit_MissingImage(t *testing.T) {
	f := newKycFixture()
	u := f.addUser(t, "09123456789", "AB12CD34", nil)

	err := f.svc.Submit(context.Background(), u.ID, "1995-04-02", "1234567890123456", nil)
	assert.ErrorIs(t, err, domain.ErrMissingImage)
	assert.Empty(t, f.kyc.Submissions)
}

func TestSubmit_UnknownUser(t *testing.T) {
	f := newKycFixture()

	err := f.svc.Submit(context.Background(), 99, "1995-04-02", "1234567890123456", cardImage())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, f.images.Uploads)
}

func TestSubmit_ApprovesAndVerifies(t *testing.T) {
	f := newKycFixture()
	u := f.addUser(t, "09123456789", "AB12CD34", nil)

	err := f.svc.Submit(context.Background(), u.ID, "1995-04-02", "1234567890123456", cardImage())
	require.NoError(t, err)

	assert.True(t, u.IsKycVerified)
	require.NotNil(t, u.BirthDate)
	assert.Equal(t, "1995-04-02", *u.BirthDate)

	require.Len(t, f.kyc.Submissions, 1)
	sub := f.kyc.Submissions[0]
	assert.Equal(t, domain.KycStatusApproved, sub.Status)
	assert.Equal(t, "1234567890123456", sub.BankAccountNumber)
	assert.NotEmpty(t, sub.BankCardImageURL)

	require.Len(t, f.images.Uploads, 1)
	require.Len(t, f.notify.Photos, 1)
	assert.Equal(t, f.images.Uploads[0], f.notify.Photos[0].PhotoURL)
	assert.Contains(t, f.notify.Photos[0].Text, "Ali Ahmadi")
}

func TestSubmit_SettlesReferralBonusOnce(t *testing.T) {
	f := newKycFixture()
	referrer := f.addUser(t, "09123456789", "AB12CD34", nil)
	code := referrer.ReferralCode
	referred := f.addUser(t, "09123456780", "EF56AB78", &code)
	require.NoError(t, f.referrals.Create(&models.Referral{
		ReferrerID:     referrer.ID,
		ReferredUserID: referred.ID,
	}))

	err := f.svc.Submit(context.Background(), referred.ID, "1995-04-02", "1234567890123456", cardImage())
	require.NoError(t, err)

	assert.Equal(t, float64(1000), referrer.GoldBalance)
	assert.True(t, f.referrals.Refs[0].IsVerified)
	require.Len(t, f.ledger.Entries, 1)
	assert.Equal(t, domain.TxTypeReferralBonus, f.ledger.Entries[0].Type)
	assert.Equal(t, referrer.ID, f.ledger.Entries[0].UserID)

	// One bonus message plus the photo alert.
	require.Len(t, f.notify.Messages, 1)
	assert.Contains(t, f.notify.Messages[0], "1000 sut")

	// A repeat submission re-approves but never double-credits.
	err = f.svc.Submit(context.Background(), referred.ID, "1995-04-02", "1234567890123456", cardImage())
	require.NoError(t, err)
	assert.Equal(t, float64(1000), referrer.GoldBalance)
	assert.Len(t, f.ledger.Entries, 1)
	assert.Len(t, f.notify.Messages, 1)
}

func TestSubmit_UnresolvableReferrerCode(t *testing.T) {
	f := newKycFixture()
	code := "DEADBEEF"
	u := f.addUser(t, "09123456789", "AB12CD34", &code)

	err := f.svc.Submit(context.Background(), u.ID, "1995-04-02", "1234567890123456", cardImage())
	require.NoError(t, err)

	assert.True(t, u.IsKycVerified)
	assert.Empty(t, f.ledger.Entries)
	assert.Empty(t, f.notify.Messages)
}

func TestSubmit_NoReferralRowNoBonus(t *testing.T) {
	f := newKycFixture()
	referrer := f.addUser(t, "09123456789", "AB12CD34", nil)
	code := referrer.ReferralCode
	referred := f.addUser(t, "09123456780", "EF56AB78", &code)

	// The code resolves but no referral row was linked at registration.
	err := f.svc.Submit(context.Background(), referred.ID, "1995-04-02", "1234567890123456", cardImage())
	require.NoError(t, err)
	assert.Zero(t, referrer.GoldBalance)
	assert.Empty(t, f.ledger.Entries)
}
