package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sutbazar/internal/service"
	"sutbazar/internal/service/servicetest"
)

type testAPI struct {
	router    *gin.Engine
	users     *servicetest.FakeUsers
	otps      *servicetest.FakeOtps
	ledger    *servicetest.FakeLedger
	referrals *servicetest.FakeReferrals
	notify    *servicetest.FakeNotifier
	sms       *servicetest.FakeSMS
}

// newTestAPI wires the full route table over in-memory fakes. The wheel
// always lands on slot 3 (1000 sut) so payouts are predictable.
func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)

	users := servicetest.NewFakeUsers()
	otps := servicetest.NewFakeOtps()
	kyc := servicetest.NewFakeKyc()
	wheel := servicetest.NewFakeWheel(users)
	ledger := servicetest.NewFakeLedger(users)
	referrals := servicetest.NewFakeReferrals(users)
	sms := &servicetest.FakeSMS{}
	notify := &servicetest.FakeNotifier{}
	images := &servicetest.FakeImages{}

	otpSvc := service.NewOtpService(otps, sms)
	authSvc := service.NewAuthService(users, otps, referrals, notify)
	wheelSvc := service.NewWheelService(users, wheel, ledger, notify, servicetest.StubRand{N: 3})
	kycSvc := service.NewKycService(users, kyc, referrals, ledger, images, notify)
	tradingSvc := service.NewTradingService(users, ledger, notify)

	authHandler := NewAuthHandler(otpSvc, authSvc)
	userHandler := NewUserHandler(users)
	kycHandler := NewKycHandler(kycSvc)
	wheelHandler := NewWheelHandler(wheelSvc)
	tradingHandler := NewTradingHandler(tradingSvc)
	transactionHandler := NewTransactionHandler(ledger)
	referralHandler := NewReferralHandler(referrals)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/send-otp", authHandler.SendOtp)
	api.POST("/auth/verify-otp", authHandler.VerifyOtp)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/user", userHandler.GetUser)
	api.GET("/user/:userId", userHandler.GetUser)
	api.POST("/kyc/submit", kycHandler.Submit)
	api.GET("/wheel/can-spin", wheelHandler.CanSpin)
	api.GET("/wheel/can-spin/:userId", wheelHandler.CanSpin)
	api.POST("/wheel/spin", wheelHandler.Spin)
	api.POST("/trading/sell", tradingHandler.Sell)
	api.GET("/transactions", transactionHandler.List)
	api.GET("/transactions/:userId", transactionHandler.List)
	api.GET("/referrals", referralHandler.List)
	api.GET("/referrals/:userId", referralHandler.List)

	return &testAPI{
		router:    r,
		users:     users,
		otps:      otps,
		ledger:    ledger,
		referrals: referrals,
		notify:    notify,
		sms:       sms,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// latestCode returns the most recent code issued for the phone number,
// standing in for reading the SMS.
func (a *testAPI) latestCode(t *testing.T, phone string) string {
	t.Helper()
	otp, err := a.otps.LatestByPhone(phone)
	require.NoError(t, err)
	require.NotNil(t, otp)
	return otp.Code
}

func (a *testAPI) register(t *testing.T, phone, firstName, lastName, nationalID, referralCode string) uint {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{"phoneNumber": phone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"phoneNumber": phone,
		"code":        a.latestCode(t, phone),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"phoneNumber":  phone,
		"firstName":    firstName,
		"lastName":     lastName,
		"nationalId":   nationalID,
		"referralCode": referralCode,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["userId"].(float64))
}

func (a *testAPI) submitKyc(t *testing.T, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("userId", fmt.Sprintf("%d", userID)))
	require.NoError(t, mw.WriteField("birthDate", "1995-04-02"))
	require.NoError(t, mw.WriteField("bankAccountNumber", "1234567890123456"))
	part, err := mw.CreateFormFile("bankCardImage", "card.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/kyc/submit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAPI_FullUserJourney(t *testing.T) {
	a := newTestAPI()
	const phone = "09123456789"

	userID := a.register(t, phone, "Ali", "Ahmadi", "1234567890", "")
	require.Len(t, a.sms.Sent, 1)

	// Eligible for today's spin right after registration.
	w := a.do(t, http.MethodGet, fmt.Sprintf("/api/wheel/can-spin/%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["canSpin"])
	assert.Nil(t, body["lastSpin"])

	// Spin lands on the 1000 sut slot.
	w = a.do(t, http.MethodPost, "/api/wheel/spin", gin.H{"userId": userID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, float64(1000), body["prize"])
	assert.Equal(t, "congratulations!", body["message"])

	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/user/%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(1000), body["goldBalance"])
	assert.Equal(t, float64(0), body["tomanBalance"])

	// Selling requires identity verification.
	w = a.do(t, http.MethodPost, "/api/trading/sell", gin.H{"userId": userID, "goldAmount": 400})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, a.submitKyc(t, userID).Code)

	w = a.do(t, http.MethodPost, "/api/trading/sell", gin.H{"userId": userID, "goldAmount": 400})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, float64(400000), body["tomanReceived"])

	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/user/%d", userID), nil)
	body = decode(t, w)
	assert.Equal(t, float64(600), body["goldBalance"])
	assert.Equal(t, float64(400000), body["tomanBalance"])

	// Ledger lists newest first: the sale, then the wheel prize.
	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/transactions/%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "sell_gold", entries[0]["type"])
	assert.Equal(t, float64(-400), entries[0]["goldAmount"])
	assert.Equal(t, float64(400000), entries[0]["tomanAmount"])
	assert.Equal(t, "wheel_prize", entries[1]["type"])
	assert.Equal(t, float64(1000), entries[1]["goldAmount"])
	assert.Nil(t, entries[1]["tomanAmount"])
}

func TestAPI_ReferralFlow(t *testing.T) {
	a := newTestAPI()

	referrerID := a.register(t, "09123456789", "Ali", "Ahmadi", "1234567890", "")
	referrer := a.users.Users[referrerID]

	referredID := a.register(t, "09123456780", "Sara", "Karimi", "0987654321", referrer.ReferralCode)

	// No bonus before the referred user passes verification.
	w := a.do(t, http.MethodGet, fmt.Sprintf("/api/referrals/%d", referrerID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var refs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refs))
	require.Len(t, refs, 1)
	assert.Equal(t, false, refs[0]["isVerified"])
	referred := refs[0]["referredUser"].(map[string]any)
	assert.Equal(t, "Sara", referred["firstName"])
	assert.Equal(t, "09123456780", referred["phoneNumber"])
	assert.Equal(t, float64(0), referrer.GoldBalance)

	require.Equal(t, http.StatusOK, a.submitKyc(t, referredID).Code)

	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/referrals/%d", referrerID), nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refs))
	assert.Equal(t, true, refs[0]["isVerified"])
	assert.Equal(t, float64(1000), referrer.GoldBalance)
}

func TestAPI_ErrorMapping(t *testing.T) {
	a := newTestAPI()

	// Invalid phone format.
	w := a.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{"phoneNumber": "12345"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong verification code.
	w = a.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{"phoneNumber": "09123456789"})
	require.Equal(t, http.StatusOK, w.Code)
	w = a.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{"phoneNumber": "09123456789", "code": "0000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Registration without a verified phone.
	w = a.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"phoneNumber": "09123456780",
		"firstName":   "Ali",
		"lastName":    "Ahmadi",
		"nationalId":  "1234567890",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user resources return 404.
	w = a.do(t, http.MethodGet, "/api/user/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = a.do(t, http.MethodPost, "/api/wheel/spin", gin.H{"userId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing user id on identifier-based reads.
	w = a.do(t, http.MethodGet, "/api/transactions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = a.do(t, http.MethodGet, "/api/transactions?userId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Body validation failures.
	w = a.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{"phoneNumber": "09123456789", "code": "12345"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = a.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"phoneNumber": "09123456789",
		"firstName":   "A",
		"lastName":    "Ahmadi",
		"nationalId":  "1234567890",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_QueryParamFallback(t *testing.T) {
	a := newTestAPI()
	userID := a.register(t, "09123456789", "Ali", "Ahmadi", "1234567890", "")

	w := a.do(t, http.MethodGet, fmt.Sprintf("/api/user?userId=%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "09123456789", decode(t, w)["phoneNumber"])
}

func TestAPI_InsufficientGold(t *testing.T) {
	a := newTestAPI()
	userID := a.register(t, "09123456789", "Ali", "Ahmadi", "1234567890", "")
	require.Equal(t, http.StatusOK, a.submitKyc(t, userID).Code)

	w := a.do(t, http.MethodPost, "/api/trading/sell", gin.H{"userId": userID, "goldAmount": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "insufficient")
}
