package handler

import (
	"net/http"

	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	otpSvc  *service.OtpService
	authSvc *service.AuthService
}

func NewAuthHandler(otpSvc *service.OtpService, authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{otpSvc: otpSvc, authSvc: authSvc}
}

type sendOtpRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type verifyOtpRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required,len=4"`
}

type registerRequest struct {
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	FirstName    string `json:"firstName" binding:"required,min=2"`
	LastName     string `json:"lastName" binding:"required,min=2"`
	NationalID   string `json:"nationalId" binding:"required,len=10,numeric"`
	ReferralCode string `json:"referralCode"`
}

func (h *AuthHandler) SendOtp(c *gin.Context) {
	var req sendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.otpSvc.RequestCode(c.Request.Context(), req.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "verification code sent"})
}

func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.otpSvc.VerifyCode(req.PhoneNumber, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "phone number verified"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user, created, err := h.authSvc.Register(c.Request.Context(), service.RegisterInput{
		PhoneNumber:  req.PhoneNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalID:   req.NationalID,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	message := "registration successful"
	if !created {
		message = "already registered"
	}
	c.JSON(http.StatusOK, gin.H{"userId": user.ID, "message": message})
}
