package handler

import (
	"net/http"
	"time"

	"sutbazar/internal/models"
	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referrals service.ReferralRepo
}

func NewReferralHandler(referrals service.ReferralRepo) *ReferralHandler {
	return &ReferralHandler{referrals: referrals}
}

type referredUserSummary struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type referralResponse struct {
	ID             uint                `json:"id"`
	ReferrerID     uint                `json:"referrerId"`
	ReferredUserID uint                `json:"referredUserId"`
	IsVerified     bool                `json:"isVerified"`
	BonusPaid      bool                `json:"bonusPaid"`
	CreatedAt      time.Time           `json:"createdAt"`
	ReferredUser   referredUserSummary `json:"referredUser"`
}

func (h *ReferralHandler) List(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}
	refs, err := h.referrals.ListByReferrer(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]referralResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, toReferralResponse(ref))
	}
	c.JSON(http.StatusOK, out)
}

func toReferralResponse(ref models.Referral) referralResponse {
	return referralResponse{
		ID:             ref.ID,
		ReferrerID:     ref.ReferrerID,
		ReferredUserID: ref.ReferredUserID,
		IsVerified:     ref.IsVerified,
		BonusPaid:      ref.BonusPaid,
		CreatedAt:      ref.CreatedAt,
		ReferredUser: referredUserSummary{
			ID:          ref.ReferredUser.ID,
			FirstName:   ref.ReferredUser.FirstName,
			LastName:    ref.ReferredUser.LastName,
			PhoneNumber: ref.ReferredUser.PhoneNumber,
		},
	}
}
