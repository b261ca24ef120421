package handler

import (
	"net/http"

	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type TradingHandler struct {
	svc *service.TradingService
}

func NewTradingHandler(svc *service.TradingService) *TradingHandler {
	return &TradingHandler{svc: svc}
}

type sellRequest struct {
	UserID     uint    `json:"userId" binding:"required"`
	GoldAmount float64 `json:"goldAmount"`
}

func (h *TradingHandler) Sell(c *gin.Context) {
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	proceeds, err := h.svc.SellGold(c.Request.Context(), req.UserID, req.GoldAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tomanReceived": proceeds})
}
