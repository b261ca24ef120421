package handler

import (
	"net/http"

	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type WheelHandler struct {
	svc *service.WheelService
}

func NewWheelHandler(svc *service.WheelService) *WheelHandler {
	return &WheelHandler{svc: svc}
}

func (h *WheelHandler) CanSpin(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}
	canSpin, lastSpin, err := h.svc.CanSpinToday(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canSpin": canSpin, "lastSpin": lastSpin})
}

type spinRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

func (h *WheelHandler) Spin(c *gin.Context) {
	var req spinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	prize, err := h.svc.Spin(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "congratulations!"
	if prize == 0 {
		message = "better luck next time"
	}
	c.JSON(http.StatusOK, gin.H{"prize": prize, "message": message})
}
