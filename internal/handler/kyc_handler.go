package handler

import (
	"net/http"
	"strconv"

	"sutbazar/internal/domain"
	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type KycHandler struct {
	svc *service.KycService
}

func NewKycHandler(svc *service.KycService) *KycHandler {
	return &KycHandler{svc: svc}
}

// Submit accepts a multipart form: userId, birthDate, bankAccountNumber
// and the bankCardImage file.
func (h *KycHandler) Submit(c *gin.Context) {
	rawID := c.PostForm("userId")
	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}
	birthDate := c.PostForm("birthDate")
	bankAccountNumber := c.PostForm("bankAccountNumber")

	fileHeader, err := c.FormFile("bankCardImage")
	if err != nil {
		respondError(c, domain.ErrMissingImage)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "could not read uploaded file"})
		return
	}
	defer file.Close()

	if err := h.svc.Submit(c.Request.Context(), uint(userID), birthDate, bankAccountNumber, file); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "identity verification submitted"})
}
