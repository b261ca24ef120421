package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sutbazar/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userIDFromRequest reads the user id from the path parameter or, when
// absent, the query string. The read endpoints are identifier-based by
// design; a future auth middleware replaces this single helper.
func userIDFromRequest(c *gin.Context) (uint, bool) {
	raw := c.Param("userId")
	if raw == "" {
		raw = c.Query("userId")
	}
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user id is required"})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps business-rule errors to HTTP statuses. Unknown
// errors are logged and reported as internal.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrCodeNotFound),
		errors.Is(err, domain.ErrCodeUsed),
		errors.Is(err, domain.ErrCodeExpired),
		errors.Is(err, domain.ErrCodeMismatch),
		errors.Is(err, domain.ErrPhoneNotVerified),
		errors.Is(err, domain.ErrNationalIDTaken),
		errors.Is(err, domain.ErrAlreadySpun),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientGold),
		errors.Is(err, domain.ErrKycRequired),
		errors.Is(err, domain.ErrMissingImage):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrSMSDelivery):
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		zap.S().Errorf("handler: %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
