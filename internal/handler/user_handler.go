package handler

import (
	"net/http"

	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users service.UserRepo
}

func NewUserHandler(users service.UserRepo) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}
	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
