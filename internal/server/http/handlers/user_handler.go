package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/server/http/dto"
)

// UserHandler exposes the authenticated user's profile.
type UserHandler struct{}

// NewUserHandler constructs UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
