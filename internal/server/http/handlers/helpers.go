package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user placed into the context by the
// auth middleware. Returns nil when the route is not behind AuthRequired.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.CurrentUserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
