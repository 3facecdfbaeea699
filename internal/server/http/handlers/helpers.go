package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spinzone/backend/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
// Returns nil for unauthenticated (guest) requests.
func CurrentUserID(c *gin.Context) *int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return nil
	}
	id, ok := val.(int64)
	if !ok {
		return nil
	}
	return &id
}
