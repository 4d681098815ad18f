package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"contactbook/internal/models"
)

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

// currentUser returns the user the auth middleware resolved for this
// request.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get("user")
	if !ok {
		respondUnauthorized(c)
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		respondUnauthorized(c)
		return nil, false
	}
	return user, true
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// pathID parses a numeric id path segment. Anything non-numeric responds
// "not found", same as a route miss.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id < 1 {
		respondNotFound(c)
		return 0, false
	}
	return id, true
}
