package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"contactbook/internal/store"
)

// Auth resolves the Authorization header to a user and injects it into the
// context. The header carries the raw session token; a conventional
// "Bearer <token>" prefix is also accepted.
func Auth(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		if parts := strings.Fields(token); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			log.Println("[AUTH] [ERROR] missing token")
			abortUnauthorized(c)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByToken(ctx, token)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("[AUTH] [ERROR] token lookup failed:", err)
			}
			abortUnauthorized(c)
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"errors": gin.H{"message": []string{"Unauthorized"}},
	})
}
