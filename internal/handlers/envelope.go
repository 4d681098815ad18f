package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every success body is {"data": ...} and every error body is
// {"errors": ...}; nothing else ever leaves a handler.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func respondErrors(c *gin.Context, status int, errs any) {
	c.AbortWithStatusJSON(status, gin.H{"errors": errs})
}

func respondMessage(c *gin.Context, status int, message string) {
	respondErrors(c, status, gin.H{"message": []string{message}})
}

// respondNotFound covers both "does not exist" and "belongs to someone
// else"; the two must stay indistinguishable.
func respondNotFound(c *gin.Context) {
	respondMessage(c, http.StatusNotFound, "not found")
}

func respondUnauthorized(c *gin.Context) {
	respondMessage(c, http.StatusUnauthorized, "Unauthorized")
}

func respondInternal(c *gin.Context, tag string, err error) {
	log.Printf("[%s] [ERROR] %v", tag, err)
	respondMessage(c, http.StatusInternalServerError, "internal server error")
}
