package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds and validates the request body. On failure it writes the
// 400 response itself: a field→messages map for validation failures with
// every failing field reported, or a generic message for malformed JSON.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			respondErrors(c, http.StatusBadRequest, validationMessages(validationErrors))
			return false
		}
		log.Println("[HTTP] [ERROR] invalid request body:", err)
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func validationMessages(validationErrors validator.ValidationErrors) map[string][]string {
	messages := make(map[string][]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := snakeCase(fieldError.Field())
		messages[field] = append(messages[field], fieldMessage(field, fieldError))
	}
	return messages
}

func fieldMessage(field string, fieldError validator.FieldError) string {
	display := strings.ReplaceAll(field, "_", " ")
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", display)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", display)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", display, fieldError.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", display)
	}
}

func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
