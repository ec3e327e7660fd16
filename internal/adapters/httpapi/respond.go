package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/TopUP/blog/internal/adapters/httpapi/middleware"
	"github.com/TopUP/blog/internal/core/apperr"
)

// respondError is the single point mapping domain errors to status codes and
// response bodies.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, appErr.Body())
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"message":    "Internal server error",
		"statusCode": http.StatusInternalServerError,
	})
}

// respondBindingError turns a gin binding failure into the 400 body with one
// message per failed field.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, validationMessage(fe))
		}
		c.JSON(http.StatusBadRequest, apperr.Validation(messages).Body())
		return
	}

	c.JSON(http.StatusBadRequest, apperr.Validation([]string{"invalid input"}).Body())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	default:
		return fe.Field() + " is invalid"
	}
}

// parseID reads the numeric :id path parameter. Non-numeric input is a
// validation failure, not a 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Validation([]string{"Validation failed (numeric string is expected)"}).Body())
		return 0, false
	}
	return uint(id), true
}

// identity returns the caller stored by the JWT middleware.
func identity(c *gin.Context) (middleware.Identity, bool) {
	v, ok := c.Get(middleware.IdentityKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":    "Unauthorized",
			"statusCode": http.StatusUnauthorized,
		})
		return middleware.Identity{}, false
	}
	return v.(middleware.Identity), true
}
