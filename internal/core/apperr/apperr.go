// Package apperr is the typed error taxonomy shared by the domain services
// and the HTTP boundary. Services return these errors; the HTTP adapter maps
// them to status codes and response bodies in one place.
package apperr

import (
	"strings"
)

// Error carries an HTTP status, the error title and one or more messages.
// When ErrorText is empty the body renders "message" as a plain string
// (framework-default exceptions like Unauthorized/Forbidden); otherwise
// "message" is an array, matching the validation-style bodies of the API.
type Error struct {
	StatusCode int
	ErrorText  string
	Messages   []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Body returns the JSON response shape for this error.
func (e *Error) Body() map[string]interface{} {
	if e.ErrorText == "" {
		return map[string]interface{}{
			"message":    e.Messages[0],
			"statusCode": e.StatusCode,
		}
	}
	return map[string]interface{}{
		"message":    e.Messages,
		"error":      e.ErrorText,
		"statusCode": e.StatusCode,
	}
}

func badRequest(msg string) *Error {
	return &Error{StatusCode: 400, ErrorText: "Bad Request", Messages: []string{msg}}
}

var (
	ErrPasswordMismatch = badRequest("Password not confirmed")
	ErrEmailTaken       = badRequest("Account with this email already exists.")
	ErrCategoryNotFound = badRequest("Category not found")
	ErrCategoryHasPosts = badRequest("Category has posts")
	ErrPostNotFound     = badRequest("Post not found")

	ErrNotFound     = &Error{StatusCode: 404, ErrorText: "Not Found", Messages: []string{"Entity not found"}}
	ErrUnauthorized = &Error{StatusCode: 401, Messages: []string{"Unauthorized"}}
	ErrForbidden    = &Error{StatusCode: 403, Messages: []string{"Forbidden"}}
)

// Validation wraps field-level validation messages into a 400 error.
func Validation(messages []string) *Error {
	return &Error{StatusCode: 400, ErrorText: "Bad Request", Messages: messages}
}
