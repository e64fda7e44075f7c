package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "document not found"
	case errors.Is(err, domain.ErrQueryTooShort):
		return http.StatusBadRequest, "QUERY_TOO_SHORT", "query must be at least 2 characters"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "TOKEN_INVALID", "prefill token is invalid"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusGone, "TOKEN_EXPIRED", "prefill token has expired"
	case errors.Is(err, domain.ErrTokenUsed):
		return http.StatusGone, "TOKEN_USED", "prefill token has already been used"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrSearchUnavailable):
		return http.StatusServiceUnavailable, "SEARCH_UNAVAILABLE", "search backend unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// HandleError maps a service error onto the response envelope.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	RespondError(c, status, code, msg)
}
