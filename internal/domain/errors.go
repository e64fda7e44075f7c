package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrTokenInvalid      = errors.New("prefill token is invalid")
	ErrTokenExpired      = errors.New("prefill token has expired")
	ErrTokenUsed         = errors.New("prefill token has already been used")
	ErrQueryTooShort     = errors.New("search query too short")
	ErrSearchUnavailable = errors.New("search backend unavailable")
)
