package domain

import "errors"

// Account lifecycle errors
var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrConflict           = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnverified         = errors.New("please verify your email first")
)

// Verification errors
var (
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrAlreadyVerified = errors.New("user already verified")
	ErrCodeMaxAttempts = errors.New("maximum verification attempts exceeded")
	ErrResendThrottled = errors.New("verification code recently sent")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Infrastructure errors
var (
	ErrDelivery = errors.New("failed to deliver verification email")
	ErrStorage  = errors.New("storage unavailable")
)
