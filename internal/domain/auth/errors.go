package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidOTP         = errors.New("otp code is invalid or expired")
)
