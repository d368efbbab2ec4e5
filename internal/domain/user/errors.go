package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already in use")
	ErrUsernameExists = errors.New("username already in use")
	ErrWrongPassword  = errors.New("password is incorrect")
)
