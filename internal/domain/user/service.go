package user

import (
	"context"
	"io"
)

// UserService covers the authenticated profile surface.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	UpdatePhoto(ctx context.Context, userID string, photo io.Reader, filename, contentType string) (UserResponse, error)
	UpdateEmail(ctx context.Context, userID string, req UpdateEmailRequest) (UserResponse, error)
	UpdateUsername(ctx context.Context, userID string, req UpdateUsernameRequest) (UserResponse, error)
	UpdateSalary(ctx context.Context, userID string, req UpdateSalaryRequest) (UserResponse, error)
	UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) error
}
