package auth

import (
	"context"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*user.UserResponse, *TokenResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*user.UserResponse, *TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	RequestOTP(ctx context.Context, req *RequestOTPRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}
