package auth

import "context"

// PasswordOTPRepository persists reset codes, one active code per email.
type PasswordOTPRepository interface {
	Upsert(ctx context.Context, otp PasswordOTP) error
	GetByEmail(ctx context.Context, email string) (PasswordOTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// RefreshTokenRepository stores the current refresh token per user.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
