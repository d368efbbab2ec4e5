package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/auth"
	"github.com/abghifareihand/overtime-connect-backend/internal/domain/user"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/database"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/email"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/jwt"
	"github.com/abghifareihand/overtime-connect-backend/internal/repository/postgresql"
)

const otpTTL = 10 * time.Minute

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	auth.PasswordOTPRepository
	auth.RefreshTokenRepository
	jwt.Service
	email.EmailService

	// runInTx wraps multi-write flows; nil means a real database
	// transaction via postgresql.WithTransaction.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (a *AuthServiceImpl) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.runInTx != nil {
		return a.runInTx(ctx, fn)
	}
	return postgresql.WithTransaction(ctx, a.db, fn)
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	otpRepository auth.PasswordOTPRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		PasswordOTPRepository:  otpRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		EmailService:           emailService,
	}
}

// Register implements auth.AuthService. The new user is logged in
// immediately, so the response carries a token pair.
func (a *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*user.UserResponse, *auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	var tokens *auth.TokenResponse
	err = a.withTx(ctx, func(txCtx context.Context) error {
		created, err = a.UserRepository.Create(txCtx, user.User{
			Fullname:     req.Fullname,
			Email:        req.Email,
			Username:     req.Username,
			Phone:        req.Phone,
			Salary:       req.Salary,
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}

		tokens, err = a.issueTokens(txCtx, created)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	resp := user.ToUserResponse(created)
	return &resp, tokens, nil
}

// Login implements auth.AuthService. The login value may be either the
// email address or the username.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*user.UserResponse, *auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	found, err := a.UserRepository.GetByLogin(ctx, req.Login)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, auth.ErrInvalidCredentials
	}

	tokens, err := a.issueTokens(ctx, found)
	if err != nil {
		return nil, nil, err
	}

	resp := user.ToUserResponse(found)
	return &resp, tokens, nil
}

// Refresh implements auth.AuthService. The presented token must match
// the stored one, so refresh rotates the pair and invalidates the old
// refresh token.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, error) {
	userID, err := a.Service.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	stored, err := a.RefreshTokenRepository.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored.UserID != userID || time.Now().After(stored.ExpiresAt) {
		return nil, auth.ErrInvalidToken
	}

	found, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return a.issueTokens(ctx, found)
}

// Logout implements auth.AuthService. The access token is revoked for
// the rest of its lifetime and the stored refresh token is dropped.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}

	if refreshToken == "" {
		return nil
	}
	userID, err := a.Service.ParseRefreshToken(refreshToken)
	if err != nil {
		// Expired or malformed, nothing left to invalidate.
		return nil
	}
	return a.RefreshTokenRepository.DeleteByUserID(ctx, userID)
}

// RequestOTP implements auth.AuthService.
func (a *AuthServiceImpl) RequestOTP(ctx context.Context, req *auth.RequestOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	expiresAt := time.Now().Add(otpTTL)
	if err := a.PasswordOTPRepository.Upsert(ctx, auth.PasswordOTP{
		Email:     found.Email,
		Code:      code,
		ExpiresAt: expiresAt,
	}); err != nil {
		return err
	}

	if err := a.EmailService.SendPasswordResetOTP(found.Email, found.Username, code, expiresAt); err != nil {
		slog.Error("failed to send otp email", "email", found.Email, "error", err)
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req *auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	otp, err := a.PasswordOTPRepository.GetByEmail(ctx, found.Email)
	if err != nil {
		return err
	}
	if otp.Code != req.OTP || otp.Expired(time.Now()) {
		return auth.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.withTx(ctx, func(txCtx context.Context) error {
		if err := a.UserRepository.UpdatePassword(txCtx, found.ID, string(hash)); err != nil {
			return err
		}
		if err := a.PasswordOTPRepository.DeleteByEmail(txCtx, found.Email); err != nil {
			return err
		}
		// Force a fresh login everywhere after a reset.
		return a.RefreshTokenRepository.DeleteByUserID(txCtx, found.ID)
	})
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (*auth.TokenResponse, error) {
	accessToken, accessExp, err := a.Service.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExp, err := a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.RefreshTokenRepository.Save(ctx, auth.RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExp, 0),
	}); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &auth.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        accessExp - time.Now().Unix(),
		RefreshExpiresAt: refreshExp,
	}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
