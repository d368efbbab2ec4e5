package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/auth"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/database"
)

type passwordOTPRepositoryImpl struct {
	db *database.DB
}

func NewPasswordOTPRepository(db *database.DB) auth.PasswordOTPRepository {
	return &passwordOTPRepositoryImpl{db: db}
}

// Upsert implements auth.PasswordOTPRepository. A new request replaces
// any previous code for the same email.
func (r *passwordOTPRepositoryImpl) Upsert(ctx context.Context, otp auth.PasswordOTP) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO password_otps (email, otp, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT uq_password_otps_email
		DO UPDATE SET otp = EXCLUDED.otp, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, otp.Email, otp.Code, otp.ExpiresAt); err != nil {
		return fmt.Errorf("failed to upsert password otp: %w", err)
	}

	return nil
}

// GetByEmail implements auth.PasswordOTPRepository.
func (r *passwordOTPRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.PasswordOTP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, otp, expires_at, created_at
		FROM password_otps
		WHERE email = $1
	`

	var otp auth.PasswordOTP
	err := q.QueryRow(ctx, query, email).Scan(
		&otp.ID, &otp.Email, &otp.Code, &otp.ExpiresAt, &otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.PasswordOTP{}, auth.ErrInvalidOTP
		}
		return auth.PasswordOTP{}, fmt.Errorf("failed to get password otp: %w", err)
	}

	return otp, nil
}

// DeleteByEmail implements auth.PasswordOTPRepository.
func (r *passwordOTPRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM password_otps WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to delete password otp: %w", err)
	}

	return nil
}
