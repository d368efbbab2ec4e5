package auth

import "time"

// PasswordOTP holds a one time password issued for a reset request. Only the
// latest OTP per email is kept, a new request overwrites the previous one.
type PasswordOTP struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the OTP can no longer be redeemed.
func (o PasswordOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// RefreshToken is a persisted refresh token tied to a user. Rotation replaces
// the stored token, so a stolen old token stops working after the next refresh.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
