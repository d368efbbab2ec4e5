package response

import (
	"errors"
	"net/http"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/auth"
	"github.com/abghifareihand/overtime-connect-backend/internal/domain/overtime"
	"github.com/abghifareihand/overtime-connect-backend/internal/domain/user"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid login or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "OTP code is invalid or expired", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrWrongPassword):
		Unauthorized(w, "Password is incorrect")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrDuplicateDate):
		Conflict(w, "Overtime already recorded for this date")
	case errors.Is(err, overtime.ErrRecordNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrNegativeSalary),
		errors.Is(err, overtime.ErrNegativeHours),
		errors.Is(err, overtime.ErrInvalidDayType),
		errors.Is(err, overtime.ErrInvalidWorkingDays):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
