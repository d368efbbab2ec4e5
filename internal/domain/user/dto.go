package user

import (
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID          string           `json:"id"`
	Fullname    string           `json:"fullname"`
	Email       string           `json:"email"`
	Username    string           `json:"username"`
	Phone       *string          `json:"phone,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	WorkingDays *int             `json:"working_days,omitempty"`
	PhotoURL    *string          `json:"photo_url,omitempty"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Fullname:    u.Fullname,
		Email:       u.Email,
		Username:    u.Username,
		Phone:       u.Phone,
		Salary:      u.Salary,
		WorkingDays: u.WorkingDays,
	}
}

type UpdateProfileRequest struct {
	Fullname    *string `json:"fullname,omitempty"`
	Username    *string `json:"username,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	WorkingDays *int    `json:"working_days,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Fullname != nil && validator.IsEmpty(*r.Fullname) {
		errs = append(errs, validator.ValidationError{Field: "fullname", Message: "must not be empty"})
	}
	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.WorkingDays != nil && *r.WorkingDays != 5 && *r.WorkingDays != 6 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be 5 or 6"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmailRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *UpdateEmailRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUsernameRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *UpdateUsernameRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, '.', '_', '-')"})
	} else if validator.IsValidEmail(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must not be an email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	Salary   decimal.Decimal `json:"salary"`
	Password string          `json:"password"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password"`
	NewPassword          string `json:"new_password"`
	NewPasswordConfirmed string `json:"new_password_confirmation"`
}

func (r *UpdatePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "current_password", Message: "is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 8 characters"})
	}
	if r.NewPassword != r.NewPasswordConfirmed {
		errs = append(errs, validator.ValidationError{Field: "new_password_confirmation", Message: "does not match new password"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
