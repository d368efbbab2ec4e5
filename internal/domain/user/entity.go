package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string
	Fullname     string
	Email        string
	Username     string
	Phone        *string
	Salary       *decimal.Decimal
	WorkingDays  *int
	Photo        *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
