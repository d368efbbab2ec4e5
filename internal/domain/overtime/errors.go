package overtime

import "errors"

// Overtime domain errors
var (
	// Calculator errors
	ErrNegativeSalary     = errors.New("monthly salary must not be negative")
	ErrNegativeHours      = errors.New("overtime hours must not be negative")
	ErrInvalidDayType     = errors.New("day type must be 'regular' or 'holiday'")
	ErrInvalidWorkingDays = errors.New("working days must be 5 or 6 for holiday overtime")

	// Record errors
	ErrDuplicateDate  = errors.New("overtime already recorded for this date")
	ErrRecordNotFound = errors.New("overtime record not found")
)
