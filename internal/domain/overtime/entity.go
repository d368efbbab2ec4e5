package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType classifies the day being worked, which selects the rate table.
type DayType string

const (
	DayTypeRegular DayType = "regular"
	DayTypeHoliday DayType = "holiday"
)

// WorkingDays is the employee's weekly working-day convention. It only
// matters for holiday overtime, where it shifts the rate tier boundaries.
type WorkingDays int

const (
	FiveDayWeek WorkingDays = 5
	SixDayWeek  WorkingDays = 6
)

// LineItem is the pay for a single overtime hour, or for the trailing
// half hour. Quantity is 1 for a full hour and 0.5 for the half hour.
// Result is already rounded to a whole currency unit.
type LineItem struct {
	Quantity float64
	Rate     decimal.Decimal
	Result   decimal.Decimal
}

// Breakdown is the full result of one overtime calculation: line items
// ordered first hour to last with the half hour (if any) at the end,
// and the total of the rounded items.
type Breakdown struct {
	Items []LineItem
	Total decimal.Decimal
}

// DetailItem is the persisted, display-ready form of a line item.
type DetailItem struct {
	Formula string          `json:"formula"`
	Result  decimal.Decimal `json:"result"`
}

// Record is one stored overtime entry. A user can have at most one
// record per calendar date.
type Record struct {
	ID            string
	UserID        string
	Date          time.Time
	OvertimeHours float64
	Attendance    bool
	DayType       DayType
	TotalOvertime decimal.Decimal
	Details       []DetailItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
