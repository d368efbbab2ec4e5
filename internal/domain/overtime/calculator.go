package overtime

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyHoursDivisor is the fixed legal divisor for the hourly wage:
// the average number of working hours in a month.
const MonthlyHoursDivisor = 173

var (
	divisor = decimal.NewFromInt(MonthlyHoursDivisor)
	half    = decimal.NewFromFloat(0.5)

	rate15 = decimal.NewFromFloat(1.5)
	rate2  = decimal.NewFromInt(2)
	rate3  = decimal.NewFromInt(3)
	rate4  = decimal.NewFromInt(4)
)

// rateBand maps overtime hours up to and including UpTo (1-indexed,
// cumulative) to a multiplier. UpTo = 0 means unbounded and must close
// the table.
type rateBand struct {
	UpTo int
	Rate decimal.Decimal
}

type tableKey struct {
	day  DayType
	week WorkingDays
}

// Multiplier tables per day type and working-day convention. Regular
// days ignore the convention, so they are keyed with week = 0.
var rateTables = map[tableKey][]rateBand{
	{DayTypeRegular, 0}: {
		{UpTo: 1, Rate: rate15},
		{UpTo: 0, Rate: rate2},
	},
	{DayTypeHoliday, FiveDayWeek}: {
		{UpTo: 8, Rate: rate2},
		{UpTo: 9, Rate: rate3},
		{UpTo: 0, Rate: rate4},
	},
	{DayTypeHoliday, SixDayWeek}: {
		{UpTo: 7, Rate: rate2},
		{UpTo: 8, Rate: rate3},
		{UpTo: 0, Rate: rate4},
	},
}

func rateFor(dayType DayType, workingDays WorkingDays, hourIndex int) decimal.Decimal {
	key := tableKey{day: dayType, week: workingDays}
	if dayType == DayTypeRegular {
		key.week = 0
	}

	bands := rateTables[key]
	for _, band := range bands {
		if band.UpTo == 0 || hourIndex <= band.UpTo {
			return band.Rate
		}
	}
	return bands[len(bands)-1].Rate
}

// Calculate computes the itemized overtime pay for a monthly salary,
// day type, working-day convention and a fractional hour count. It is
// pure: identical inputs always yield an identical breakdown.
//
// Hours are split into whole hours plus an optional exact half-hour
// remainder; any other fraction is truncated. Each whole hour i pays
// round(salary * rate(i) / 173), rounded half away from zero. The half
// hour reuses the rate of the last whole hour at half weight; when
// there is no whole hour, no rate is established and the half hour
// pays nothing.
func Calculate(salary decimal.Decimal, dayType DayType, workingDays WorkingDays, hours float64) (Breakdown, error) {
	if salary.IsNegative() {
		return Breakdown{}, ErrNegativeSalary
	}
	if hours < 0 {
		return Breakdown{}, ErrNegativeHours
	}
	switch dayType {
	case DayTypeRegular:
	case DayTypeHoliday:
		if workingDays != FiveDayWeek && workingDays != SixDayWeek {
			return Breakdown{}, ErrInvalidWorkingDays
		}
	default:
		return Breakdown{}, ErrInvalidDayType
	}

	fullHours := int(math.Floor(hours))
	hasHalfHour := hours-math.Floor(hours) == 0.5

	var items []LineItem
	total := decimal.Zero
	var lastRate decimal.Decimal

	for i := 1; i <= fullHours; i++ {
		rate := rateFor(dayType, workingDays, i)
		result := salary.Mul(rate).Div(divisor).Round(0)
		items = append(items, LineItem{Quantity: 1, Rate: rate, Result: result})
		total = total.Add(result)
		lastRate = rate
	}

	if hasHalfHour && fullHours > 0 {
		result := salary.Mul(lastRate).Mul(half).Div(divisor).Round(0)
		items = append(items, LineItem{Quantity: 0.5, Rate: lastRate, Result: result})
		total = total.Add(result)
	}

	return Breakdown{Items: items, Total: total.Round(0)}, nil
}
