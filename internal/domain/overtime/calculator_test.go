package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSalary = decimal.NewFromInt(5000000)

// expected per-hour amounts for salary 5,000,000:
// 5000000 * 1.5 / 173 = 43352.6...  -> 43353
// 5000000 * 2   / 173 = 57803.4...  -> 57803
// 5000000 * 3   / 173 = 86705.2...  -> 86705
// 5000000 * 4   / 173 = 115606.9... -> 115607
// half hour at rate 2: 5000000 * 2 * 0.5 / 173 = 28901.7... -> 28902

func TestCalculate_ZeroHours(t *testing.T) {
	breakdown, err := Calculate(testSalary, DayTypeRegular, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, breakdown.Items)
	assert.True(t, breakdown.Total.IsZero(), "total = %s, want 0", breakdown.Total)
}

func TestCalculate_RegularSingleHour(t *testing.T) {
	breakdown, err := Calculate(testSalary, DayTypeRegular, 0, 1)
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 1)

	item := breakdown.Items[0]
	assert.Equal(t, float64(1), item.Quantity)
	assert.True(t, item.Rate.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, item.Result.Equal(decimal.NewFromInt(43353)), "result = %s", item.Result)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(43353)))
}

func TestCalculate_RegularWithHalfHour(t *testing.T) {
	breakdown, err := Calculate(testSalary, DayTypeRegular, 0, 2.5)
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 3)

	wantRates := []string{"1.5", "2", "2"}
	wantQuantities := []float64{1, 1, 0.5}
	wantResults := []int64{43353, 57803, 28902}
	for i, item := range breakdown.Items {
		assert.Equal(t, wantRates[i], item.Rate.String(), "item %d rate", i)
		assert.Equal(t, wantQuantities[i], item.Quantity, "item %d quantity", i)
		assert.True(t, item.Result.Equal(decimal.NewFromInt(wantResults[i])), "item %d result = %s", i, item.Result)
	}

	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(43353+57803+28902)), "total = %s", breakdown.Total)
}

func TestCalculate_HolidayFiveDayWeek(t *testing.T) {
	breakdown, err := Calculate(testSalary, DayTypeHoliday, FiveDayWeek, 10)
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 10)

	wantRates := []string{"2", "2", "2", "2", "2", "2", "2", "2", "3", "4"}
	total := decimal.Zero
	for i, item := range breakdown.Items {
		assert.Equal(t, wantRates[i], item.Rate.String(), "hour %d rate", i+1)
		total = total.Add(item.Result)
	}
	assert.True(t, breakdown.Total.Equal(total))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(8*57803+86705+115607)), "total = %s", breakdown.Total)
}

func TestCalculate_HolidaySixDayWeek(t *testing.T) {
	breakdown, err := Calculate(testSalary, DayTypeHoliday, SixDayWeek, 9)
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 9)

	wantRates := []string{"2", "2", "2", "2", "2", "2", "2", "3", "4"}
	for i, item := range breakdown.Items {
		assert.Equal(t, wantRates[i], item.Rate.String(), "hour %d rate", i+1)
	}
}

func TestCalculate_LoneHalfHourIsDropped(t *testing.T) {
	// No full hour means no established rate for the half hour.
	breakdown, err := Calculate(testSalary, DayTypeRegular, 0, 0.5)
	require.NoError(t, err)
	assert.Empty(t, breakdown.Items)
	assert.True(t, breakdown.Total.IsZero())
}

func TestCalculate_OtherFractionsTruncated(t *testing.T) {
	withFraction, err := Calculate(testSalary, DayTypeRegular, 0, 2.3)
	require.NoError(t, err)
	whole, err2 := Calculate(testSalary, DayTypeRegular, 0, 2)
	require.NoError(t, err2)

	assert.Equal(t, whole, withFraction)
}

func TestCalculate_HolidayHalfHourUsesLastRate(t *testing.T) {
	// 9.5 hours, 6-day week: the ninth hour is at rate 4, so the half
	// hour is as well.
	breakdown, err := Calculate(testSalary, DayTypeHoliday, SixDayWeek, 9.5)
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 10)

	last := breakdown.Items[9]
	assert.Equal(t, 0.5, last.Quantity)
	assert.Equal(t, "4", last.Rate.String())
	// 5000000 * 4 * 0.5 / 173 = 57803.4... -> 57803
	assert.True(t, last.Result.Equal(decimal.NewFromInt(57803)), "result = %s", last.Result)
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(testSalary, DayTypeHoliday, FiveDayWeek, 10.5)
	require.NoError(t, err)
	second, err := Calculate(testSalary, DayTypeHoliday, FiveDayWeek, 10.5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_InvalidInput(t *testing.T) {
	cases := []struct {
		name        string
		salary      decimal.Decimal
		dayType     DayType
		workingDays WorkingDays
		hours       float64
		wantErr     error
	}{
		{"negative salary", decimal.NewFromInt(-1), DayTypeRegular, 0, 1, ErrNegativeSalary},
		{"negative hours", testSalary, DayTypeRegular, 0, -1, ErrNegativeHours},
		{"unknown day type", testSalary, DayType("weekend"), 0, 1, ErrInvalidDayType},
		{"holiday without working days", testSalary, DayTypeHoliday, 0, 1, ErrInvalidWorkingDays},
		{"holiday with invalid working days", testSalary, DayTypeHoliday, 7, 1, ErrInvalidWorkingDays},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.salary, tc.dayType, tc.workingDays, tc.hours)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCalculate_RegularIgnoresWorkingDays(t *testing.T) {
	five, err := Calculate(testSalary, DayTypeRegular, FiveDayWeek, 3)
	require.NoError(t, err)
	six, err := Calculate(testSalary, DayTypeRegular, SixDayWeek, 3)
	require.NoError(t, err)

	assert.Equal(t, five, six)
}
