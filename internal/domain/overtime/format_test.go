package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaString(t *testing.T) {
	salary := decimal.NewFromInt(5000000)

	fullHour := LineItem{Quantity: 1, Rate: decimal.NewFromFloat(1.5), Result: decimal.NewFromInt(43353)}
	assert.Equal(t, "1 x 5.000.000 x 1.5 / 173", FormulaString(salary, fullHour))

	halfHour := LineItem{Quantity: 0.5, Rate: decimal.NewFromInt(2), Result: decimal.NewFromInt(28902)}
	assert.Equal(t, "0.5 x 5.000.000 x 2 / 173", FormulaString(salary, halfHour))
}

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{43353, "43.353"},
		{5000000, "5.000.000"},
		{1234567890, "1.234.567.890"},
	}
	for _, c := range cases {
		got := formatThousands(decimal.NewFromInt(c.input))
		assert.Equal(t, c.want, got, "formatThousands(%d)", c.input)
	}
}

func TestFormatThousands_RoundsFractionFirst(t *testing.T) {
	got := formatThousands(decimal.NewFromFloat(2500000.75))
	assert.Equal(t, "2.500.001", got)
}

func TestDetailItems(t *testing.T) {
	salary := decimal.NewFromInt(5000000)
	breakdown, err := Calculate(salary, DayTypeRegular, 0, 1.5)
	require.NoError(t, err)

	details := breakdown.DetailItems(salary)
	require.Len(t, details, 2)

	assert.Equal(t, "1 x 5.000.000 x 1.5 / 173", details[0].Formula)
	assert.True(t, details[0].Result.Equal(decimal.NewFromInt(43353)))
	assert.Equal(t, "0.5 x 5.000.000 x 1.5 / 173", details[1].Formula)
	// 5000000 * 1.5 * 0.5 / 173 = 21676.3... -> 21676
	assert.True(t, details[1].Result.Equal(decimal.NewFromInt(21676)), "result = %s", details[1].Result)
}
