package overtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormulaString renders the arithmetic of one line item for display,
// e.g. "1 x 5.000.000 x 1.5 / 173". The salary uses a fixed "." as the
// thousands separator regardless of ambient locale.
func FormulaString(salary decimal.Decimal, item LineItem) string {
	return fmt.Sprintf("%s x %s x %s / %d",
		strconv.FormatFloat(item.Quantity, 'f', -1, 64),
		formatThousands(salary),
		item.Rate.String(),
		MonthlyHoursDivisor,
	)
}

// DetailItems converts a breakdown into its persisted, display-ready
// form: one formula string plus rounded result per line item.
func (b Breakdown) DetailItems(salary decimal.Decimal) []DetailItem {
	details := make([]DetailItem, 0, len(b.Items))
	for _, item := range b.Items {
		details = append(details, DetailItem{
			Formula: FormulaString(salary, item),
			Result:  item.Result,
		})
	}
	return details
}

func formatThousands(d decimal.Decimal) string {
	digits := d.Round(0).String()

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}
