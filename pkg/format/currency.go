package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
)

// Currency returns a currency string with a pound sign and thousands separators (e.g., "-£1,234.56").
// Sub-penny amounts round to zero rather than rendering as "-£0.00".
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-£" + formatted
	}
	return "£" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	amount = mathutil.Round(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Duration renders a month count as a years-and-months label (e.g., "10y 4m").
func Duration(months int) string {
	years := months / constants.MonthsPerYear
	remainder := months % constants.MonthsPerYear
	return fmt.Sprintf("%dy %dm", years, remainder)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
