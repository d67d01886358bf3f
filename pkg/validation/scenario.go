// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
)

// CheckStartDay warns when the simulation start date is not the first of a
// month. The simulator accepts other days but monthly snapshots then fall
// mid-month.
func CheckStartDay(day int) string {
	if day != 1 {
		return fmt.Sprintf("start date day is %d; the first of the month is the expected convention", day)
	}
	return ""
}

// CheckPaymentCoversInterest warns when the monthly payment does not cover
// the first month's interest, which means the principal grows and the
// scenario likely never reaches payoff. An interest-free mortgage never
// triggers the warning since early repayments alone can still retire it.
func CheckPaymentCoversInterest(principal, annualRate, payment float64) string {
	firstMonthInterest := principal * annualRate / constants.MonthsPerYear
	if principal > 0 && !mathutil.IsZero(firstMonthInterest) && payment <= firstMonthInterest {
		return fmt.Sprintf("monthly payment %.2f does not cover first-month interest %.2f - scenario may never reach payoff",
			payment, firstMonthInterest)
	}
	return ""
}

// CheckProjectionHorizon warns when the requested projection horizon exceeds
// the hard simulation cutoff and will be truncated.
func CheckProjectionHorizon(projectionYears int) string {
	if projectionYears > constants.MaxSimulationYears {
		return fmt.Sprintf("projection horizon of %d years exceeds the %d-year simulation cutoff and will be truncated",
			projectionYears, constants.MaxSimulationYears)
	}
	return ""
}
