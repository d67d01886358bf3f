// Package simulation models a mortgage paid down alongside an interest-bearing
// savings account, subject to a capped early-repayment allowance that becomes
// unlimited after a configurable number of years. The simulator is a pure
// function of its parameters; it depends on calendar arithmetic only, never on
// wall-clock time.
package simulation

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/datetime"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// Parameters holds the immutable inputs for one simulation run.
type Parameters struct {
	// StartDate is the first day of the first simulated month. The day
	// component is conventionally 1; other days are accepted.
	StartDate time.Time

	InitialSavings    float64
	MortgagePrincipal float64
	MonthlyPayment    float64
	MonthlyRevenue    float64

	// EarlyRepayCapFraction is the fraction in [0,1] of the principal
	// outstanding at the start of each calendar year that may be extra-repaid
	// during that year while the allowance window is active.
	EarlyRepayCapFraction float64

	// AllowanceYears is the number of calendar years from StartDate during
	// which the cap applies; thereafter the full remaining principal may be
	// repaid in a single month.
	AllowanceYears int

	// Annual nominal rates, converted internally to monthly rates.
	MortgageAnnualRate float64
	SavingsAnnualRate  float64

	// ProjectionYears is the minimum number of years to keep simulating even
	// after the mortgage reaches zero, so the savings trajectory can be
	// observed.
	ProjectionYears int

	// PayoffEpsilon is the tolerance below which the remaining principal is
	// treated as fully repaid. Zero selects the default.
	PayoffEpsilon float64
}

// HistoryRecord is one month-indexed snapshot of the simulated state. The
// first record is the state before any month is processed.
type HistoryRecord struct {
	Date                   time.Time
	PrincipalRemaining     float64
	SavingsBalance         float64
	CumulativeInterestPaid float64
	CumulativeTotalPaid    float64
}

// Result holds the trajectory and summary totals for one simulation run.
// MonthsToZeroPrincipal counts only the months until the principal first
// reached zero; TotalMonthsSimulated additionally includes projection months
// simulated after payoff.
type Result struct {
	MonthsToZeroPrincipal int
	TotalMonthsSimulated  int
	History               []HistoryRecord
	TotalInterestPaid     float64
	FinalSavings          float64
	PaidOff               bool
}

// Validate checks the scenario parameters against the simulator's
// preconditions and returns an InvalidParameterError for the first violation.
func (p Parameters) Validate() error {
	if p.StartDate.IsZero() {
		return &InvalidParameterError{Field: "startDate", Reason: "must be set"}
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"initialSavings", p.InitialSavings},
		{"mortgagePrincipal", p.MortgagePrincipal},
		{"monthlyPayment", p.MonthlyPayment},
		{"monthlyRevenue", p.MonthlyRevenue},
		{"mortgageAnnualRate", p.MortgageAnnualRate},
		{"savingsAnnualRate", p.SavingsAnnualRate},
	}
	for _, amount := range amounts {
		if !mathutil.IsFinite(amount.value) {
			return &InvalidParameterError{Field: amount.field, Reason: "must be finite"}
		}
		if amount.value < 0 {
			return &InvalidParameterError{Field: amount.field, Reason: "must be non-negative"}
		}
	}

	if !mathutil.IsFinite(p.EarlyRepayCapFraction) || p.EarlyRepayCapFraction < 0 || p.EarlyRepayCapFraction > 1 {
		return &InvalidParameterError{Field: "earlyRepayCapFraction", Reason: "must be in [0,1]"}
	}
	if p.AllowanceYears < 0 {
		return &InvalidParameterError{Field: "allowanceYears", Reason: "must be non-negative"}
	}
	if p.ProjectionYears < 0 {
		return &InvalidParameterError{Field: "projectionYears", Reason: "must be non-negative"}
	}
	if !mathutil.IsFinite(p.PayoffEpsilon) || p.PayoffEpsilon < 0 {
		return &InvalidParameterError{Field: "payoffEpsilon", Reason: "must be a non-negative finite value"}
	}

	return nil
}

// Simulate runs the monthly repayment loop for one scenario. It returns a
// DivergentScenarioError, along with the truncated trajectory, when the hard
// cutoff is reached with principal still outstanding.
func Simulate(logger *zap.Logger, params Parameters) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	epsilon := params.PayoffEpsilon
	if epsilon == 0 {
		epsilon = constants.DefaultPayoffEpsilon
	}

	monthlyMortgageRate := params.MortgageAnnualRate / constants.MonthsPerYear
	monthlySavingsRate := params.SavingsAnnualRate / constants.MonthsPerYear

	principal := params.MortgagePrincipal
	savings := params.InitialSavings
	monthCount := 0
	monthsToZero := 0
	totalInterestPaid := 0.0
	paidOff := principal <= epsilon

	startDate := params.StartDate
	currentDate := params.StartDate
	unlimitedFromDate := startDate.AddDate(params.AllowanceYears, 0, 0)
	yearlyPrincipalSnapshot := principal
	earlyRepayUsed := 0.0

	history := []HistoryRecord{snapshot(currentDate, params.MortgagePrincipal, principal, savings, totalInterestPaid)}

	for principal > epsilon || datetime.ElapsedYears(startDate, currentDate) < params.ProjectionYears {
		// Interest capitalizes onto the principal every month; it is not a
		// separate ledger that could be waived.
		interestThisMonth := principal * monthlyMortgageRate
		totalInterestPaid += interestThisMonth
		principal += interestThisMonth

		// Savings compound before any deposits or withdrawals this month.
		savings *= 1 + monthlySavingsRate

		// The mandatory payment never overpays. A negative leftover is
		// allowed and later drawn from savings.
		actualPayment := mathutil.Min(params.MonthlyPayment, principal)
		principal -= actualPayment
		leftover := params.MonthlyRevenue - actualPayment

		// The allowance resets on the January being processed, using the
		// pre-increment date, so it fires before this month's cap is computed.
		if currentDate.Month() == time.January && currentDate.Day() == 1 {
			yearlyPrincipalSnapshot = principal
			earlyRepayUsed = 0
		}

		var earlyRepayLimit float64
		if currentDate.Before(unlimitedFromDate) {
			earlyRepayLimit = yearlyPrincipalSnapshot*params.EarlyRepayCapFraction - earlyRepayUsed
		} else {
			earlyRepayLimit = principal
		}

		// Early repayment is funded first from this month's leftover income,
		// then from existing savings, never exceeding the cap or the
		// remaining principal.
		actualEarlyRepay := mathutil.Min(mathutil.Min(leftover+savings, earlyRepayLimit), principal)
		if actualEarlyRepay > leftover {
			fromSavings := actualEarlyRepay - leftover
			savings = mathutil.Max(0, savings-fromSavings)
			leftover = 0
		} else {
			leftover -= actualEarlyRepay
		}
		principal -= actualEarlyRepay
		earlyRepayUsed += actualEarlyRepay

		savings += leftover

		monthCount++
		currentDate = datetime.AddOneMonth(currentDate)

		history = append(history, snapshot(currentDate, params.MortgagePrincipal, principal, savings, totalInterestPaid))

		if !paidOff && principal <= epsilon {
			paidOff = true
			monthsToZero = monthCount
			logger.Debug(fmt.Sprintf("principal retired after %d months", monthCount),
				zap.String("op", "simulation.Simulate"),
			)
		}

		if datetime.ElapsedDays(startDate, currentDate) > constants.DaysPerYear*constants.MaxSimulationYears {
			result := buildResult(monthsToZero, monthCount, history, totalInterestPaid, savings, paidOff)
			if principal > epsilon {
				return result, &DivergentScenarioError{
					PrincipalRemaining: principal,
					MonthsSimulated:    monthCount,
				}
			}
			logger.Warn("projection horizon truncated at the simulation cutoff",
				zap.String("op", "simulation.Simulate"),
				zap.Int("months", monthCount),
			)
			return result, nil
		}
	}

	return buildResult(monthsToZero, monthCount, history, totalInterestPaid, savings, paidOff), nil
}

func snapshot(date time.Time, originalPrincipal, principal, savings, totalInterestPaid float64) HistoryRecord {
	return HistoryRecord{
		Date:                   date,
		PrincipalRemaining:     principal,
		SavingsBalance:         savings,
		CumulativeInterestPaid: totalInterestPaid,
		CumulativeTotalPaid:    originalPrincipal - principal + totalInterestPaid,
	}
}

func buildResult(monthsToZero, monthCount int, history []HistoryRecord, totalInterestPaid, savings float64, paidOff bool) Result {
	return Result{
		MonthsToZeroPrincipal: monthsToZero,
		TotalMonthsSimulated:  monthCount,
		History:               history,
		TotalInterestPaid:     totalInterestPaid,
		FinalSavings:          savings,
		PaidOff:               paidOff,
	}
}
