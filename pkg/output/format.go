// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-planner/internal/simulation"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary holds the headline figures for one simulation run.
type Summary struct {
	MonthsToZeroPrincipal int
	TotalMonthsSimulated  int
	Duration              string
	TotalInterestPaid     float64
	FinalSavings          float64
	PaidOff               bool
}

// Summarize condenses a simulation result into its headline figures.
func Summarize(result simulation.Result) Summary {
	return Summary{
		MonthsToZeroPrincipal: result.MonthsToZeroPrincipal,
		TotalMonthsSimulated:  result.TotalMonthsSimulated,
		Duration:              format.Duration(result.MonthsToZeroPrincipal),
		TotalInterestPaid:     result.TotalInterestPaid,
		FinalSavings:          result.FinalSavings,
		PaidOff:               result.PaidOff,
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result simulation.Result) {
	p := message.NewPrinter(language.English)
	summary := Summarize(result)

	fmt.Printf("--- Mortgage repayment simulation ---\n")
	if summary.PaidOff {
		fmt.Printf("Duration:            %d months (%s)\n", summary.MonthsToZeroPrincipal, summary.Duration)
	} else {
		fmt.Printf("Duration:            not paid off within %d months\n", summary.TotalMonthsSimulated)
	}
	fmt.Printf("Total interest paid: %s\n", format.Currency(summary.TotalInterestPaid))
	fmt.Printf("Final savings:       %s\n", format.Currency(summary.FinalSavings))
	fmt.Printf("\n")
	fmt.Printf("Date       | Principal     | Savings       | Interest Paid | Total Paid\n")
	fmt.Printf("____       | _________     | _______       | _____________ | __________\n")
	for _, record := range result.History {
		_, _ = p.Printf("%s | %13.2f | %13.2f | %13.2f | %13.2f\n",
			record.Date.Format(constants.DateTimeLayout),
			record.PrincipalRemaining,
			record.SavingsBalance,
			record.CumulativeInterestPaid,
			record.CumulativeTotalPaid,
		)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result simulation.Result) {
	fmt.Print(CsvString(result.History))
}

// CsvString serializes the history in comma-separated value format. The
// columns are a pass-through of the history record fields.
func CsvString(history []simulation.HistoryRecord) string {
	var builder strings.Builder
	builder.WriteString(`"date","principal_remaining","savings","interest_paid","total_paid"` + "\n")
	for _, record := range history {
		fmt.Fprintf(&builder, `"%s","%.2f","%.2f","%.2f","%.2f"`+"\n",
			record.Date.Format(constants.DateTimeLayout),
			record.PrincipalRemaining,
			record.SavingsBalance,
			record.CumulativeInterestPaid,
			record.CumulativeTotalPaid,
		)
	}
	return builder.String()
}
