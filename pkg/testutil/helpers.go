// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-planner/internal/simulation"
	"github.com/iwvelando/mortgage-planner/pkg/datetime"
	"go.uber.org/zap"
)

// BaselineParameters returns a valid scenario matching the example
// configuration, suitable as a starting point for tests.
func BaselineParameters() simulation.Parameters {
	return simulation.Parameters{
		StartDate:             datetime.MustParseTime(datetime.DateTimeLayout, "2025-08-01"),
		InitialSavings:        5000,
		MortgagePrincipal:     125000,
		MonthlyPayment:        850,
		MonthlyRevenue:        3000,
		EarlyRepayCapFraction: 0.10,
		AllowanceYears:        4,
		MortgageAnnualRate:    0.0492,
		SavingsAnnualRate:     0.03,
		ProjectionYears:       25,
	}
}

// MustSimulate runs the simulation and fails the test on any error.
func MustSimulate(t *testing.T, params simulation.Parameters) simulation.Result {
	t.Helper()
	result, err := simulation.Simulate(zap.NewNop(), params)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	return result
}
