package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

const exampleConfig = `---
simulation:
  startDate: 2025-08-01
  initialSavings: 5000
  mortgagePrincipal: 125000
  monthlyPayment: 850
  monthlyRevenue: 3000
  earlyRepayCapFraction: 0.10
  allowanceYears: 4
  mortgageAnnualRate: 0.0492
  savingsAnnualRate: 0.03
  projectionYears: 25
logging:
  level: info
  format: console
output:
  format: pretty
`

func TestLoadConfiguration(t *testing.T) {
	path := writeTempConfig(t, exampleConfig)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Simulation.StartDate != "2025-08-01" {
		t.Errorf("expected start date 2025-08-01, got %q", conf.Simulation.StartDate)
	}
	if conf.Simulation.MortgagePrincipal != 125000 {
		t.Errorf("expected principal 125000, got %.2f", conf.Simulation.MortgagePrincipal)
	}
	if conf.Simulation.EarlyRepayCapFraction != 0.10 {
		t.Errorf("expected cap fraction 0.10, got %.2f", conf.Simulation.EarlyRepayCapFraction)
	}
	if conf.Simulation.AllowanceYears != 4 {
		t.Errorf("expected 4 allowance years, got %d", conf.Simulation.AllowanceYears)
	}
	if conf.Logging.Level != "info" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("expected pretty output format, got %q", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestParameters(t *testing.T) {
	path := writeTempConfig(t, exampleConfig)
	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	params, err := conf.Parameters()
	if err != nil {
		t.Fatalf("Parameters() error = %v", err)
	}

	if params.StartDate.Format(DateTimeLayout) != "2025-08-01" {
		t.Errorf("expected parsed start date, got %s", params.StartDate.Format(DateTimeLayout))
	}
	if params.MortgagePrincipal != 125000 || params.MonthlyPayment != 850 {
		t.Errorf("unexpected loan parameters: %+v", params)
	}
	if params.ProjectionYears != 25 {
		t.Errorf("expected 25 projection years, got %d", params.ProjectionYears)
	}
}

func TestParametersInvalidStartDate(t *testing.T) {
	conf := Configuration{
		Simulation: SimulationConfig{StartDate: "08/01/2025"},
	}

	_, err := conf.Parameters()
	if err == nil {
		t.Fatal("expected an error for a malformed start date")
	}
	if !strings.Contains(err.Error(), "start date") {
		t.Errorf("expected the error to name the start date, got %v", err)
	}
}

func TestApplyEarlyRepaymentMode(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name              string
		earlyRepayment    EarlyRepaymentConfig
		expectedFraction  float64
		expectedAllowance int
	}{
		{
			name:              "Defaults untouched when enabled",
			earlyRepayment:    EarlyRepaymentConfig{Enabled: &enabled},
			expectedFraction:  0.10,
			expectedAllowance: 4,
		},
		{
			name:              "Defaults untouched when unset",
			earlyRepayment:    EarlyRepaymentConfig{},
			expectedFraction:  0.10,
			expectedAllowance: 4,
		},
		{
			name:              "Disabled zeroes the cap and stretches the window",
			earlyRepayment:    EarlyRepaymentConfig{Enabled: &disabled},
			expectedFraction:  0,
			expectedAllowance: 100,
		},
		{
			name:              "Disabled wins over unlimited",
			earlyRepayment:    EarlyRepaymentConfig{Enabled: &disabled, UnlimitedFromStart: true},
			expectedFraction:  0,
			expectedAllowance: 100,
		},
		{
			name:              "Unlimited from start collapses the window",
			earlyRepayment:    EarlyRepaymentConfig{UnlimitedFromStart: true},
			expectedFraction:  1.0,
			expectedAllowance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{
				Simulation: SimulationConfig{
					EarlyRepayCapFraction: 0.10,
					AllowanceYears:        4,
				},
				EarlyRepayment: tt.earlyRepayment,
			}

			conf.ApplyEarlyRepaymentMode()

			if conf.Simulation.EarlyRepayCapFraction != tt.expectedFraction {
				t.Errorf("expected fraction %.2f, got %.2f", tt.expectedFraction, conf.Simulation.EarlyRepayCapFraction)
			}
			if conf.Simulation.AllowanceYears != tt.expectedAllowance {
				t.Errorf("expected allowance %d, got %d", tt.expectedAllowance, conf.Simulation.AllowanceYears)
			}
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		simulation       SimulationConfig
		expectedWarnings int
		expectedFragment string
	}{
		{
			name: "Clean configuration",
			simulation: SimulationConfig{
				StartDate:          "2025-08-01",
				MortgagePrincipal:  125000,
				MonthlyPayment:     850,
				MortgageAnnualRate: 0.0492,
				ProjectionYears:    25,
			},
			expectedWarnings: 0,
		},
		{
			name: "Mid-month start date",
			simulation: SimulationConfig{
				StartDate:          "2025-08-15",
				MortgagePrincipal:  125000,
				MonthlyPayment:     850,
				MortgageAnnualRate: 0.0492,
			},
			expectedWarnings: 1,
			expectedFragment: "first of the month",
		},
		{
			name: "Payment below interest",
			simulation: SimulationConfig{
				StartDate:          "2025-08-01",
				MortgagePrincipal:  125000,
				MonthlyPayment:     100,
				MortgageAnnualRate: 0.0492,
			},
			expectedWarnings: 1,
			expectedFragment: "never reach payoff",
		},
		{
			name: "Projection past the cutoff",
			simulation: SimulationConfig{
				StartDate:          "2025-08-01",
				MortgagePrincipal:  125000,
				MonthlyPayment:     850,
				MortgageAnnualRate: 0.0492,
				ProjectionYears:    70,
			},
			expectedWarnings: 1,
			expectedFragment: "truncated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{Simulation: tt.simulation}
			warnings := conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Fatalf("expected %d warnings, got %d: %v", tt.expectedWarnings, len(warnings), warnings)
			}
			if tt.expectedFragment != "" && !strings.Contains(warnings[0], tt.expectedFragment) {
				t.Errorf("expected warning to contain %q, got %q", tt.expectedFragment, warnings[0])
			}
		})
	}
}
