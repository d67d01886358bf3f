// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-planner/internal/simulation"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the date format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for mortgage-planner.
type Configuration struct {
	Simulation     SimulationConfig     `yaml:"simulation"`
	EarlyRepayment EarlyRepaymentConfig `yaml:"earlyRepayment,omitempty"`
	Logging        LoggingConfig        `yaml:"logging,omitempty"`
	Output         OutputConfig         `yaml:"output,omitempty"`
}

// SimulationConfig holds the scenario parameters for one simulation run.
type SimulationConfig struct {
	StartDate             string  `yaml:"startDate"`
	InitialSavings        float64 `yaml:"initialSavings"`
	MortgagePrincipal     float64 `yaml:"mortgagePrincipal"`
	MonthlyPayment        float64 `yaml:"monthlyPayment"`
	MonthlyRevenue        float64 `yaml:"monthlyRevenue"`
	EarlyRepayCapFraction float64 `yaml:"earlyRepayCapFraction"`
	AllowanceYears        int     `yaml:"allowanceYears"`
	MortgageAnnualRate    float64 `yaml:"mortgageAnnualRate"`
	SavingsAnnualRate     float64 `yaml:"savingsAnnualRate"`
	ProjectionYears       int     `yaml:"projectionYears"`
	PayoffEpsilon         float64 `yaml:"payoffEpsilon,omitempty"`
}

// EarlyRepaymentConfig holds the coarse early-repayment toggles. Disabling
// early repayment or allowing unlimited repayment from the start overrides
// the cap fraction and allowance years.
type EarlyRepaymentConfig struct {
	Enabled            *bool `yaml:"enabled,omitempty"` // nil means enabled
	UnlimitedFromStart bool  `yaml:"unlimitedFromStart,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ApplyEarlyRepaymentMode maps the coarse toggles onto the cap parameters:
// disabled repayment pushes the allowance window past any simulation with a
// zero cap, and unlimited-from-start collapses the window entirely.
func (conf *Configuration) ApplyEarlyRepaymentMode() {
	if conf.EarlyRepayment.Enabled != nil && !*conf.EarlyRepayment.Enabled {
		conf.Simulation.EarlyRepayCapFraction = 0
		conf.Simulation.AllowanceYears = constants.DisabledAllowanceYears
		return
	}
	if conf.EarlyRepayment.UnlimitedFromStart {
		conf.Simulation.EarlyRepayCapFraction = 1.0
		conf.Simulation.AllowanceYears = 0
	}
}

// Parameters converts the scenario configuration into simulation parameters,
// parsing the start date.
func (conf *Configuration) Parameters() (simulation.Parameters, error) {
	startDate, err := time.Parse(DateTimeLayout, conf.Simulation.StartDate)
	if err != nil {
		return simulation.Parameters{}, fmt.Errorf("invalid simulation start date %q: %w", conf.Simulation.StartDate, err)
	}

	return simulation.Parameters{
		StartDate:             startDate,
		InitialSavings:        conf.Simulation.InitialSavings,
		MortgagePrincipal:     conf.Simulation.MortgagePrincipal,
		MonthlyPayment:        conf.Simulation.MonthlyPayment,
		MonthlyRevenue:        conf.Simulation.MonthlyRevenue,
		EarlyRepayCapFraction: conf.Simulation.EarlyRepayCapFraction,
		AllowanceYears:        conf.Simulation.AllowanceYears,
		MortgageAnnualRate:    conf.Simulation.MortgageAnnualRate,
		SavingsAnnualRate:     conf.Simulation.SavingsAnnualRate,
		ProjectionYears:       conf.Simulation.ProjectionYears,
		PayoffEpsilon:         conf.Simulation.PayoffEpsilon,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard precondition violations surface later as errors from
// the simulator boundary.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if startDate, err := time.Parse(DateTimeLayout, conf.Simulation.StartDate); err == nil {
		if warning := validation.CheckStartDay(startDate.Day()); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if warning := validation.CheckPaymentCoversInterest(
		conf.Simulation.MortgagePrincipal,
		conf.Simulation.MortgageAnnualRate,
		conf.Simulation.MonthlyPayment,
	); warning != "" {
		warnings = append(warnings, warning)
	}

	if warning := validation.CheckProjectionHorizon(conf.Simulation.ProjectionYears); warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings
}
