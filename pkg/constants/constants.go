// Package constants provides shared constants for the mortgage-planner application.
package constants

// DateTimeLayout is the date format expected in config files and is also the
// output date format. Simulated months are identified by their first day.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the coarse day count used for elapsed-year measurements
	DaysPerYear = 365

	// DefaultPayoffEpsilon is the default tolerance below which the remaining
	// principal is treated as fully repaid; configurable per scenario for
	// currencies with different precision
	DefaultPayoffEpsilon = 1e-5

	// MaxSimulationYears is the hard cutoff that bounds every simulation run
	// regardless of input
	MaxSimulationYears = 60

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 penny)
	CurrencyTolerance = 0.01
)

// Early repayment mode constants
const (
	// DisabledAllowanceYears is the allowance window applied when early
	// repayment is disabled; the capped window then outlasts any simulation
	DisabledAllowanceYears = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default scenario configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML
	// scenario files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
