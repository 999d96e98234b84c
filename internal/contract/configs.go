package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/infality/benchplot/schema"
)

// Default values for configuration.
const (
	DefaultSuffix       = ".txt"
	DefaultPrecision    = 2
	DefaultResultLimit  = 20
	MaxResultLimit      = 1000
	DefaultChartFile    = "benchmarks.png"
	DefaultChartWidth   = 1280
	DefaultChartHeight  = 720
	MinChartDimension   = 320
	MaxChartDimension   = 8192
	DefaultRuns         = 10
	DefaultWarmup       = 1
	DefaultMeasureLabel = "benchmark"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a benchplot invocation.
// This struct remains the "final, validated" config.
type Config struct {
	BenchDir   string // Absolute path to the benchmark directory
	Suffix     string // File name suffix for discovery (must begin with a dot)
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	ChartFile   string
	ChartFormat schema.ImageFormat
	ChartTitle  string
	ChartWidth  int
	ChartHeight int
	OpenChart   bool

	Runs         int
	Warmup       int
	MeasureLabel string
	Timeout      time.Duration

	ResultLimit int

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	BenchDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Suffix           string `mapstructure:"suffix"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from chartCmd.Flags() ---
	ChartOut    string `mapstructure:"out"`
	ChartTitle  string `mapstructure:"title"`
	ChartWidth  int    `mapstructure:"chart-width"`
	ChartHeight int    `mapstructure:"chart-height"`
	Open        bool   `mapstructure:"open"`

	// --- Fields from measureCmd.Flags() ---
	Runs    int    `mapstructure:"runs"`
	Warmup  int    `mapstructure:"warmup"`
	Label   string `mapstructure:"label"`
	Timeout string `mapstructure:"timeout"`

	// --- Fields from history subcommand flags ---
	Limit         int `mapstructure:"limit"`
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processChartOptions(cfg, input); err != nil {
		return err
	}
	if err := processMeasureOptions(cfg, input); err != nil {
		return err
	}
	if err := resolveBenchDir(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Suffix Validation ---
	if !strings.HasPrefix(input.Suffix, ".") {
		return fmt.Errorf("suffix must begin with a dot (received %q)", input.Suffix)
	}
	cfg.Suffix = input.Suffix

	// --- 2. Precision Validation ---
	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. Limit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 5. Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	return nil
}

// processChartOptions validates the chart artifact path and dimensions.
// The image format is derived from the artifact extension.
func processChartOptions(cfg *Config, input *ConfigRawInput) error {
	cfg.ChartFile = input.ChartOut
	cfg.ChartTitle = input.ChartTitle
	cfg.OpenChart = input.Open

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.ChartOut)), ".")
	cfg.ChartFormat = schema.ImageFormat(ext)
	if _, ok := schema.ValidImageFormats[cfg.ChartFormat]; !ok {
		return fmt.Errorf("chart output %q must end in .png or .svg", input.ChartOut)
	}

	if input.ChartWidth < MinChartDimension || input.ChartWidth > MaxChartDimension {
		return fmt.Errorf("chart-width must be between %d and %d (received %d)", MinChartDimension, MaxChartDimension, input.ChartWidth)
	}
	cfg.ChartWidth = input.ChartWidth

	if input.ChartHeight < MinChartDimension || input.ChartHeight > MaxChartDimension {
		return fmt.Errorf("chart-height must be between %d and %d (received %d)", MinChartDimension, MaxChartDimension, input.ChartHeight)
	}
	cfg.ChartHeight = input.ChartHeight

	return nil
}

// processMeasureOptions validates the measurement runner parameters.
func processMeasureOptions(cfg *Config, input *ConfigRawInput) error {
	if input.Runs < 1 {
		return fmt.Errorf("runs must be at least 1 (received %d)", input.Runs)
	}
	cfg.Runs = input.Runs

	if input.Warmup < 0 {
		return fmt.Errorf("warmup cannot be negative (received %d)", input.Warmup)
	}
	cfg.Warmup = input.Warmup

	label := strings.TrimSpace(input.Label)
	if label == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if strings.ContainsAny(label, `/\`) {
		return fmt.Errorf("label %q cannot contain path separators", label)
	}
	cfg.MeasureLabel = label

	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if timeout < 0 {
			return fmt.Errorf("timeout cannot be negative (received %s)", timeout)
		}
		cfg.Timeout = timeout
	}

	return nil
}

// resolveBenchDir resolves the benchmark directory to an absolute path.
// The directory is carried explicitly through the whole pipeline; the
// process working directory is never changed. Existence is checked at
// discovery time so listing failures surface with the offending path.
func resolveBenchDir(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.BenchDirStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return fmt.Errorf("cannot resolve benchmark directory %q: %w", searchPath, err)
	}
	cfg.BenchDir = filepath.Clean(absSearchPath)
	return nil
}
