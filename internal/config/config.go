package config

import "bitkit/pkg/bitint"

// Core configuration constants that define the boundaries and defaults
// for the bitkit tools.
const (
	// Default values for the configuration
	DefaultDebug               = false  // Quiet operation
	DefaultLogLevel            = "info" // Info and above
	DefaultDisplayWidth        = 8      // Matches bitset<8> in the demo output
	DefaultColor               = true   // Styled output on terminals
	DefaultDemoValue           = 5      // Binary 101
	DefaultMaxPowerSetElements = 16     // 65536 subsets
	DefaultVerifyLimit         = 1024   // Inputs checked by `verify`

	// Hard limits
	MaxPowerSetElements = bitint.MaxPowerSetElements
	MaxVerifyLimit      = 1 << 20 // Largest sweep accepted by `verify`
)

// SupportedWidths lists the word widths the demo and explorer can render.
var SupportedWidths = []int{8, 16, 32, 64}

// Config represents the application configuration, loaded from YAML and
// then overridden by environment variables and command line flags.
type Config struct {
	Debug    bool          `yaml:"debug"`             // Enable debug logging.
	LogLevel string        `yaml:"log_level"`         // Logging level (e.g., "debug", "info", "warn", "error").
	Command  string        `yaml:"command,omitempty"` // Subcommand selected on the command line.
	Display  DisplayConfig `yaml:"display"`           // Rendering of words.
	Demo     DemoConfig    `yaml:"demo"`              // Demonstration settings.
	Limits   LimitsConfig  `yaml:"limits"`            // Bounds on exponential or slow commands.
}

// DisplayConfig controls how words are printed.
type DisplayConfig struct {
	Width int  `yaml:"width"` // Bits shown per word: 8, 16, 32 or 64.
	Color bool `yaml:"color"` // Use lipgloss styles in the explorer and demo.
}

// DemoConfig holds the starting point for `demo` and `explore`.
type DemoConfig struct {
	Value int64 `yaml:"value"` // Word the demonstration starts from.
}

// LimitsConfig bounds commands whose cost grows quickly with input.
type LimitsConfig struct {
	MaxPowerSetElements int   `yaml:"max_powerset_elements"` // Largest input accepted by `powerset`.
	VerifyLimit         int64 `yaml:"verify_limit"`          // Upper bound swept by `verify`.
}

// NewConfig creates a new Config instance with default values.
// This is the base configuration before a config file, the environment
// or command line flags are applied.
func NewConfig() *Config {
	return &Config{
		Debug:    DefaultDebug,
		LogLevel: DefaultLogLevel,
		Display: DisplayConfig{
			Width: DefaultDisplayWidth,
			Color: DefaultColor,
		},
		Demo: DemoConfig{
			Value: DefaultDemoValue,
		},
		Limits: LimitsConfig{
			MaxPowerSetElements: DefaultMaxPowerSetElements,
			VerifyLimit:         DefaultVerifyLimit,
		},
	}
}
