package types

import "fmt"

// Supported log levels and formats
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel   string `json:"log_level,omitempty" mapstructure:"log_level"`
	LogFormat  string `json:"log_format,omitempty" mapstructure:"log_format"`
	ToolPrefix string `json:"tool_prefix,omitempty" mapstructure:"tool_prefix"`
}

// Validate checks that the configuration values are supported
func (c *Config) Validate() error {
	if !contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q, expected one of %v", c.LogLevel, LogLevels)
	}
	if !contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q, expected one of %v", c.LogFormat, LogFormats)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
