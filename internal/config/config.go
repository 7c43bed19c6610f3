package config

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment
const EnvPrefix = "CALC_MCP"

// Default configuration values
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Flag names
const (
	FlagConfig     = "config"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagToolPrefix = "tool-prefix"
)

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	FlagLogLevel:   "log_level",
	FlagLogFormat:  "log_format",
	FlagToolPrefix: "tool_prefix",
}

// RegisterFlags adds the configuration flags to a flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfig, "", "Path to a YAML or TOML configuration file")
	flags.String(FlagLogLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String(FlagLogFormat, DefaultLogFormat, "Log format (text, json)")
	flags.String(FlagToolPrefix, "", "Prefix added to every tool name, e.g. \"calc.\"")
}

// Load resolves the configuration from defaults, the environment, an optional
// config file and command line flags, in increasing order of precedence
func Load(flags *pflag.FlagSet) (*types.Config, error) {
	v := viper.New()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("tool_prefix", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}

		if path, err := flags.GetString(FlagConfig); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var config types.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
