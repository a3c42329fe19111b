package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/arloliu/bbse/encoding"
)

// Default configuration values.
const (
	defaultRangeStart  = 0
	defaultRangeEnd    = 256
	defaultVerifyLimit = encoding.DefaultVerifyLimit
	envPrefix          = "BBSE"
	configName         = "bbse"
)

// Config holds the CLI configuration.
type Config struct {
	Range  RangeConfig  `mapstructure:"range"`
	Output OutputConfig `mapstructure:"output"`
	Verify VerifyConfig `mapstructure:"verify"`
}

// RangeConfig holds the range shared by encode and decode.
// Midpoint is only used when MidpointSet is true; otherwise the arithmetic
// midpoint is probed first.
type RangeConfig struct {
	Start    uint64 `mapstructure:"start"`
	End      uint64 `mapstructure:"end"`
	Midpoint uint64 `mapstructure:"midpoint"`

	// MidpointSet records whether any source supplied range.midpoint, so that an
	// explicit 0 is validated instead of read as "unset".
	MidpointSet bool `mapstructure:"-"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// VerifyConfig holds settings for the verify command.
type VerifyConfig struct {
	Limit uint64 `mapstructure:"limit"`
}

// loadConfig loads configuration from the config file, BBSE_* environment
// variables and bound flags, in increasing order of precedence.
func loadConfig(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bbse")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// range.midpoint has no default, so its env var must be bound explicitly
	if err := v.BindEnv("range.midpoint"); err != nil {
		return nil, fmt.Errorf("failed to bind midpoint env: %w", err)
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Range.MidpointSet = v.IsSet("range.midpoint")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("range.start", defaultRangeStart)
	v.SetDefault("range.end", defaultRangeEnd)
	v.SetDefault("output.color", true)
	v.SetDefault("verify.limit", defaultVerifyLimit)
}

// codec builds the codec described by the range configuration.
func (c *Config) codec() (*encoding.Codec, error) {
	var opts []encoding.CodecOption
	if c.Range.MidpointSet {
		opts = append(opts, encoding.WithMidpoint(c.Range.Midpoint))
	}

	codec, err := encoding.NewCodec(c.Range.Start, c.Range.End, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return codec, nil
}
