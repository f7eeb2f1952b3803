// Package config provides viper-backed configuration for the frontierpath
// CLI: the parser's edge-count cap, default logging settings, and the
// metrics listen address. None of this is read by the core construction
// packages (zdd, frontier, pathgraph) — config is resolved once in main and
// passed down as explicit parameters, keeping the core itself flag-free.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all CLI-level configuration.
type Config struct {
	Parser  ParserConfig  `mapstructure:"parser"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ParserConfig configures adjtext.Parse.
type ParserConfig struct {
	MaxEdges int `mapstructure:"max_edges"`
}

// LogConfig configures obslog.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig configures the optional metrics HTTP endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Load reads configuration from configPath (a YAML file) if non-empty; a
// missing or unreadable file is an error. Keys the file does not set take
// their defaults, and environment variables prefixed FRONTIERPATH_ (nested
// keys joined by underscore, e.g. FRONTIERPATH_PARSER_MAX_EDGES) override
// both.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FRONTIERPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("parser.max_edges", 1024)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
}

// Validate rejects configuration values the CLI could not act on.
func (c *Config) Validate() error {
	if c.Parser.MaxEdges < 0 {
		return fmt.Errorf("parser.max_edges must be >= 0 (0 disables the cap), got %d", c.Parser.MaxEdges)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
