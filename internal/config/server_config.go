package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	MetricsPort        int      `mapstructure:"metrics_port"`
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int      `mapstructure:"rate_limit_burst"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	StatsSchedule      string   `mapstructure:"stats_schedule"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: server port"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: metrics port"))
	}
	if config.StatsSchedule == "" {
		errs = append(errs, fmt.Errorf("missing variable: stats_schedule"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "SERVER_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
