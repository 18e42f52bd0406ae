package logger

import (
	"os"
	"strconv"
	"strings"
)

// NewLoggerFromEnv creates a logger configured only from environment variables.
func NewLoggerFromEnv() (Logger, error) {
	return NewZapLogger(ApplyEnv(baseConfigFromEnv()))
}

// NewLoggerWithComponent creates an env-configured logger with a component field pre-set.
func NewLoggerWithComponent(component string) (Logger, error) {
	l, err := NewLoggerFromEnv()
	if err != nil {
		return nil, err
	}
	return Component(l, component), nil
}

func baseConfigFromEnv() LoggerConfig {
	if strings.ToLower(os.Getenv("PADKEYS_ENV")) == "production" {
		return DefaultConfig()
	}
	return DevelopmentConfig()
}

// ApplyEnv overrides cfg with any PADKEYS_LOG_* variables that are set.
// Malformed numeric values are ignored.
func ApplyEnv(cfg LoggerConfig) LoggerConfig {
	if level := os.Getenv("PADKEYS_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("PADKEYS_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if sampling := os.Getenv("PADKEYS_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}
	if initial := os.Getenv("PADKEYS_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}
	if thereafter := os.Getenv("PADKEYS_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}
	if dev := os.Getenv("PADKEYS_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}
	return cfg
}
