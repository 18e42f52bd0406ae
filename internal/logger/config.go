package logger

// LoggerConfig defines logging configuration. It is embedded in the scene
// config file under the `logging` key.
type LoggerConfig struct {
	Level            string `yaml:"level" env:"PADKEYS_LOG_LEVEL"`
	Format           string `yaml:"format" env:"PADKEYS_LOG_FORMAT"` // json or console
	EnableSampling   bool   `yaml:"enable_sampling" env:"PADKEYS_LOG_SAMPLING"`
	SampleInitial    int    `yaml:"sample_initial" env:"PADKEYS_LOG_SAMPLE_INITIAL"`
	SampleThereafter int    `yaml:"sample_thereafter" env:"PADKEYS_LOG_SAMPLE_THEREAFTER"`
	Development      bool   `yaml:"development" env:"PADKEYS_LOG_DEVELOPMENT"`
}

// DefaultConfig returns the release configuration. Per-frame debug entries are
// sampled so a held stick does not flood the output.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "json",
		EnableSampling:   true,
		SampleInitial:    60,  // one second of frames
		SampleThereafter: 600, // then one entry every ten seconds
		Development:      false,
	}
}

// DevelopmentConfig returns a console logger at debug level without sampling.
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
