package core

// ProcessorConfig defines the settings shared by every unit generator.
type ProcessorConfig struct {
	SampleRate float64
	PeriodSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used when a host does not
// specify its own rate or control period.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		PeriodSize: 64,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithPeriodSize sets the control period length in samples.
func WithPeriodSize(periodSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if periodSize > 0 {
			cfg.PeriodSize = periodSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
