package core

import "fmt"

// Config is the fixed-size create-time configuration named in spec.md §6:
// exactly two recognized options, both with defaults. There is no map-based
// "unknown option" entry point — the functional-options pattern makes an
// unrecognized option a compile error instead of a runtime one, so the only
// runtime-checked failure is an out-of-range value.
type Config struct {
	TimeMax              float64
	InvalidActionPenalty float64
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithTimeMax overrides the episode's time budget.
func WithTimeMax(timeMax float64) ConfigOption {
	return func(c *Config) { c.TimeMax = timeMax }
}

// WithInvalidActionPenalty overrides the additive penalty applied to an
// invalid action's reward.
func WithInvalidActionPenalty(penalty float64) ConfigOption {
	return func(c *Config) { c.InvalidActionPenalty = penalty }
}

const (
	defaultTimeMax              = 20000.0
	defaultInvalidActionPenalty = 0.01
)

// NewConfig builds a Config from defaults plus the given options, rejecting
// out-of-range values before any episode state is allocated (spec.md §7:
// "the core is not left partially initialized").
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := Config{
		TimeMax:              defaultTimeMax,
		InvalidActionPenalty: defaultInvalidActionPenalty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TimeMax <= 0 {
		return Config{}, fmt.Errorf("core: TimeMax must be positive, got %v", cfg.TimeMax)
	}
	if cfg.InvalidActionPenalty < 0 {
		return Config{}, fmt.Errorf("core: InvalidActionPenalty must be non-negative, got %v", cfg.InvalidActionPenalty)
	}
	return cfg, nil
}
