package uvw

import "fmt"

// SingletonPolicy selects what happens to a baseline observed in one row only.
type SingletonPolicy int

const (
	// SingletonReject fails with ErrDegenerateGroup.
	SingletonReject SingletonPolicy = iota
	// SingletonZero assigns a zero derivative to the row.
	SingletonZero
)

// LastRowPolicy selects which difference fills the last row of a baseline.
type LastRowPolicy int

const (
	// LastRowSecondToLast repeats the second-to-last difference of the
	// group (res[k-3] for k rows). Two-row groups repeat their only
	// difference.
	LastRowSecondToLast LastRowPolicy = iota
	// LastRowLast repeats the last difference (res[k-2]).
	LastRowLast
)

// Config holds derivative settings.
type Config struct {
	Singleton SingletonPolicy
	LastRow   LastRowPolicy
	Workers   int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference behaviour: reject singletons, repeat
// the second-to-last difference, run sequentially.
func DefaultConfig() Config {
	return Config{
		Singleton: SingletonReject,
		LastRow:   LastRowSecondToLast,
		Workers:   1,
	}
}

// WithSingletonPolicy sets the singleton-group policy.
func WithSingletonPolicy(p SingletonPolicy) Option {
	return func(cfg *Config) {
		if p == SingletonReject || p == SingletonZero {
			cfg.Singleton = p
		}
	}
}

// WithLastRowPolicy sets the last-row fill policy.
func WithLastRowPolicy(p LastRowPolicy) Option {
	return func(cfg *Config) {
		if p == LastRowSecondToLast || p == LastRowLast {
			cfg.LastRow = p
		}
	}
}

// WithWorkers sets how many goroutines process baseline groups.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// String returns the flag spelling of the policy.
func (p SingletonPolicy) String() string {
	switch p {
	case SingletonReject:
		return "reject"
	case SingletonZero:
		return "zero"
	default:
		return "unknown"
	}
}

// String returns the flag spelling of the policy.
func (p LastRowPolicy) String() string {
	switch p {
	case LastRowSecondToLast:
		return "second-to-last"
	case LastRowLast:
		return "last"
	default:
		return "unknown"
	}
}

// ParseSingletonPolicy parses "reject" or "zero".
func ParseSingletonPolicy(s string) (SingletonPolicy, error) {
	switch s {
	case "reject":
		return SingletonReject, nil
	case "zero":
		return SingletonZero, nil
	default:
		return 0, fmt.Errorf("unknown singleton policy %q", s)
	}
}

// ParseLastRowPolicy parses "second-to-last" or "last".
func ParseLastRowPolicy(s string) (LastRowPolicy, error) {
	switch s {
	case "second-to-last":
		return LastRowSecondToLast, nil
	case "last":
		return LastRowLast, nil
	default:
		return 0, fmt.Errorf("unknown last-row policy %q", s)
	}
}
