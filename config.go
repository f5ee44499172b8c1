package kumiai

import (
	"runtime"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the tunables of a World. Each field can be overridden from the
// environment by LoadConfig.
type Config struct {
	// InitialCapacity is the number of entity slots allocated up front.
	InitialCapacity int `config:"KUMIAI_INITIAL_CAPACITY"`
	// Threads is the worker count used by multi-threaded systems.
	Threads int `config:"KUMIAI_THREADS"`
	// LogLevel is a zerolog level name such as "debug" or "warn".
	LogLevel string `config:"KUMIAI_LOG_LEVEL"`
	// RejectLockedMutation makes structural changes panic with ErrTableLocked
	// while tables are locked, instead of deferring them.
	RejectLockedMutation bool `config:"KUMIAI_REJECT_LOCKED_MUTATION"`
}

// DefaultConfig returns the configuration NewWorld uses when given no options.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 1024,
		Threads:         runtime.GOMAXPROCS(0),
		LogLevel:        zerolog.InfoLevel.String(),
	}
}

// LoadConfig starts from DefaultConfig and applies any KUMIAI_* environment
// variables on top.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config from environment")
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.InitialCapacity < 0 {
		return eris.Errorf("initial capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.Threads < 0 {
		return eris.Errorf("thread count must not be negative, got %d", c.Threads)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}

type worldOptions struct {
	cfg    Config
	logger *zerolog.Logger
}

// Option configures a World at construction.
type Option func(*worldOptions)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *worldOptions) { o.cfg = cfg }
}

// WithInitialCapacity sets the number of preallocated entity slots.
func WithInitialCapacity(n int) Option {
	return func(o *worldOptions) { o.cfg.InitialCapacity = n }
}

// WithThreads sets the worker count for multi-threaded systems.
func WithThreads(n int) Option {
	return func(o *worldOptions) { o.cfg.Threads = n }
}

// WithLogLevel sets the minimum level of the world logger.
func WithLogLevel(level string) Option {
	return func(o *worldOptions) { o.cfg.LogLevel = level }
}

// WithLogger replaces the world logger. The configured level still applies.
func WithLogger(l zerolog.Logger) Option {
	return func(o *worldOptions) { o.logger = &l }
}

// WithRejectLockedMutation turns deferred structural changes into panics.
func WithRejectLockedMutation(reject bool) Option {
	return func(o *worldOptions) { o.cfg.RejectLockedMutation = reject }
}
