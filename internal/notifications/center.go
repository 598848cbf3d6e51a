package notifications

import (
	"log/slog"
	"sync"

	"coursework/internal/logging"
)

// Activation describes the outcome of Center.Acquire.
type Activation int

const (
	ActivationInitialized Activation = iota + 1
	ActivationAlreadyActive
)

func (a Activation) String() string {
	switch a {
	case ActivationInitialized:
		return "initialized"
	case ActivationAlreadyActive:
		return "already_active"
	default:
		return "unknown"
	}
}

// Center owns the lazily created registry for one run. Acquire is guarded by
// sync.Once, but Active and the Registry itself are not safe for concurrent
// use.
type Center struct {
	once     sync.Once
	registry *Registry
	logger   *slog.Logger
}

// CenterOption customizes a Center.
type CenterOption func(*Center)

// WithLogger attaches a logger; records are tagged with component=notifications.
func WithLogger(logger *slog.Logger) CenterOption {
	return func(c *Center) {
		c.logger = logger
	}
}

// NewCenter returns a Center with no registry yet.
func NewCenter(opts ...CenterOption) *Center {
	c := &Center{}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "notifications")
	return c
}

// Acquire returns the registry, creating it on the first call.
func (c *Center) Acquire() (*Registry, Activation) {
	activation := ActivationAlreadyActive
	c.once.Do(func() {
		c.registry = &Registry{entries: []string{}, logger: c.logger}
		activation = ActivationInitialized
	})
	c.logger.Debug("registry acquired", logging.String("activation", activation.String()))
	return c.registry, activation
}

// Active reports whether Acquire has been called.
func (c *Center) Active() bool {
	return c.registry != nil
}
