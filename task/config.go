package task

import (
	"context"
	"runtime"
	"sync"

	"github.com/on-the-ground/traverse_ive_go/internal/helper"
)

type configKeyEnum string

const (
	configKey configKeyEnum = "traverse_ive_go_task_config"
)

// Config bounds the goroutines a ParTask may fork.
type Config struct {
	MaxConcurrency int // default: 4 * GOMAXPROCS
}

// NewConfig applies defaults to non-positive values.
func NewConfig(maxConcurrency int) Config {
	if maxConcurrency <= 0 {
		maxConcurrency = 4 * runtime.GOMAXPROCS(0)
	}
	return Config{MaxConcurrency: maxConcurrency}
}

// limiter hands out fork slots without ever blocking.
type limiter struct {
	cfg   Config
	slots chan struct{}
}

func newLimiter(cfg Config) *limiter {
	return &limiter{cfg: cfg, slots: make(chan struct{}, cfg.MaxConcurrency)}
}

func (l *limiter) tryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (l *limiter) release() { <-l.slots }

var defaultLimiter = sync.OnceValue(func() *limiter { return newLimiter(NewConfig(0)) })

// WithConfig installs cfg for every ParTask run under the returned context.
// When MaxConcurrency forks are running, further forks run inline on the
// goroutine that reached them.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, newLimiter(NewConfig(cfg.MaxConcurrency)))
}

// ConfigFrom returns the configuration installed in ctx, or the defaults.
func ConfigFrom(ctx context.Context) Config {
	return limiterFrom(ctx).cfg
}

// limiterFrom panics if configKey holds anything but a *limiter. Only
// WithConfig writes that key.
func limiterFrom(ctx context.Context) *limiter {
	if ctx.Value(configKey) == nil {
		return defaultLimiter()
	}
	return helper.MustGetTypedValue[*limiter](helper.ContextValue(ctx, configKey))
}
