// Package log carries a zap logger through a context.Context.
//
// Entries are handed to a buffered sink drained by one goroutine, so callers
// on hot paths (the task runtime logs every fork) never wait on the encoder.
// A context without a sink discards entries.
package log

import (
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/traverse_ive_go/internal/helper"
)

// Level defines the severity level for log messages.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that might still allow the application to continue running.
	LevelError Level = "error"

	// LevelDebug is used for debugging messages with detailed internal information.
	LevelDebug Level = "debug"
)

type sinkKey struct{}

type entry struct {
	level   Level
	message string
	fields  map[string]any
}

type sink struct {
	id      string
	logger  *zap.Logger
	entryCh chan entry
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// WithZapLogger installs a sink writing to logger. The returned teardown
// flushes pending entries, syncs the logger and returns the parent context;
// use that context afterwards.
func WithZapLogger(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	s := &sink{
		id:      uuid.New().String(),
		logger:  logger,
		entryCh: make(chan entry, bufferSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go s.run()

	parent := ctx
	return context.WithValue(ctx, sinkKey{}, s), func() context.Context {
		s.close()
		return parent
	}
}

// WithTestLogger installs a debug level console logger on stdout.
func WithTestLogger(ctx context.Context) (context.Context, func() context.Context) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return WithZapLogger(ctx, 16, zap.New(consoleCore))
}

// FromContext returns the logger installed in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if s, ok := helper.LookupContextValue[*sink](ctx, sinkKey{}); ok {
		return s.logger
	}
	return zap.NewNop()
}

// Log emits an entry through the sink of ctx. It drops the entry when ctx has
// no sink, is cancelled, or the sink was closed.
func Log(ctx context.Context, level Level, msg string, fields map[string]any) {
	s, ok := helper.LookupContextValue[*sink](ctx, sinkKey{})
	if !ok {
		return
	}
	select {
	case <-ctx.Done():
	case <-s.stopCh:
	case s.entryCh <- entry{level: level, message: msg, fields: fields}:
	}
}

func Debug(ctx context.Context, msg string, fields map[string]any) {
	Log(ctx, LevelDebug, msg, fields)
}

func Info(ctx context.Context, msg string, fields map[string]any) {
	Log(ctx, LevelInfo, msg, fields)
}

func Warn(ctx context.Context, msg string, fields map[string]any) {
	Log(ctx, LevelWarn, msg, fields)
}

func Error(ctx context.Context, msg string, fields map[string]any) {
	Log(ctx, LevelError, msg, fields)
}

func (s *sink) run() {
	defer close(s.doneCh)
	for {
		select {
		case e := <-s.entryCh:
			s.write(e)
		case <-s.stopCh:
			for {
				select {
				case e := <-s.entryCh:
					s.write(e)
				default:
					return
				}
			}
		}
	}
}

func (s *sink) write(e entry) {
	fields := make([]zap.Field, 0, len(e.fields))
	for k, v := range e.fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch e.level {
	case LevelInfo:
		s.logger.Info(e.message, fields...)
	case LevelWarn:
		s.logger.Warn(e.message, fields...)
	case LevelError:
		s.logger.Error(e.message, fields...)
	case LevelDebug:
		s.logger.Debug(e.message, fields...)
	default:
		s.logger.Info(e.message, fields...)
	}
}

func (s *sink) close() {
	s.once.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		if err := s.logger.Sync(); err != nil {
			s.logger.Debug("failed to sync logger", zap.String("sink", s.id), zap.Error(err))
		}
	})
}
