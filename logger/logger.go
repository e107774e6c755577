// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog].
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// handlerSet is the set of handlers attached to a [Logger] and every
// logger derived from it. Attach and Detach replace the slice, so a
// snapshot can be read without holding the lock.
type handlerSet struct {
	mu       sync.Mutex
	handlers atomic.Pointer[[]slog.Handler]
}

func (s *handlerSet) load() []slog.Handler {
	if hs := s.handlers.Load(); hs != nil {
		return *hs
	}
	return nil
}

func (s *handlerSet) attach(h slog.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hs := append(slices.Clone(s.load()), h)
	s.handlers.Store(&hs)
}

func (s *handlerSet) detach(h slog.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hs := slices.DeleteFunc(slices.Clone(s.load()), func(x slog.Handler) bool { return x == h })
	s.handlers.Store(&hs)
}

// fanout sends records to every handler of its set. Attributes and groups
// added with WithAttrs and WithGroup are applied when a record is handled,
// so handlers attached later still receive them.
type fanout struct {
	set   *handlerSet
	wraps []func(slog.Handler) slog.Handler
}

func (h *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.set.load() {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.set.load() {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		for _, wrap := range h.wraps {
			handler = wrap(handler)
		}
		errs = append(errs, handler.Handle(ctx, r.Clone()))
	}
	return errors.Join(errs...)
}

func (h *fanout) with(wrap func(slog.Handler) slog.Handler) *fanout {
	return &fanout{set: h.set, wraps: append(slices.Clip(h.wraps), wrap)}
}

func (h *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h *fanout) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

// Logger encapsulates an [slog.Logger] and allows attaching and detaching
// multiple [slog.Handler] at runtime.
//
// It also holds a [slog.LevelVar] that can be used to control the level of handlers that are created with it.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
	set   *handlerSet
}

// New creates a new Logger. The logger initially has no handlers.
// Its LevelVar is initialized to LevelInfo if level is nil.
func New(level *slog.LevelVar) *Logger {
	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelInfo)
	}
	set := new(handlerSet)
	return &Logger{
		Logger: slog.New(&fanout{set: set}),
		Level:  level,
		set:    set,
	}
}

// Attach attaches a handler to the logger and the loggers derived from it.
func (l *Logger) Attach(h slog.Handler) { l.set.attach(h) }

// Detach detaches a handler from the logger and the loggers derived from it.
func (l *Logger) Detach(h slog.Handler) { l.set.detach(h) }

// With returns a logger that adds attrs to every record. It shares the
// level and the handlers of l.
func (l *Logger) With(attrs ...slog.Attr) *Logger {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return &Logger{Logger: l.Logger.With(args...), Level: l.Level, set: l.set}
}

// NewTint returns a handler that writes human-readable lines to w,
// colored when color is set.
func NewTint(w io.Writer, level slog.Leveler, color bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	})
}

// Err returns an attribute for err that tint highlights.
func Err(err error) slog.Attr { return tint.Err(err) }

var defaultLogger = newDefaultLogger()

func newDefaultLogger() *Logger {
	l := New(nil)
	l.Attach(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: l.Level}))
	return l
}

// Put returns a new context with the provided [Logger].
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context.
//
// If the context has no [Logger], it returns a default [Logger] that discards all
// messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// With returns a new context whose [Logger] adds attrs to every record.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	return Put(ctx, Get(ctx).With(attrs...))
}

// IsDefault returns true if l is the default [Logger].
func IsDefault(l *Logger) bool { return l == defaultLogger }

// LevelVar retrieves the [slog.LevelVar] associated with the [Logger] in the context.
//
// If the context has no [Logger], it returns a [slog.LevelVar] for a default
// [Logger].
func LevelVar(ctx context.Context) *slog.LevelVar {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l.Level
	}
	return defaultLogger.Level
}

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
