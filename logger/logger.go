package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// LevelFatal sits above [log/slog.LevelError] for failures the app cannot continue past.
const LevelFatal = slog.Level(12)

const (
	knownFrames   = 3
	logContextKey = "log_context"
)

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

// AppLogger implements Logger using a [*log/slog.Logger].
type AppLogger struct {
	l    *slog.Logger
	skip int
}

// New constructs an *AppLogger writing through sl.
// If sl is nil, [log/slog.Default] is used.
func New(sl *slog.Logger) *AppLogger {
	if sl == nil {
		sl = slog.Default()
	}

	return &AppLogger{l: sl}
}

// NewLevel converts the string into a [log/slog.Level],
// accepting "FATAL" in addition to the levels slog knows.
// Unknown strings produce [log/slog.LevelInfo].
func NewLevel(val string) slog.Level {
	if val == "FATAL" {
		return LevelFatal
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(val)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *AppLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *AppLogger) Debug(msg string, ctx *LogContext) { l.log(slog.LevelDebug, msg, ctx) }

// Error writes an error log.
func (l *AppLogger) Error(msg string, ctx *LogContext) { l.log(slog.LevelError, msg, ctx) }

// Fatal writes a fatal log.
func (l *AppLogger) Fatal(msg string, ctx *LogContext) { l.log(LevelFatal, msg, ctx) }

// Info writes an info log.
func (l *AppLogger) Info(msg string, ctx *LogContext) { l.log(slog.LevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *AppLogger) Warn(msg string, ctx *LogContext) { l.log(slog.LevelWarn, msg, ctx) }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *AppLogger) Skip() int { return l.skip }

// Slogger exposes the underlying [*log/slog.Logger].
func (l *AppLogger) Slogger() *slog.Logger { return l.l }

// log builds the record by hand so the source points at the caller of Debug, Info, etc.
func (l *AppLogger) log(level slog.Level, msg string, ctx *LogContext) {
	bg := context.Background()
	if !l.l.Enabled(bg, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(knownFrames+l.skip, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if ctx != nil {
		r.AddAttrs(slog.Any(logContextKey, *ctx))
	}

	_ = l.l.Handler().Handle(bg, r)
}
