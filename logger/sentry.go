package logger

import (
	"github.com/getsentry/sentry-go"
	"github.com/xy-planning-network/hackathons"
)

// A SentryLogger logs through another Logger
// and reports errors at warn level and above to Sentry.
type SentryLogger struct {
	l Logger
}

// NewSentryLogger constructs a SentryLogger based off the provided Logger.
//
// If Sentry cannot be initialized, the error is logged and l returns unchanged.
func NewSentryLogger(env hackathons.Environment, l Logger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  env.String(),
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		l.Error("unable to init Sentry", &LogContext{Error: err})
		return l
	}

	if skipper, ok := l.(SkipLogger); ok {
		l = skipper.AddSkip(1 + skipper.Skip())
	}

	return &SentryLogger{l: l}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
// It is a no-op when the wrapped Logger is not a SkipLogger.
func (sl *SentryLogger) AddSkip(i int) SkipLogger {
	if skipper, ok := sl.l.(SkipLogger); ok {
		return &SentryLogger{l: skipper.AddSkip(i)}
	}

	return sl
}

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (sl *SentryLogger) Skip() int {
	if skipper, ok := sl.l.(SkipLogger); ok {
		return skipper.Skip()
	}

	return 0
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.l.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.l.Warn(msg, ctx)
	sl.send(sentry.LevelWarning, ctx)
}

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.l.Error(msg, ctx)
	sl.send(sentry.LevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.l.Fatal(msg, ctx)
	sl.send(sentry.LevelFatal, ctx)
}

// send ships the LogContext.Error to Sentry,
// including any additional data from LogContext.
func (sl *SentryLogger) send(level sentry.Level, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
		}

		if ctx.Caller != "" {
			scope.SetTag("caller", ctx.Caller)
		}

		scope.SetLevel(level)
		sentry.CaptureException(ctx.Error)
	})
}
