/*
Package logger provides logging functionality to a hackathons app by defining the required behavior in [Logger]
and providing an implementation of it with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
[AppLogger] writes through a [log/slog.Logger],
so the handler it was built with decides the output format and the minimum level.
[LevelFatal] extends slog's levels for failures the app cannot continue past.

Log messages emitted by [AppLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

The call site is the file and line calling the [AppLogger] method, not the logger itself.
The log context is a [LogContext] rendered as a group,
carrying data inessential to the message proper
but which gives a fuller picture of the application state at the time of logging.

# Handlers

[ColorizeLevel], [LevelName], [TruncSourceAttr], [DeleteLevelAttr] and [DeleteMessageAttr]
are [log/slog.HandlerOptions.ReplaceAttr] helpers for composing handlers.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# Sentry

[NewSentryLogger] wraps a Logger so Warn, Error and Fatal calls carrying an error
are also reported to Sentry.
*/
package logger
