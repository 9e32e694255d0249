package logger

import (
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]func(string, ...any) string{
	slog.LevelDebug: color.WhiteString,
	slog.LevelInfo:  color.BlueString,
	slog.LevelWarn:  color.YellowString,
	slog.LevelError: color.RedString,
	LevelFatal:      color.MagentaString,
}

// LevelName labels LevelFatal as "FATAL" instead of slog's "ERROR+4".
// Use as a [log/slog.HandlerOptions.ReplaceAttr].
func LevelName(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}

	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelFatal {
		a.Value = slog.StringValue("FATAL")
	}

	return a
}

// ColorizeLevel colors the level of a log record for terminal output.
// Use as a [log/slog.HandlerOptions.ReplaceAttr].
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	colorize, ok := levelColors[lvl]
	if !ok {
		return a
	}

	name := lvl.String()
	if lvl == LevelFatal {
		name = "FATAL"
	}

	a.Value = slog.StringValue(colorize("%s", name))
	return a
}

// TruncSourceAttr shortens the source file of a log record to its parent directory and name.
// Use as a [log/slog.HandlerOptions.ReplaceAttr].
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey || len(groups) > 0 {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	src.File = filepath.Join(filepath.Base(filepath.Dir(src.File)), filepath.Base(src.File))
	return a
}

// DeleteLevelAttr drops the level from a log record.
// Use as a [log/slog.HandlerOptions.ReplaceAttr].
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		return slog.Attr{}
	}

	return a
}

// DeleteMessageAttr drops the message from a log record.
// Use as a [log/slog.HandlerOptions.ReplaceAttr].
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.MessageKey && len(groups) == 0 {
		return slog.Attr{}
	}

	return a
}
