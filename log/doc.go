// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are immutable values configured at creation time with functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText))
//	logger.Info("parse complete", slog.Int("events", n))
//
// The zero value discards every message, so a Logger can be embedded in
// configuration structs and used without initialization.
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's debug level and
// is rendered as "TRACE" rather than "DEBUG-4".
//
// Three output formats are supported: [FormatJSON] (default), [FormatText],
// and [FormatPretty], a colorized text format for terminals.
package log
