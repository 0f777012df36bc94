package logger

import (
	"io"
	"os"
	"strings"

	"usersapi/internal/app/server/config"
	"usersapi/internal/utils/logger/handlers/slogpretty"
	"usersapi/internal/utils/logger/handlers/slogsplit"

	"golang.org/x/exp/slog"
)

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel - то же, что New, но level (debug, info, warn, error) переопределяет уровень окружения.
// Записи уровня ERROR и выше пишутся в stderr, остальные в stdout
func NewWithLevel(env, level string) *slog.Logger {
	return newLogger(env, level, os.Stdout, os.Stderr)
}

func newLogger(env, level string, out, errOut io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(parseLevel(level, slog.LevelDebug), out, errOut)
	case config.EnvDev:
		opts := &slog.HandlerOptions{Level: parseLevel(level, slog.LevelDebug)}
		log = slog.New(slogsplit.New(slog.NewJSONHandler(out, opts), slog.NewJSONHandler(errOut, opts)))
	default:
		opts := &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}
		log = slog.New(slogsplit.New(slog.NewJSONHandler(out, opts), slog.NewJSONHandler(errOut, opts)))
	}

	return log
}

func setupPrettySlog(level slog.Level, out, errOut io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(slogsplit.New(opts.NewPrettyHandler(out), opts.NewPrettyHandler(errOut)))
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// Err - атрибут ошибки для slog
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
