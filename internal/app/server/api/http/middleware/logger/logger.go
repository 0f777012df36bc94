package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware пишет одну строку на запрос после его обработки,
// уровень зависит от статуса ответа (см. levelFor)
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		operationID := ""
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}
		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		status := ctx.Status()
		level := levelFor(status)

		l.log.Log(ctx.Context(), level, "HTTP request",
			slog.String("operation", operationID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", remoteAddr),
		)
	}
}

// levelFor: 5xx - WARN, 4xx - DEBUG, остальное - INFO.
// Текст ошибки 5xx логирует сам обработчик с меткой операции
func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelWarn
	case status >= 400:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
