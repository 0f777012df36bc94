// Package slogsplit направляет записи в один из двух обработчиков по уровню.
package slogsplit

import (
	"context"

	"golang.org/x/exp/slog"
)

// Handler пишет записи ниже ErrorLevel в out, остальные в errOut
type Handler struct {
	out        slog.Handler
	errOut     slog.Handler
	errorLevel slog.Level
}

func New(out, errOut slog.Handler) *Handler {
	return &Handler{
		out:        out,
		errOut:     errOut,
		errorLevel: slog.LevelError,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.errorLevel {
		return h.errOut.Enabled(ctx, level)
	}
	return h.out.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.errorLevel {
		return h.errOut.Handle(ctx, r)
	}
	return h.out.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		out:        h.out.WithAttrs(attrs),
		errOut:     h.errOut.WithAttrs(attrs),
		errorLevel: h.errorLevel,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		out:        h.out.WithGroup(name),
		errOut:     h.errOut.WithGroup(name),
		errorLevel: h.errorLevel,
	}
}
