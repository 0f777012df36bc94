package health

import (
	"context"
	"net/http"

	"usersapi/internal/app/server/api/http/httperr"
	"usersapi/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger checks that the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database is unreachable", logger.Err(err))
		return nil, &httperr.Error{Status: http.StatusServiceUnavailable, Message: err.Error()}
	}

	return &Output{
		Body: Response{
			Status:   statusOK,
			Database: databaseUp,
		},
	}, nil
}
