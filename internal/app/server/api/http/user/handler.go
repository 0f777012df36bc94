package user

import (
	"context"

	"usersapi/internal/app/server/api/http/httperr"
	"usersapi/internal/domain/user"
	"usersapi/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const deletedMessage = "Usuario eliminado"

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	users, err := h.service.List(ctx)
	if err != nil {
		return nil, h.fail(opList, err)
	}

	return &listOutput{Body: users}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*optionalOutput, error) {
	u, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.fail(opFind, err)
	}

	return &optionalOutput{Body: optionalUser{User: u}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	u, err := h.service.Create(ctx, requestOrEmpty(input.Body))
	if err != nil {
		return nil, h.fail(opCreate, err)
	}

	return &createOutput{Body: u}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*optionalOutput, error) {
	u, err := h.service.Update(ctx, input.ID, requestOrEmpty(input.Body))
	if err != nil {
		return nil, h.fail(opUpdate, err)
	}

	return &optionalOutput{Body: optionalUser{User: u}}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.fail(opDelete, err)
	}

	return &deleteOutput{Body: deleteResponse{Message: deletedMessage}}, nil
}

// fail логирует ошибку с меткой операции и отдает клиенту 500 с исходным текстом
func (h *Handler) fail(op string, err error) error {
	if h.log != nil {
		h.log.Error("Error "+op, slog.String("op", op), logger.Err(err))
	}
	return httperr.Internal(err)
}
