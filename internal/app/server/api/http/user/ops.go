package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	opList   = "GET /api/users"
	opFind   = "GET /api/users/:id"
	opCreate = "POST /api/users"
	opUpdate = "PUT /api/users/:id"
	opDelete = "DELETE /api/users/:id"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "Список пользователей",
		Description: "Все строки таблицы users. Порядок определяет база данных.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-find",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Получить пользователя",
		Description: "Возвращает null, если пользователь не найден.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:      "users-create",
		Method:           http.MethodPost,
		Path:             "/api/users",
		DefaultStatus:    http.StatusCreated,
		Summary:          "Создать пользователя",
		Description:      "Отсутствующие name и email сохраняются как null.",
		Tags:             []string{"users"},
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:      "users-update",
		Method:           http.MethodPut,
		Path:             "/api/users/{id}",
		Summary:          "Обновить пользователя",
		Description:      "Перезаписывает name и email. Возвращает null, если пользователь не найден.",
		Tags:             []string{"users"},
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/api/users/{id}",
		Summary:     "Удалить пользователя",
		Description: "Удаление безусловное, ответ не зависит от того, существовала ли запись.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
