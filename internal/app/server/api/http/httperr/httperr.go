// Package httperr - единый формат ошибок API: {"error": "<текст>"}.
package httperr

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Error реализует huma.StatusError. Статус в тело не попадает
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error" example:"connection refused" doc:"Текст ошибки"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// New совместим с huma.NewError, чтобы ошибки самого huma (невалидный JSON и т.п.)
// отдавались в том же формате
func New(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}

	return &Error{Status: status, Message: msg}
}

// Internal - 500 с исходным текстом ошибки без изменений
func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}
