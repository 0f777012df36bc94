package user

import (
	"context"
)

// Repository - хранилище пользователей. id передается в запрос как есть,
// приведение типа выполняет база данных.
// Find и Update возвращают nil без ошибки, если строка не найдена.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, name, email *string) (User, error)
	Update(ctx context.Context, id string, name, email *string) (*User, error)
	Delete(ctx context.Context, id string) error
}
