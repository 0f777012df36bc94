package user

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, req Request) (User, error)
	Update(ctx context.Context, id string, req Request) (*User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "user_service")),
	}
}

// List никогда не возвращает nil-срез, чтобы пустой результат сериализовался как []
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}

	s.log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

func (s *Service) Find(ctx context.Context, id string) (*User, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, req Request) (User, error) {
	u, err := s.repo.Create(ctx, req.Name, req.Email)
	if err != nil {
		return User{}, err
	}

	s.log.Debug("user created", slog.Int("id", u.ID))
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, req Request) (*User, error) {
	u, err := s.repo.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.log.Debug("update matched no rows", slog.String("id", id))
	}

	return u, nil
}

// Delete не проверяет существование строки: ноль удаленных строк - тоже успех
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
