package postgres

import (
	"context"
	"fmt"

	"usersapi/internal/app/server/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage владеет единственным пулом соединений процесса
type Storage struct {
	pool *pgxpool.Pool
}

// New создает пул. Соединения устанавливаются лениво, поэтому недоступная БД здесь не ошибка
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.ConnString())
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
