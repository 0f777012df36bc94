package postgres

import (
	"context"
	"errors"

	"usersapi/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log,
	}
}

// UserRepository - по одному параметризованному запросу на операцию.
// id передается строкой: pgx отправляет строки в текстовом формате, и
// нечисловое значение отклоняет сам Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre, correo FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Find(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, correo FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email)

	return rowOrNil(&u, err)
}

func (r *UserRepository) Create(ctx context.Context, name, email *string) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (nombre, correo) VALUES ($1, $2) RETURNING id, nombre, correo`,
		name, email).Scan(&u.ID, &u.Name, &u.Email)

	return u, err
}

func (r *UserRepository) Update(ctx context.Context, id string, name, email *string) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`UPDATE users SET nombre = $1, correo = $2 WHERE id = $3 RETURNING id, nombre, correo`,
		name, email, id).Scan(&u.ID, &u.Name, &u.Email)

	return rowOrNil(&u, err)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	r.log.Debug("delete executed", slog.String("id", id), slog.Int64("rows", tag.RowsAffected()))
	return nil
}

func rowOrNil(u *user.User, err error) (*user.User, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
