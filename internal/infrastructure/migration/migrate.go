package migration

import (
	"errors"
	"fmt"
	"strings"

	"usersapi/internal/app/server/config"
	"usersapi/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	// драйвер pgx5:// работает через тот же pgx, что и пул соединений
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Force(version int) error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах).
// Пустой sourceURL означает встроенные миграции.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine — реальная реализация для продакшена
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	if sourceURL != "" {
		return migrate.New(sourceURL, databaseURL)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Up создает таблицу users, если ее нет.
// Версия сбрасывается перед каждым запуском, поэтому идемпотентные миграции
// выполняются заново и восстанавливают удаленную таблицу.
func (mg *Migration) Up() (err error) {
	sourceURL := ""
	if mg.cfg.DB.Migrations != "" {
		sourceURL = "file://" + mg.cfg.DB.Migrations
	}

	m, err := mg.engine(sourceURL, DatabaseURL(mg.cfg.DB.ConnString()))
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Force(database.NilVersion); err != nil {
		return fmt.Errorf("migration reset: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

// DatabaseURL переводит строку подключения пула на схему pgx5://.
// Остальные параметры (в том числе отсутствие sslmode) не меняются
func DatabaseURL(conn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(conn, scheme) {
			return "pgx5://" + strings.TrimPrefix(conn, scheme)
		}
	}
	return conn
}
