// GET    /api/users       # Список пользователей
// GET    /api/users/{id}  # Пользователь или null
// POST   /api/users       # Создать (201)
// PUT    /api/users/{id}  # Обновить, null если не найден
// DELETE /api/users/{id}  # Удалить, всегда {"message": "Usuario eliminado"}
// GET    /api/health      # Проверка соединения с БД

package api

import (
	"net/http"

	healthAPI "usersapi/internal/app/server/api/http/health"
	"usersapi/internal/app/server/api/http/httperr"
	"usersapi/internal/app/server/api/http/middleware"
	"usersapi/internal/app/server/api/http/middleware/logger"
	userAPI "usersapi/internal/app/server/api/http/user"
	"usersapi/internal/domain/user"
	"usersapi/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
}

// Services - зависимости обработчиков
type Services struct {
	User   user.Servicer
	Health healthAPI.Pinger
}

// New создает *chi.Mux поверх общего пула соединений
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	userRepo := postgres.NewUserRepository(storage.Pool(), log)

	return NewWithServices(Services{
		User:   user.NewService(userRepo, log),
		Health: storage,
	}, log)
}

// NewWithServices создает *chi.Mux с ВСЕМИ операциями через huma.Register
func NewWithServices(services Services, log *slog.Logger) *chi.Mux {
	huma.NewError = httperr.New

	mux := chi.NewMux()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}))

	config := huma.DefaultConfig("Users API", "1.0.0")
	// без трансформера $schema: тела ответов должны содержать только поля записи
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	h := handlers(services, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)

	return mux
}

func handlers(services Services, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	chain := middleware.NewChain()

	healthHandler := healthAPI.NewHandler(services.Health, log, chain.Add(loggerMW.Middleware()).Take())
	userHandler := userAPI.NewHandler(services.User, log, chain.Add(loggerMW.Middleware()).Take())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
	}
}
