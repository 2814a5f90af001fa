// Хранение и организация документов пользователей:
// регистрация и аутентификация;
// загрузка файлов в объектное хранилище и метаданных в БД;
// поиск, категории, теги, отметки;
// служебные операции (проверка хранилища, очистка тестовых аккаунтов).
//
// POST   /user/register              # Регистрация (публичный)
// POST   /user/login                 # Логин (публичный)
// POST   /user/logout                # Выход
// POST   /api/v1/documents           # Загрузить документ (auth)
// GET    /api/v1/documents           # Список документов (auth)
// GET    /api/v1/documents/{id}      # Получить документ (auth)
// PATCH  /api/v1/documents/{id}      # Частичное обновление (auth)
// DELETE /api/v1/documents/{id}      # Удалить документ (auth)
// GET    /api/v1/documents/search    # Поиск (auth)
// GET    /api/v1/storage/usage       # Использование хранилища (auth)
// GET    /api/v1/admin/storage/check # Проверка хранилища (admin token)
// DELETE /api/v1/admin/test-users    # Очистка тестовых аккаунтов (admin token)

package api

import (
	adminAPI "docvault/internal/app/server/api/http/admin"
	documentAPI "docvault/internal/app/server/api/http/document"
	healthAPI "docvault/internal/app/server/api/http/health"
	"docvault/internal/app/server/api/http/middleware"
	"docvault/internal/app/server/api/http/middleware/auth"
	"docvault/internal/app/server/api/http/middleware/logger"
	userAPI "docvault/internal/app/server/api/http/user"
	"docvault/internal/app/server/config"
	"docvault/internal/domain/document"
	"docvault/internal/domain/session"
	"docvault/internal/domain/user"
	"docvault/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Document *documentAPI.Handler
	Admin    *adminAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(storage *postgres.Storage, store document.ObjectStore, prober adminAPI.Prober, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("DocVault API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, store, prober, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, store document.ObjectStore, prober adminAPI.Prober, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	documentRepo := postgres.NewDocumentRepository(storage, log)

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewCredentialValidator(), sessionRepo, documentRepo, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	documentService := document.NewService(documentRepo, store, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	documentHandler := documentAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	adminHandler := adminAPI.NewHandler(userService, prober, cfg, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Document: documentHandler,
		Admin:    adminHandler,
	}
}
