package client

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	gosync "sync"

	"golang.org/x/exp/slog"

	"docvault/internal/app/client/config"
	"docvault/internal/app/client/notify"
	"docvault/internal/app/client/securestore"
	"docvault/internal/domain/document"
	"docvault/internal/domain/user"
)

// Имя, под которым токен сессии лежит в защищённом кэше.
const authTokenName = "auth"

type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	store         *securestore.Store
	notifications *notify.Manager
	authenticated bool
	mu            gosync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Инициализируем HTTP клиент
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	// Локальный кэш: SQLite как постоянный уровень, память как сессионный.
	// Без SQLite работаем на одной памяти: кэш переживёт сеанс, не больше.
	var durable securestore.KV
	sqliteKV, err := securestore.NewSQLiteKV(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		durable = securestore.NewMemoryKV()
	} else {
		durable = sqliteKV
	}

	app := &App{
		config:        cfg,
		log:           log,
		httpClient:    httpCl,
		store:         securestore.New(durable, securestore.NewMemoryKV(), log),
		notifications: notify.NewManager(),
	}

	// Загружаем токен если он есть
	if token, ok := app.store.GetSecureToken(authTokenName); ok {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("Токен загружен из кэша")
	}

	return app, nil
}

func (a *App) Notifications() *notify.Manager {
	return a.notifications
}

func (a *App) Store() *securestore.Store {
	return a.store
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, req user.BaseRequest) error {
	if err := a.httpClient.Register(ctx, req.Email, req.Password); err != nil {
		a.notifications.Error("Регистрация", err.Error())
		return err
	}

	a.notifications.Success("Регистрация", "Аккаунт создан, теперь войдите")
	return nil
}

func (a *App) Login(ctx context.Context, req user.BaseRequest) error {
	token, err := a.httpClient.Login(ctx, req.Email, req.Password)
	if err != nil {
		a.notifications.Error("Вход", err.Error())
		return err
	}

	if !a.store.SetSecureToken(authTokenName, token) {
		a.log.Warn("Токен не сохранён в кэше, сессия не переживёт перезапуск")
	}

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	a.notifications.Success("Вход", "Добро пожаловать")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.httpClient.Logout(ctx)

	// Локальную сессию чистим в любом случае: даже если сервер недоступен,
	// клиент должен оказаться разлогиненным.
	a.store.RemoveSecureToken(authTokenName)
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	if err != nil {
		a.log.Warn("Сервер не подтвердил выход", "error", err)
	}

	a.notifications.Info("Выход", "Сессия завершена")
	return nil
}

// UploadFile читает файл с диска и отправляет его на сервер.
func (a *App) UploadFile(ctx context.Context, path, category string, tags []string, progress ProgressFunc) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.notifications.Error("Загрузка", "Не удалось прочитать файл")
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}

	name := filepath.Base(path)
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := a.httpClient.UploadDocument(ctx, document.UploadRequest{
		Name:        name,
		ContentType: contentType,
		Category:    category,
		Tags:        tags,
		Data:        data,
	}, progress)
	if err != nil {
		a.notifications.Error("Загрузка", err.Error())
		return nil, err
	}

	a.notifications.Success("Загрузка", fmt.Sprintf("Файл %q загружен", name))
	return doc, nil
}

func (a *App) ListDocuments(ctx context.Context, category string) ([]document.Document, error) {
	return a.httpClient.ListDocuments(ctx, category)
}

func (a *App) GetDocument(ctx context.Context, id string) (*document.Document, error) {
	return a.httpClient.GetDocument(ctx, id)
}

func (a *App) UpdateDocument(ctx context.Context, id string, req document.UpdateRequest) error {
	if err := a.httpClient.UpdateDocument(ctx, id, req); err != nil {
		a.notifications.Error("Обновление", err.Error())
		return err
	}

	a.notifications.Success("Обновление", "Документ обновлён")
	return nil
}

func (a *App) DeleteDocument(ctx context.Context, id string) error {
	if err := a.httpClient.DeleteDocument(ctx, id); err != nil {
		a.notifications.Error("Удаление", err.Error())
		return err
	}

	a.notifications.Success("Удаление", "Документ удалён")
	return nil
}

func (a *App) SearchDocuments(ctx context.Context, query string) ([]document.Document, error) {
	return a.httpClient.SearchDocuments(ctx, query)
}

func (a *App) StorageUsage(ctx context.Context) (*document.UsageResponse, error) {
	return a.httpClient.StorageUsage(ctx)
}

// SetPreference сохраняет пользовательскую настройку локально.
func (a *App) SetPreference(name string, value string) bool {
	return a.store.SetUserPreference(name, value)
}

func (a *App) GetPreference(name string) (string, bool) {
	value, ok := a.store.GetUserPreference(name)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}
