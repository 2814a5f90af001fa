package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"docvault/internal/app/client/config"
	"docvault/internal/domain/document"
	"docvault/internal/domain/user"
)

// ProgressFunc получает процент и стадию во время загрузки документа.
type ProgressFunc func(percent int, stage string)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "DocVault-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Register(ctx context.Context, email, password string) error {
	req := user.BaseRequest{
		Email:    email,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/user/register", req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	req := user.BaseRequest{
		Email:    email,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/user/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}

	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.token = loginResp.Token
	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/user/logout", nil)
	if err != nil {
		return err
	}

	h.token = ""
	return h.parseResponse(resp, nil)
}

// UploadDocument отправляет файл на сервер. Стадии прогресса фиксированы:
// запрос не стримится, поэтому проценты отмечают этапы, а не байты.
func (h *httpClient) UploadDocument(ctx context.Context, req document.UploadRequest, progress ProgressFunc) (*document.Document, error) {
	if progress == nil {
		progress = func(int, string) {}
	}

	body := struct {
		Name        string   `json:"name"`
		ContentType string   `json:"content_type,omitempty"`
		Category    string   `json:"category,omitempty"`
		Tags        []string `json:"tags,omitempty"`
		Data        string   `json:"data"`
	}{
		Name:        req.Name,
		ContentType: req.ContentType,
		Category:    req.Category,
		Tags:        req.Tags,
		Data:        base64.StdEncoding.EncodeToString(req.Data),
	}

	progress(0, "uploading")
	resp, err := h.doRequest(ctx, "POST", "/api/v1/documents", body)
	if err != nil {
		return nil, err
	}
	progress(50, "uploading")

	progress(75, "processing")
	var uploadResp struct {
		Document *document.Document `json:"document"`
	}
	if err := h.parseResponse(resp, &uploadResp); err != nil {
		return nil, err
	}

	progress(100, "completed")
	return uploadResp.Document, nil
}

func (h *httpClient) ListDocuments(ctx context.Context, category string) ([]document.Document, error) {
	path := "/api/v1/documents"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	resp, err := h.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var listResp document.ListResponse
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Documents, nil
}

func (h *httpClient) GetDocument(ctx context.Context, id string) (*document.Document, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/documents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var findResp struct {
		Document *document.Document `json:"document"`
	}
	if err := h.parseResponse(resp, &findResp); err != nil {
		return nil, err
	}

	return findResp.Document, nil
}

func (h *httpClient) UpdateDocument(ctx context.Context, id string, req document.UpdateRequest) error {
	resp, err := h.doRequest(ctx, "PATCH", "/api/v1/documents/"+url.PathEscape(id), req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) DeleteDocument(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/v1/documents/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) SearchDocuments(ctx context.Context, query string) ([]document.Document, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/documents/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var listResp document.ListResponse
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Documents, nil
}

func (h *httpClient) StorageUsage(ctx context.Context) (*document.UsageResponse, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/storage/usage", nil)
	if err != nil {
		return nil, err
	}

	var usage document.UsageResponse
	if err := h.parseResponse(resp, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		// Сервер отдаёт либо {"detail": ...}, либо {"error": ...}.
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
