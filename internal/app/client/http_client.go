package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"usersapi/internal/app/client/config"
	"usersapi/internal/domain/user"

	"golang.org/x/exp/slog"
)

// APIError - ответ сервера со статусом >= 400
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера: %s", e.Message)
}

// HTTPClient - клиент API пользователей
type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	return &HTTPClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "usersctl/1.0",
	}
}

// HealthCheck проверяет доступность сервера и БД
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *HTTPClient) ListUsers(ctx context.Context) ([]user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := h.parseResponse(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser возвращает nil без ошибки, если пользователь не найден
func (h *HTTPClient) GetUser(ctx context.Context, id string) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, userPath(id), nil)
	if err != nil {
		return nil, err
	}

	var u *user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}
	return u, nil
}

func (h *HTTPClient) CreateUser(ctx context.Context, req user.Request) (user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/users", req)
	if err != nil {
		return user.User{}, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// UpdateUser возвращает nil без ошибки, если пользователь не найден
func (h *HTTPClient) UpdateUser(ctx context.Context, id string, req user.Request) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, userPath(id), req)
	if err != nil {
		return nil, err
	}

	var u *user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser возвращает сообщение сервера
func (h *HTTPClient) DeleteUser(ctx context.Context, id string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodDelete, userPath(id), nil)
	if err != nil {
		return "", err
	}

	var deleteResp struct {
		Message string `json:"message"`
	}
	if err := h.parseResponse(resp, &deleteResp); err != nil {
		return "", err
	}
	return deleteResp.Message, nil
}

func userPath(id string) string {
	return "/api/users/" + url.PathEscape(id)
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
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

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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

func (h *HTTPClient) parseResponse(resp *http.Response, result interface{}) error {
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
		var errResp struct {
			Error string `json:"error"`
		}
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
