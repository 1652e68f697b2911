package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jrenteria/tiendasync/pkg/api"
)

// ErrDocumentNotFound возвращается когда документ не найден на сервере
var ErrDocumentNotFound = errors.New("document not found")

// Client представляет HTTP клиент для взаимодействия с удалённым
// хранилищем документов
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент.
// token — статический bearer token, выданный серверу хранилища.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// GetAllOnce возвращает все живые документы коллекции,
// упорядоченные по указанному полю
func (c *Client) GetAllOnce(ctx context.Context, collection, orderBy string) ([]api.Document, error) {
	var resp api.ListResponse
	path := fmt.Sprintf("/api/v1/collections/%s/documents?order_by=%s",
		url.PathEscape(collection), url.QueryEscape(orderBy))

	err := c.doRequestWithRetry(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list documents request failed: %w", err)
	}
	return resp.Documents, nil
}

// FindByField возвращает первый документ коллекции, у которого поле field
// равно value. Возвращает ErrDocumentNotFound, если совпадений нет.
func (c *Client) FindByField(ctx context.Context, collection, field, value string) (*api.Document, error) {
	var doc api.Document
	path := fmt.Sprintf("/api/v1/collections/%s/documents/search?field=%s&value=%s",
		url.PathEscape(collection), url.QueryEscape(field), url.QueryEscape(value))

	err := c.doRequestWithRetry(ctx, http.MethodGet, path, nil, &doc)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &doc, nil
}

// GetDeltasSince возвращает документы коллекции, изменённые строго после
// cursor (epoch ms), включая tombstones
func (c *Client) GetDeltasSince(ctx context.Context, collection string, since int64) (*api.DeltaResponse, error) {
	var resp api.DeltaResponse
	path := fmt.Sprintf("/api/v1/collections/%s/deltas?since=%d",
		url.PathEscape(collection), since)

	err := c.doRequestWithRetry(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("deltas request failed: %w", err)
	}
	return &resp, nil
}

// UpsertMany выполняет пакетную merge-запись документов.
// Запись не ретраится внутри вызова: при ошибке вся очередь повторяется
// на следующем триггере синхронизации.
func (c *Client) UpsertMany(ctx context.Context, collection string, docs []api.Document) (*api.BatchUpsertResponse, error) {
	var resp api.BatchUpsertResponse
	path := fmt.Sprintf("/api/v1/collections/%s/documents:batchUpsert", url.PathEscape(collection))

	req := api.BatchUpsertRequest{Documents: docs}
	err := c.doRequest(ctx, http.MethodPost, path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("batch upsert request failed: %w", err)
	}
	return &resp, nil
}

// DeleteDocument удаляет один документ по id (tombstone на сервере)
func (c *Client) DeleteDocument(ctx context.Context, collection, id string) error {
	path := fmt.Sprintf("/api/v1/collections/%s/documents/%s",
		url.PathEscape(collection), url.PathEscape(id))

	err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// doRequestWithRetry выполняет идемпотентный запрос с fibonacci backoff
// для транзиентных сетевых ошибок
func (c *Client) doRequestWithRetry(ctx context.Context, method, path string, body, result interface{}) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.doRequest(ctx, method, path, body, result)
		if err == nil {
			return nil
		}
		// Ответы сервера не ретраим, только сетевые сбои
		var se *serverError
		if errors.As(err, &se) || errors.Is(err, ErrDocumentNotFound) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// serverError представляет ответ сервера со статусом вне 2xx
type serverError struct {
	message string
	status  int
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.status, e.message)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &serverError{status: resp.StatusCode, message: errResp.Message}
		}
		return &serverError{status: resp.StatusCode, message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
