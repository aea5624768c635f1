package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"webcabinet/internal/models"
)

// Фиксированные заголовки платформы: веб-клиент, первая версия протокола.
const (
	HeaderPlatformType = "Platform-Type"
	HeaderVersion      = "Version"
	HeaderDebugMode    = "Debug-Mode"
	HeaderSessionID    = "Session-id"
	HeaderUserID       = "User-Id"

	platformType    = "WEB"
	protocolVersion = "1"
)

// APIError — нормализованная ошибка шлюза: транспортный сбой или не-2xx ответ.
// Status == 0 означает, что до HTTP-статуса дело не дошло.
type APIError struct {
	Status  int
	Message string // payload сервера либо текст транспортной ошибки
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "api: " + e.Message
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client — клиент платформенного API. Таймаутов и отмены нет намеренно:
// вызов либо разрешается, либо падает транспортом, поздний ответ просто
// игнорируется на границе хендлера.
type Client struct {
	BaseURL string
	Debug   bool

	http *http.Client
}

func NewClient(baseURL string, debug bool) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Debug:   debug,
		http:    &http.Client{},
	}
}

// Do выполняет вызов относительно базового origin. creds может быть nil —
// тогда сессионные заголовки не отправляются. Хранилище сессий метод не
// трогает никогда.
func (c *Client) Do(method, path string, creds *models.Credentials, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("gateway: marshal payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderPlatformType, platformType)
	req.Header.Set(HeaderVersion, protocolVersion)
	if c.Debug {
		req.Header.Set(HeaderDebugMode, "true")
	}
	if creds != nil && creds.Complete() {
		req.Header.Set(HeaderSessionID, creds.SessionID)
		req.Header.Set(HeaderUserID, creds.UserID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "parse response: " + err.Error()}
		}
	}
	return nil
}

// serverMessage достаёт из тела ошибки локализованный текст, если сервер его
// прислал, иначе отдаёт сырой payload.
func serverMessage(raw []byte) string {
	var resp models.APIResponse
	if err := json.Unmarshal(raw, &resp); err == nil && resp.Output.MessageRU != "" {
		return resp.Output.MessageRU
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return "empty error payload"
	}
	return msg
}
