package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL используется, если в конфиге адрес API не задан
	DefaultBaseURL = "http://localhost:8000/api"

	csrfHeader      = "X-CSRF-Token"
	requestIDHeader = "X-Request-ID"
)

// Client обертка над HTTP API вишлистов.
// Копии, созданные WithCSRFToken, делят транспорт и cookie jar.
type Client struct {
	baseURL   string
	http      *http.Client
	csrfToken string
	logger    logrus.FieldLogger
	metrics   *Metrics
}

// Option настраивает клиент
type Option func(*Client)

// WithTimeout устанавливает таймаут на запрос
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics включает учет запросов в prometheus-коллекторах
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает клиент с базовым адресом и cookie jar (credentials: include).
func NewClient(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c
}

// WithCSRFToken возвращает копию клиента, добавляющую CSRF-заголовок к изменяющим запросам.
func (c *Client) WithCSRFToken(token string) *Client {
	clone := *c
	clone.csrfToken = token
	return &clone
}

// CSRFToken возвращает текущий токен (пустой до авторизации)
func (c *Client) CSRFToken() string {
	return c.csrfToken
}

// BaseURL возвращает базовый адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON выполняет GET и декодирует ответ
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// sendJSON выполняет изменяющий запрос с JSON-телом
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.execute(req, path, out)
}

// upload отправляет multipart-форму с единственным файлом
func (c *Client) upload(ctx context.Context, path, field, filePath string, out any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open upload %s: %w", filePath, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	// Для multipart JSON content-type не ставим: нужен boundary
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.execute(req, path, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if c.csrfToken != "" && method != http.MethodGet {
		req.Header.Set(csrfHeader, c.csrfToken)
	}
	return req, nil
}

func (c *Client) execute(req *http.Request, route string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	log := c.logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       route,
		"request_id": req.Header.Get(requestIDHeader),
	})

	if err != nil {
		c.metrics.observe(req.Method, route, "error", elapsed)
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("%s %s: %w", req.Method, route, err)
	}
	defer resp.Body.Close()

	c.metrics.observe(req.Method, route, statusClass(resp.StatusCode), elapsed)
	log.WithFields(logrus.Fields{"status": resp.StatusCode, "duration": elapsed}).Debug("request done")

	if !IsSuccessStatus(resp.StatusCode) {
		return newError(req.Method, route, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, route, err)
	}
	return nil
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
