package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrInvalidFileType возвращается до отправки запроса, если файл не .json
var ErrInvalidFileType = errors.New("only .json files are accepted")

// APIError - ответ сервиса с кодом ошибки; Detail показывается пользователю как есть
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// Client - HTTP клиент REST API дашборда
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func New(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Violations запрашивает нарушения; пустые фильтры в запрос не попадают
func (c *Client) Violations(ctx context.Context, filters models.Filters) ([]models.Violation, error) {
	path := "/violations"
	if q := filters.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	var violations []models.Violation
	if err := c.getJSON(ctx, path, &violations); err != nil {
		return nil, err
	}
	return violations, nil
}

func (c *Client) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	if err := c.getJSON(ctx, "/dashboard/stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// FilterOptions собирает значения для всех трех фильтров
func (c *Client) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{}
	if err := c.getJSON(ctx, "/drones", &opts.Drones); err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, "/dates", &opts.Dates); err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, "/violations/types", &opts.ViolationTypes); err != nil {
		return nil, err
	}
	return opts, nil
}

// UploadReport отправляет файл отчета как multipart поле file
func (c *Client) UploadReport(ctx context.Context, path string) (*models.UploadResult, error) {
	filename := filepath.Base(path)
	if !models.IsJSONFileName(filename) {
		return nil, ErrInvalidFileType
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("client: could not read report file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("client: could not build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("client: could not build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("client: could not build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("client: could not create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	result := &models.UploadResult{}
	if err := c.do(req, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ResetDatabase удаляет все данные на сервере
func (c *Client) ResetDatabase(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reset-database", nil)
	if err != nil {
		return fmt.Errorf("client: could not create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	return c.do(req, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("client: could not create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	log := c.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request failed")
		return fmt.Errorf("client: request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: could not read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Detail = payload.Detail
		}
		log.WithField("status", resp.StatusCode).Warn("Server returned error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("client: could not decode response: %w", err)
	}
	return nil
}
