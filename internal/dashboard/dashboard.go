package dashboard

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/pkg/client"
	"github.com/sirupsen/logrus"
)

// DataSource - источник данных дашборда (REST API)
type DataSource interface {
	Violations(ctx context.Context, filters models.Filters) ([]models.Violation, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	UploadReport(ctx context.Context, path string) (*models.UploadResult, error)
	ResetDatabase(ctx context.Context) error
}

type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status - строка состояния под формой загрузки
type Status struct {
	Kind    StatusKind
	Message string
}

const (
	msgInvalidFile   = "Please upload a JSON file"
	msgUploaded      = "File uploaded successfully!"
	msgUploadFailed  = "Upload failed"
	msgRequestFailed = "Request failed"
	msgNetworkError  = "Network error occurred"
	msgResetComplete = "Database reset successfully"
)

// Dashboard хранит состояние экрана: фильтры, сортировку, рабочий набор и сводку.
// Ошибки источника сохраняются в Status и не прерывают работу.
type Dashboard struct {
	source DataSource
	logger *logrus.Logger

	mu         sync.Mutex
	filters    models.Filters
	sort       SortState
	violations []models.Violation
	stats      *models.DashboardStats
	options    *models.FilterOptions
	status     Status
}

func New(source DataSource, logger *logrus.Logger) *Dashboard {
	return &Dashboard{
		source:     source,
		logger:     logger,
		sort:       DefaultSortState(),
		violations: []models.Violation{},
		stats:      &models.DashboardStats{ViolationsByType: map[string]int{}},
		options:    &models.FilterOptions{},
		status:     Status{Kind: StatusIdle},
	}
}

func (d *Dashboard) Filters() models.Filters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters
}

func (d *Dashboard) SortState() SortState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sort
}

func (d *Dashboard) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

func (d *Dashboard) Stats() *models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dashboard) Options() *models.FilterOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.options
}

// Violations - рабочий набор в порядке текущей сортировки
func (d *Dashboard) Violations() []models.Violation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sort.Apply(d.violations)
}

// SortBy переключает сортировку таблицы; данные заново не запрашиваются
func (d *Dashboard) SortBy(field SortField) SortState {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sort = d.sort.Toggle(field)
	return d.sort
}

func (d *Dashboard) SetSort(state SortState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sort = state
}

// SetFilters меняет фильтры и перезапрашивает данные, если они изменились
func (d *Dashboard) SetFilters(ctx context.Context, filters models.Filters) error {
	d.mu.Lock()
	changed := d.filters != filters
	d.filters = filters
	d.mu.Unlock()

	if !changed {
		return nil
	}
	return d.Refresh(ctx)
}

// ClearFilters сбрасывает все фильтры и всегда делает ровно одно обновление
func (d *Dashboard) ClearFilters(ctx context.Context) error {
	d.mu.Lock()
	d.filters = models.Filters{}
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// Refresh заменяет рабочий набор ответом сервиса и перечитывает сводку.
// Рабочий набор обновляется сразу после ответа, даже если сводка затем не загрузится.
// Параллельные вызовы не упорядочиваются: побеждает последний завершившийся.
func (d *Dashboard) Refresh(ctx context.Context) error {
	return d.refresh(ctx, true)
}

func (d *Dashboard) refresh(ctx context.Context, reportStatus bool) error {
	log := d.logger.WithField("method", "Refresh")
	filters := d.Filters()

	violations, err := d.source.Violations(ctx, filters)
	if err != nil {
		log.WithError(err).Warn("Failed to load violations")
		d.failStatus(reportStatus, err)
		return err
	}
	d.mu.Lock()
	d.violations = nonNilViolations(violations)
	d.mu.Unlock()

	stats, err := d.source.Stats(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load stats")
		d.failStatus(reportStatus, err)
		return err
	}
	d.mu.Lock()
	d.stats = stats
	d.mu.Unlock()
	return nil
}

// LoadOptions обновляет списки значений для фильтров
func (d *Dashboard) LoadOptions(ctx context.Context) error {
	return d.loadOptions(ctx, true)
}

func (d *Dashboard) loadOptions(ctx context.Context, reportStatus bool) error {
	opts, err := d.source.FilterOptions(ctx)
	if err != nil {
		d.logger.WithField("method", "LoadOptions").WithError(err).Warn("Failed to load filter options")
		d.failStatus(reportStatus, err)
		return err
	}
	d.mu.Lock()
	d.options = opts
	d.mu.Unlock()
	return nil
}

// Upload проверяет расширение до обращения к сети, загружает отчет и обновляет данные.
// Ошибки последующего обновления только логируются и не меняют статус загрузки.
func (d *Dashboard) Upload(ctx context.Context, path string) (*models.UploadResult, error) {
	log := d.logger.WithFields(logrus.Fields{
		"method": "Upload",
		"file":   path,
	})

	if !models.IsJSONFileName(filepath.Base(path)) {
		d.setStatus(StatusError, msgInvalidFile)
		return nil, client.ErrInvalidFileType
	}

	result, err := d.source.UploadReport(ctx, path)
	if err != nil {
		log.WithError(err).Warn("Upload failed")
		d.setStatus(StatusError, errorMessage(err, msgUploadFailed))
		return nil, err
	}

	d.setStatus(StatusSuccess, msgUploaded)
	log.WithField("drone_id", result.DroneID).Info("Report uploaded")

	d.reload(ctx)
	return result, nil
}

// Reset очищает данные на сервере и обновляет экран
func (d *Dashboard) Reset(ctx context.Context) error {
	if err := d.source.ResetDatabase(ctx); err != nil {
		d.logger.WithField("method", "Reset").WithError(err).Warn("Reset failed")
		d.setStatus(StatusError, errorMessage(err, msgRequestFailed))
		return err
	}
	d.setStatus(StatusSuccess, msgResetComplete)

	d.reload(ctx)
	return nil
}

// reload перечитывает фильтры и данные после успешной операции, не трогая статус
func (d *Dashboard) reload(ctx context.Context) {
	if err := d.loadOptions(ctx, false); err != nil {
		d.logger.WithError(err).Error("Failed to reload filter options")
	}
	if err := d.refresh(ctx, false); err != nil {
		d.logger.WithError(err).Error("Failed to reload dashboard data")
	}
}

func (d *Dashboard) failStatus(report bool, err error) {
	if report {
		d.setStatus(StatusError, errorMessage(err, msgRequestFailed))
	}
}

func (d *Dashboard) setStatus(kind StatusKind, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = Status{Kind: kind, Message: message}
}

// errorMessage: detail из ответа сервера показывается как есть, ошибки транспорта - общим сообщением
func errorMessage(err error, emptyDetail string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return emptyDetail
	}
	if errors.Is(err, client.ErrInvalidFileType) {
		return msgInvalidFile
	}
	return msgNetworkError
}

func nonNilViolations(v []models.Violation) []models.Violation {
	if v == nil {
		return []models.Violation{}
	}
	return slices.Clip(v)
}
