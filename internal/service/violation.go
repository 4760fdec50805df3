package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/drone_analytics_dashboard/internal/config"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=violation.go -destination=mocks/mock_violation.go -package=mocks

// ViolationRepository определяет контракт для работы с бд отчетов и нарушений
type ViolationRepository interface {
	CreateReport(ctx context.Context, report *models.DroneReport) error
	ListViolations(ctx context.Context, filters models.Filters) ([]models.Violation, error)
	GetDashboardStats(ctx context.Context, recentLimit int) (*models.DashboardStats, error)
	ListDrones(ctx context.Context) ([]string, error)
	ListDates(ctx context.Context) ([]string, error)
	ListViolationTypes(ctx context.Context) ([]string, error)
	ListReports(ctx context.Context) ([]*models.DroneReport, error)
	Reset(ctx context.Context) error

	// Кеш сводки версионируется поколением: InvalidateStatsCache увеличивает его,
	// а SetStatsCache пишет под поколением, прочитанным до подсчета.
	GetStatsFromCache(ctx context.Context) (*models.DashboardStats, int64, error)
	SetStatsCache(ctx context.Context, stats *models.DashboardStats, generation int64, ttl time.Duration) error
	InvalidateStatsCache(ctx context.Context) error
}

// ReportArchive сохраняет исходный файл отчета и возвращает ключ объекта
type ReportArchive interface {
	Store(ctx context.Context, reportID uuid.UUID, filename string, data []byte) (string, error)
	Remove(ctx context.Context, key string) error
}

// ViolationService определяет контракт бизнес-логики дашборда
type ViolationService interface {
	UploadReport(ctx context.Context, filename string, data []byte) (*models.UploadResult, error)
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListViolations(ctx context.Context, filters models.Filters) ([]models.Violation, error)
	ListDrones(ctx context.Context) ([]string, error)
	ListDates(ctx context.Context) ([]string, error)
	ListViolationTypes(ctx context.Context) ([]string, error)
	ListReports(ctx context.Context) ([]*models.DroneReport, error)
	ResetDatabase(ctx context.Context) error
}

type violationService struct {
	repo      ViolationRepository
	archive   ReportArchive
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	validate  *validator.Validate
}

// NewViolationService создает сервис. archive может быть nil, если архив не настроен.
func NewViolationService(repo ViolationRepository, archive ReportArchive, publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) ViolationService {
	return &violationService{
		repo:      repo,
		archive:   archive,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		validate:  validator.New(),
	}
}

// UploadReport разбирает отчет дрона, сохраняет его и оповещает подписчиков
func (s *violationService) UploadReport(ctx context.Context, filename string, data []byte) (*models.UploadResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "violation",
		"method":   "UploadReport",
		"filename": filename,
		"size":     len(data),
	})
	log.Info("Processing uploaded drone report")

	if !models.IsJSONFileName(filename) {
		log.Warn("Rejected upload with non-JSON extension")
		return nil, newReportError("Only JSON files are allowed")
	}

	report, err := parseReport(data, s.validate)
	if err != nil {
		log.WithError(err).Warn("Uploaded report is invalid")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"drone_id":  report.DroneID,
		"date":      report.Date,
	})

	if s.archive != nil {
		key, err := s.archive.Store(ctx, report.ID, filename, data)
		if err != nil {
			// Архив вспомогательный, загрузка продолжается без него
			log.WithError(err).Warn("Failed to archive raw report")
		} else {
			report.ArchiveKey = key
		}
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to store report in repository")
		s.removeArchived(ctx, log, report.ArchiveKey)
		return nil, fmt.Errorf("service: could not store report: %w", err)
	}

	if err := s.repo.InvalidateStatsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}

	event := webhook.WebhookEvent{
		Type:             webhook.EventReportIngested,
		ReportID:         report.ID.String(),
		DroneID:          report.DroneID,
		Date:             report.Date,
		Location:         report.Location,
		ViolationsCount:  len(report.Violations),
		ViolationsByType: countByType(report.Violations),
		Timestamp:        time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish report webhook event")
	}

	log.WithField("violations", len(report.Violations)).Info("Report stored successfully")
	return &models.UploadResult{
		Message:         fmt.Sprintf("Processed %d violations from %s", len(report.Violations), report.DroneID),
		ReportID:        report.ID,
		DroneID:         report.DroneID,
		Date:            report.Date,
		Location:        report.Location,
		ViolationsCount: len(report.Violations),
	}, nil
}

// GetDashboardStats возвращает сводку, сначала пытаясь взять ее из кеша
func (s *violationService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "violation",
		"method":  "GetDashboardStats",
	})

	cached, generation, err := s.repo.GetStatsFromCache(ctx)
	cacheAvailable := err == nil
	if err != nil {
		log.WithError(err).Warn("Failed to read stats from cache")
	}
	if cached != nil {
		log.Debug("Dashboard stats served from cache")
		return cached, nil
	}

	stats, err := s.repo.GetDashboardStats(ctx, s.cfg.RecentViolationsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to compute dashboard stats")
		return nil, fmt.Errorf("service: could not get dashboard stats: %w", err)
	}

	// Без известного поколения снимок не кешируется
	if cacheAvailable {
		if err := s.repo.SetStatsCache(ctx, stats, generation, s.cfg.StatsCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache dashboard stats")
		}
	}

	log.WithField("total_violations", stats.TotalViolations).Info("Dashboard stats computed")
	return stats, nil
}

// ListViolations возвращает нарушения, удовлетворяющие всем заданным фильтрам
func (s *violationService) ListViolations(ctx context.Context, filters models.Filters) ([]models.Violation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "violation",
		"method":         "ListViolations",
		"drone_id":       filters.DroneID,
		"date":           filters.Date,
		"violation_type": filters.ViolationType,
	})

	violations, err := s.repo.ListViolations(ctx, filters)
	if err != nil {
		log.WithError(err).Error("Failed to list violations from repository")
		return nil, fmt.Errorf("service: could not list violations: %w", err)
	}

	log.WithField("count", len(violations)).Info("Violations listed successfully")
	return violations, nil
}

func (s *violationService) ListDrones(ctx context.Context) ([]string, error) {
	drones, err := s.repo.ListDrones(ctx)
	if err != nil {
		s.logger.WithField("method", "ListDrones").WithError(err).Error("Failed to list drones")
		return nil, fmt.Errorf("service: could not list drones: %w", err)
	}
	return drones, nil
}

func (s *violationService) ListDates(ctx context.Context) ([]string, error) {
	dates, err := s.repo.ListDates(ctx)
	if err != nil {
		s.logger.WithField("method", "ListDates").WithError(err).Error("Failed to list dates")
		return nil, fmt.Errorf("service: could not list dates: %w", err)
	}
	return dates, nil
}

func (s *violationService) ListViolationTypes(ctx context.Context) ([]string, error) {
	types, err := s.repo.ListViolationTypes(ctx)
	if err != nil {
		s.logger.WithField("method", "ListViolationTypes").WithError(err).Error("Failed to list violation types")
		return nil, fmt.Errorf("service: could not list violation types: %w", err)
	}
	return types, nil
}

// ListReports возвращает все отчеты вместе с нарушениями
func (s *violationService) ListReports(ctx context.Context) ([]*models.DroneReport, error) {
	reports, err := s.repo.ListReports(ctx)
	if err != nil {
		s.logger.WithField("method", "ListReports").WithError(err).Error("Failed to list reports")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// ResetDatabase удаляет все отчеты и нарушения
func (s *violationService) ResetDatabase(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "violation",
		"method":  "ResetDatabase",
	})
	log.Warn("Resetting violation database")

	if err := s.repo.Reset(ctx); err != nil {
		log.WithError(err).Error("Failed to reset repository")
		return fmt.Errorf("service: could not reset database: %w", err)
	}

	if err := s.repo.InvalidateStatsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}

	event := webhook.WebhookEvent{
		Type:      webhook.EventDatabaseReset,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish reset webhook event")
	}

	log.Info("Violation database reset")
	return nil
}

// removeArchived удаляет исходный файл отчета, который не попал в БД
func (s *violationService) removeArchived(ctx context.Context, log *logrus.Entry, key string) {
	if s.archive == nil || key == "" {
		return
	}
	if err := s.archive.Remove(ctx, key); err != nil {
		log.WithError(err).WithField("archive_key", key).Warn("Failed to remove orphaned archive object")
	}
}

func countByType(violations []models.ReportViolation) map[string]int {
	counts := make(map[string]int)
	for _, v := range violations {
		counts[v.Type]++
	}
	return counts
}
