package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/internal/service"
)

const (
	statsCacheKeyPrefix     = "dashboard:stats"
	statsCacheGenerationKey = "dashboard:stats:generation"
)

// statsCacheKey - ключ снимка сводки для поколения кеша
func statsCacheKey(generation int64) string {
	return fmt.Sprintf("%s:%d", statsCacheKeyPrefix, generation)
}

// Колонки плоского нарушения; порядок совпадает со scanViolation
const violationColumns = `
	v.violation_id,
	v.type,
	v.timestamp,
	v.latitude,
	v.longitude,
	v.image_url,
	r.drone_id,
	r.date,
	r.location`

type ViolationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewViolationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ViolationRepository {
	return &ViolationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateReport сохраняет отчет и все его нарушения в одной транзакции
func (r *ViolationRepository) CreateReport(ctx context.Context, report *models.DroneReport) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // после Commit откат ничего не делает

	query := `
		INSERT INTO drone_reports (id, drone_id, date, location, archive_key)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')) RETURNING created_at;
	`
	err = tx.QueryRow(ctx, query,
		report.ID,
		report.DroneID,
		report.Date,
		report.Location,
		report.ArchiveKey,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	batch := &pgx.Batch{}
	for _, v := range report.Violations {
		batch.Queue(`
			INSERT INTO violations (violation_id, type, timestamp, latitude, longitude, image_url, report_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			v.ViolationID, v.Type, v.Timestamp, v.Latitude, v.Longitude, v.ImageURL, report.ID,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for _, v := range report.Violations {
		if _, err := results.Exec(); err != nil {
			results.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return fmt.Errorf("violation %s: %w", v.ViolationID, models.ErrDuplicateViolation)
			}
			return fmt.Errorf("failed to insert violation %s: %w", v.ViolationID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close violation batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	return nil
}

// ListViolations возвращает нарушения, удовлетворяющие всем непустым фильтрам
func (r *ViolationRepository) ListViolations(ctx context.Context, filters models.Filters) ([]models.Violation, error) {
	where, args := filterClause(filters)

	query := `SELECT` + violationColumns + `
		FROM violations v
		JOIN drone_reports r ON r.id = v.report_id`
	if where != "" {
		query += "\n\t\tWHERE " + where
	}
	query += "\n\t\tORDER BY v.id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	return collectViolations(rows)
}

// GetDashboardStats собирает сводку по всем сохраненным нарушениям
func (r *ViolationRepository) GetDashboardStats(ctx context.Context, recentLimit int) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		ViolationsByType: make(map[string]int),
	}

	rows, err := r.db.Query(ctx, `SELECT type, COUNT(*) FROM violations GROUP BY type;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count violations by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			violationType string
			count         int
		)
		if err := rows.Scan(&violationType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		stats.ViolationsByType[violationType] = count
		stats.TotalViolations += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error type count iteration: %w", err)
	}

	if stats.Drones, err = r.distinct(ctx, `SELECT DISTINCT drone_id FROM drone_reports ORDER BY drone_id;`); err != nil {
		return nil, err
	}
	if stats.Locations, err = r.distinct(ctx, `SELECT DISTINCT location FROM drone_reports ORDER BY location;`); err != nil {
		return nil, err
	}

	recentQuery := `SELECT` + violationColumns + `
		FROM violations v
		JOIN drone_reports r ON r.id = v.report_id
		ORDER BY v.id DESC
		LIMIT $1;`
	recentRows, err := r.db.Query(ctx, recentQuery, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent violations: %w", err)
	}
	if stats.RecentViolations, err = collectViolations(recentRows); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *ViolationRepository) ListDrones(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT drone_id FROM drone_reports ORDER BY drone_id;`)
}

func (r *ViolationRepository) ListDates(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT date FROM drone_reports ORDER BY date;`)
}

func (r *ViolationRepository) ListViolationTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT type FROM violations ORDER BY type;`)
}

// ListReports возвращает все отчеты с вложенными нарушениями
func (r *ViolationRepository) ListReports(ctx context.Context) ([]*models.DroneReport, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, drone_id, date, location, COALESCE(archive_key, ''), created_at
		FROM drone_reports
		ORDER BY created_at;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.DroneReport, 0)
	byID := make(map[uuid.UUID]*models.DroneReport)
	for rows.Next() {
		report := &models.DroneReport{Violations: make([]models.ReportViolation, 0)}
		if err := rows.Scan(&report.ID, &report.DroneID, &report.Date, &report.Location, &report.ArchiveKey, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
		byID[report.ID] = report
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error report iteration: %w", err)
	}

	vrows, err := r.db.Query(ctx, `
		SELECT report_id, violation_id, type, timestamp, latitude, longitude, image_url
		FROM violations
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list report violations: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var (
			reportID uuid.UUID
			v        models.ReportViolation
		)
		if err := vrows.Scan(&reportID, &v.ViolationID, &v.Type, &v.Timestamp, &v.Latitude, &v.Longitude, &v.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan report violation row: %w", err)
		}
		if report, ok := byID[reportID]; ok {
			report.Violations = append(report.Violations, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("error report violation iteration: %w", err)
	}
	return reports, nil
}

// Reset удаляет все отчеты и нарушения
func (r *ViolationRepository) Reset(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE TABLE violations, drone_reports RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("failed to reset violation data: %w", err)
	}
	return nil
}

// GetStatsFromCache пытается получить сводку текущего поколения из Redis.
// Промах кеша - (nil, generation, nil).
func (r *ViolationRepository) GetStatsFromCache(ctx context.Context) (*models.DashboardStats, int64, error) {
	generation, err := r.redisClient.Get(ctx, statsCacheGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, fmt.Errorf("failed to get stats cache generation: %w", err)
	}

	val, err := r.redisClient.Get(ctx, statsCacheKey(generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, nil
		}
		return nil, 0, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	stats := &models.DashboardStats{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, generation, nil
}

// SetStatsCache сохраняет сводку под указанным поколением.
// Снимок устаревшего поколения никогда не читается и истекает по ttl.
func (r *ViolationRepository) SetStatsCache(ctx context.Context, stats *models.DashboardStats, generation int64, ttl time.Duration) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, statsCacheKey(generation), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}

// InvalidateStatsCache переводит кеш на новое поколение
func (r *ViolationRepository) InvalidateStatsCache(ctx context.Context) error {
	if err := r.redisClient.Incr(ctx, statsCacheGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}

func (r *ViolationRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct values: %w", err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect distinct values: %w", err)
	}
	return values, nil
}

// filterClause строит условие AND по непустым фильтрам с плейсхолдерами $1..$n
// в порядке drone_id, date, type. Без фильтров условие пустое.
func filterClause(filters models.Filters) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addCondition("r.drone_id", filters.DroneID)
	addCondition("r.date", filters.Date)
	addCondition("v.type", filters.ViolationType)

	return strings.Join(conditions, " AND "), args
}

func collectViolations(rows pgx.Rows) ([]models.Violation, error) {
	defer rows.Close()

	violations := make([]models.Violation, 0)
	for rows.Next() {
		var v models.Violation
		err := rows.Scan(
			&v.ViolationID,
			&v.Type,
			&v.Timestamp,
			&v.Latitude,
			&v.Longitude,
			&v.ImageURL,
			&v.DroneID,
			&v.Date,
			&v.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan violation row: %w", err)
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error violation iteration: %w", err)
	}
	return violations, nil
}
