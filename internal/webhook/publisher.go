package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "dashboard:webhook_events"

	// EventReportIngested публикуется после сохранения загруженного отчета
	EventReportIngested = "report.ingested"
	// EventDatabaseReset публикуется после очистки базы нарушений
	EventDatabaseReset = "database.reset"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type             string         `json:"type"`
	ReportID         string         `json:"report_id,omitempty"`
	DroneID          string         `json:"drone_id,omitempty"`
	Date             string         `json:"date,omitempty"`
	Location         string         `json:"location,omitempty"`
	ViolationsCount  int            `json:"violations_count"`
	ViolationsByType map[string]int `json:"violations_by_type,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
