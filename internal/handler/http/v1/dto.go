package v1

import (
	"time"

	"github.com/google/uuid"
)

// ViolationResponse DTO нарушения для таблицы, карты и графиков
// @Description DTO нарушения
type ViolationResponse struct {
	ViolationID string  `json:"violation_id"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	DroneID     string  `json:"drone_id"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
}

// DashboardStatsResponse DTO сводной статистики дашборда
// @Description DTO сводной статистики дашборда
type DashboardStatsResponse struct {
	TotalViolations  int                 `json:"total_violations"`
	ViolationsByType map[string]int      `json:"violations_by_type"`
	Drones           []string            `json:"drones"`
	Locations        []string            `json:"locations"`
	RecentViolations []ViolationResponse `json:"recent_violations"`
}

// UploadResponse DTO результата загрузки отчета
// @Description DTO результата загрузки отчета
type UploadResponse struct {
	Message         string    `json:"message"`
	ReportID        uuid.UUID `json:"report_id"`
	DroneID         string    `json:"drone_id"`
	Date            string    `json:"date"`
	Location        string    `json:"location"`
	ViolationsCount int       `json:"violations_count"`
}

// ReportViolationResponse DTO нарушения внутри отчета
type ReportViolationResponse struct {
	ViolationID string  `json:"violation_id"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
}

// ReportResponse DTO загруженного отчета
// @Description DTO загруженного отчета с нарушениями
type ReportResponse struct {
	ID         uuid.UUID                 `json:"id"`
	DroneID    string                    `json:"drone_id"`
	Date       string                    `json:"date"`
	Location   string                    `json:"location"`
	CreatedAt  time.Time                 `json:"created_at"`
	Violations []ReportViolationResponse `json:"violations"`
}

// FiltersQuery параметры фильтрации списка нарушений
type FiltersQuery struct {
	DroneID       string `form:"drone_id" validate:"max=255"`
	Date          string `form:"date" validate:"omitempty,max=64"`
	ViolationType string `form:"violation_type" validate:"max=255"`
}

// ErrorResponse DTO ошибки; detail показывается пользователю как есть
// @Description DTO ошибки
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse DTO простого ответа
type MessageResponse struct {
	Message string `json:"message"`
}
