package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DroneReport - загруженный отчет дрона вместе с нарушениями
type DroneReport struct {
	ID         uuid.UUID         `json:"id"`
	DroneID    string            `json:"drone_id"`
	Date       string            `json:"date"`
	Location   string            `json:"location"`
	ArchiveKey string            `json:"archive_key,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	Violations []ReportViolation `json:"violations"`
}

// ReportViolation - нарушение в составе отчета (без полей отчета)
type ReportViolation struct {
	ViolationID string  `json:"violation_id"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
}

// Flatten разворачивает отчет в плоский список нарушений
func (r *DroneReport) Flatten() []Violation {
	result := make([]Violation, 0, len(r.Violations))
	for _, v := range r.Violations {
		result = append(result, Violation{
			ViolationID: v.ViolationID,
			Type:        v.Type,
			Timestamp:   v.Timestamp,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			ImageURL:    v.ImageURL,
			DroneID:     r.DroneID,
			Date:        r.Date,
			Location:    r.Location,
		})
	}
	return result
}

// UploadResult - итог обработки загруженного файла
type UploadResult struct {
	Message         string    `json:"message"`
	ReportID        uuid.UUID `json:"report_id"`
	DroneID         string    `json:"drone_id"`
	Date            string    `json:"date"`
	Location        string    `json:"location"`
	ViolationsCount int       `json:"violations_count"`
}

// IsJSONFileName сообщает, имеет ли файл расширение .json
func IsJSONFileName(name string) bool {
	return strings.HasSuffix(name, ".json")
}
