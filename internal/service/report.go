package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
)

// ReportError - ошибка содержимого загруженного отчета.
// Detail показывается пользователю без изменений.
type ReportError struct {
	Detail string
}

func (e *ReportError) Error() string {
	return e.Detail
}

func newReportError(format string, args ...any) *ReportError {
	return &ReportError{Detail: fmt.Sprintf(format, args...)}
}

// Обязательные поля верхнего уровня проверяются в этом порядке
var requiredReportFields = []string{"drone_id", "date", "location", "violations"}

type reportPayload struct {
	DroneID    string             `json:"drone_id" validate:"required"`
	Date       string             `json:"date" validate:"required"`
	Location   string             `json:"location" validate:"required"`
	Violations []violationPayload `json:"violations" validate:"dive"`
}

type violationPayload struct {
	ID        string  `json:"id" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Timestamp string  `json:"timestamp"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	ImageURL  string  `json:"image_url"`
}

// parseReport разбирает и проверяет JSON отчета дрона
func parseReport(data []byte, validate *validator.Validate) (*models.DroneReport, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newReportError("Invalid JSON file")
	}

	for _, field := range requiredReportFields {
		if _, ok := raw[field]; !ok {
			return nil, newReportError("Missing required field: %s", field)
		}
	}

	var payload reportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, newReportError("Invalid value for field %s: expected %s", typeErr.Field, typeErr.Type)
		}
		return nil, newReportError("Invalid JSON file")
	}

	if err := validate.Struct(payload); err != nil {
		return nil, newReportError("Invalid report: %s", describeValidation(err))
	}

	report := &models.DroneReport{
		ID:         uuid.New(),
		DroneID:    payload.DroneID,
		Date:       payload.Date,
		Location:   payload.Location,
		Violations: make([]models.ReportViolation, 0, len(payload.Violations)),
	}

	seen := make(map[string]struct{}, len(payload.Violations))
	for _, v := range payload.Violations {
		if _, dup := seen[v.ID]; dup {
			return nil, newReportError("Duplicate violation id in report: %s", v.ID)
		}
		seen[v.ID] = struct{}{}

		report.Violations = append(report.Violations, models.ReportViolation{
			ViolationID: v.ID,
			Type:        v.Type,
			Timestamp:   v.Timestamp,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			ImageURL:    v.ImageURL,
		})
	}
	return report, nil
}

// describeValidation превращает ошибки validator в короткий текст для пользователя
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
