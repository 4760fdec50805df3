package models

import (
	"errors"
	"net/url"
)

// ErrDuplicateViolation возвращается, когда violation_id уже сохранен
var ErrDuplicateViolation = errors.New("violation already exists")

// Violation - одно зафиксированное дроном нарушение техники безопасности.
// Поля drone_id, date и location берутся из отчета, к которому относится нарушение.
type Violation struct {
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

// Filters - условия выборки нарушений, пустая строка означает отсутствие ограничения
type Filters struct {
	DroneID       string `form:"drone_id" json:"drone_id" yaml:"drone_id"`
	Date          string `form:"date" json:"date" yaml:"date"`
	ViolationType string `form:"violation_type" json:"violation_type" yaml:"violation_type"`
}

// IsEmpty сообщает, что ни одно условие не задано
func (f Filters) IsEmpty() bool {
	return f.DroneID == "" && f.Date == "" && f.ViolationType == ""
}

// Query возвращает параметры запроса, пропуская пустые значения
func (f Filters) Query() url.Values {
	q := url.Values{}
	if f.DroneID != "" {
		q.Set("drone_id", f.DroneID)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.ViolationType != "" {
		q.Set("violation_type", f.ViolationType)
	}
	return q
}
