package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
)

// SortField - колонка таблицы, по которой упорядочиваются нарушения
type SortField string

const (
	SortByDate      SortField = "date"
	SortByTimestamp SortField = "timestamp"
	SortByType      SortField = "type"
	SortByDroneID   SortField = "drone_id"
	SortByLocation  SortField = "location"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// ParseSortField проверяет имя колонки
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortByDate, SortByTimestamp, SortByType, SortByDroneID, SortByLocation:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case Asc, Desc:
		return d, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

func (f SortField) value(v models.Violation) string {
	switch f {
	case SortByTimestamp:
		return v.Timestamp
	case SortByType:
		return v.Type
	case SortByDroneID:
		return v.DroneID
	case SortByLocation:
		return v.Location
	default:
		return v.Date
	}
}

// Sort возвращает новый слайс, упорядоченный лексически по значению поля.
// Порядок равных элементов не гарантируется.
func Sort(violations []models.Violation, field SortField, direction SortDirection) []models.Violation {
	sorted := slices.Clone(violations)
	slices.SortFunc(sorted, func(a, b models.Violation) int {
		c := strings.Compare(field.value(a), field.value(b))
		if direction == Desc {
			return -c
		}
		return c
	})
	return sorted
}

// SortState - текущая сортировка таблицы
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortState - по дате, новые сверху
func DefaultSortState() SortState {
	return SortState{Field: SortByDate, Direction: Desc}
}

// Toggle: повторный выбор колонки меняет направление, новая колонка сортируется по возрастанию
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

func (s SortState) Apply(violations []models.Violation) []models.Violation {
	return Sort(violations, s.Field, s.Direction)
}
