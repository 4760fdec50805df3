package models

// DashboardStats - агрегированная сводка по текущему набору нарушений.
// Пересчитывается сервисом на каждый запрос и заменяется клиентом целиком.
type DashboardStats struct {
	TotalViolations  int            `json:"total_violations"`
	ViolationsByType map[string]int `json:"violations_by_type"`
	Drones           []string       `json:"drones"`
	Locations        []string       `json:"locations"`
	RecentViolations []Violation    `json:"recent_violations"`
}

// FilterOptions - списки уникальных значений для выпадающих фильтров
type FilterOptions struct {
	Drones         []string `json:"drones"`
	Dates          []string `json:"dates"`
	ViolationTypes []string `json:"violation_types"`
}
