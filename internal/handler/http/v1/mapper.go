package v1

import "github.com/shenikar/drone_analytics_dashboard/internal/models"

// QueryToFilters преобразует параметры запроса в доменные фильтры
func QueryToFilters(q FiltersQuery) models.Filters {
	return models.Filters{
		DroneID:       q.DroneID,
		Date:          q.Date,
		ViolationType: q.ViolationType,
	}
}

// ModelToViolationResponse преобразует доменную модель в DTO для ответа
func ModelToViolationResponse(model models.Violation) ViolationResponse {
	return ViolationResponse{
		ViolationID: model.ViolationID,
		Type:        model.Type,
		Timestamp:   model.Timestamp,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		ImageURL:    model.ImageURL,
		DroneID:     model.DroneID,
		Date:        model.Date,
		Location:    model.Location,
	}
}

// ModelsToViolationResponses преобразует слайс моделей в слайс DTO; nil превращается в пустой список
func ModelsToViolationResponses(models []models.Violation) []ViolationResponse {
	responses := make([]ViolationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToViolationResponse(model)
	}
	return responses
}

func ModelToStatsResponse(stats *models.DashboardStats) *DashboardStatsResponse {
	byType := stats.ViolationsByType
	if byType == nil {
		byType = map[string]int{}
	}
	return &DashboardStatsResponse{
		TotalViolations:  stats.TotalViolations,
		ViolationsByType: byType,
		Drones:           nonNil(stats.Drones),
		Locations:        nonNil(stats.Locations),
		RecentViolations: ModelsToViolationResponses(stats.RecentViolations),
	}
}

func ModelToUploadResponse(result *models.UploadResult) *UploadResponse {
	return &UploadResponse{
		Message:         result.Message,
		ReportID:        result.ReportID,
		DroneID:         result.DroneID,
		Date:            result.Date,
		Location:        result.Location,
		ViolationsCount: result.ViolationsCount,
	}
}

func ModelsToReportResponses(reports []*models.DroneReport) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, report := range reports {
		violations := make([]ReportViolationResponse, len(report.Violations))
		for j, v := range report.Violations {
			violations[j] = ReportViolationResponse{
				ViolationID: v.ViolationID,
				Type:        v.Type,
				Timestamp:   v.Timestamp,
				Latitude:    v.Latitude,
				Longitude:   v.Longitude,
				ImageURL:    v.ImageURL,
			}
		}
		responses[i] = ReportResponse{
			ID:         report.ID,
			DroneID:    report.DroneID,
			Date:       report.Date,
			Location:   report.Location,
			CreatedAt:  report.CreatedAt,
			Violations: violations,
		}
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
