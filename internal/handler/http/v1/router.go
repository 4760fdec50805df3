package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API дашборда
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.root)

	// Загрузка отчетов дронов
	api.POST("/upload", h.uploadReport)

	// Данные дашборда
	api.GET("/dashboard/stats", h.getDashboardStats)
	violations := api.Group("/violations")
	{
		violations.GET("", h.listViolations)
		violations.GET("/types", h.listViolationTypes)
	}
	api.GET("/drones", h.listDrones)
	api.GET("/dates", h.listDates)
	api.GET("/reports", h.listReports)

	// Административные маршруты
	admin := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	admin.POST("/reset-database", h.resetDatabase)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
