package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/drone_analytics_dashboard/internal/config"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	violationService service.ViolationService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(violationService service.ViolationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		violationService: violationService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary API banner
// @Tags System
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "AI Analytics Dashboard API"})
}

// @Summary Upload a drone report
// @Description Upload a drone report JSON file. Only files with the .json extension are accepted.
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Drone report (.json)"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse "Invalid file or report content"
// @Failure 409 {object} ErrorResponse "Violation already stored"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /upload [post]
func (h *Handler) uploadReport(c *gin.Context) {
	log := h.logger.WithField("method", "uploadReport")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Upload without file")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "No file uploaded"})
		return
	}
	log = log.WithField("filename", fileHeader.Filename)

	if !models.IsJSONFileName(fileHeader.Filename) {
		log.Warn("Rejected upload with non-JSON extension")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Only JSON files are allowed"})
		return
	}

	if fileHeader.Size > h.cfg.UploadMaxBytes {
		log.WithField("size", fileHeader.Size).Warn("Upload exceeds size limit")
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Detail: fmt.Sprintf("File too large (limit %d bytes)", h.cfg.UploadMaxBytes)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.UploadMaxBytes))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to read uploaded file"})
		return
	}

	result, err := h.violationService.UploadReport(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		var reportErr *service.ReportError
		switch {
		case errors.As(err, &reportErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: reportErr.Detail})
		case errors.Is(err, models.ErrDuplicateViolation):
			log.WithError(err).Warn("Report contains already stored violation")
			c.JSON(http.StatusConflict, ErrorResponse{Detail: "Report contains a violation that was already uploaded"})
		default:
			log.WithError(err).Error("Failed to process report in service")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to process report"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToUploadResponse(result))
}

// @Summary Get dashboard statistics
// @Description Totals, counts by type, distinct drones and locations, most recent violations.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardStatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardStats")

	stats, err := h.violationService.GetDashboardStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary List violations
// @Description List violations matching all supplied non-empty filters.
// @Tags Dashboard
// @Produce json
// @Param drone_id query string false "Drone ID"
// @Param date query string false "Report date"
// @Param violation_type query string false "Violation type"
// @Success 200 {array} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /violations [get]
func (h *Handler) listViolations(c *gin.Context) {
	log := h.logger.WithField("method", "listViolations")

	var query FiltersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid filters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	violations, err := h.violationService.ListViolations(c.Request.Context(), QueryToFilters(query))
	if err != nil {
		log.WithError(err).Error("Failed to list violations from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToViolationResponses(violations))
}

// @Summary List distinct violation types
// @Tags Filters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /violations/types [get]
func (h *Handler) listViolationTypes(c *gin.Context) {
	h.respondWithList(c, "listViolationTypes", h.violationService.ListViolationTypes)
}

// @Summary List distinct drone IDs
// @Tags Filters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /drones [get]
func (h *Handler) listDrones(c *gin.Context) {
	h.respondWithList(c, "listDrones", h.violationService.ListDrones)
}

// @Summary List distinct report dates
// @Tags Filters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dates [get]
func (h *Handler) listDates(c *gin.Context) {
	h.respondWithList(c, "listDates", h.violationService.ListDates)
}

// @Summary List uploaded reports
// @Tags Reports
// @Produce json
// @Success 200 {array} ReportResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	reports, err := h.violationService.ListReports(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Reset violation database
// @Description Remove all stored reports and violations. Requires API key when keys are configured.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reset-database [post]
func (h *Handler) resetDatabase(c *gin.Context) {
	log := h.logger.WithField("method", "resetDatabase")

	if err := h.violationService.ResetDatabase(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to reset database in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to reset database"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Database reset successfully"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondWithList(c *gin.Context, method string, list func(ctx context.Context) ([]string, error)) {
	values, err := list(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", method).WithError(err).Error("Failed to list values from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, nonNil(values))
}
