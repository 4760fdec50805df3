package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/drone_analytics_dashboard/internal/config"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/internal/service"
	"github.com/shenikar/drone_analytics_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T, apiKeys ...string) (*Handler, *mocks.MockViolationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockViolationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        apiKeys,
		AllowedOrigins: []string{"http://localhost:3000"},
		UploadMaxBytes: 1024,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	handler.RegisterRoutes(router.Group("/"))

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// makeUpload собирает multipart запрос с файлом в поле file
func makeUpload(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return makeRequest(router, http.MethodPost, "/upload", &body, map[string]string{"Content-Type": writer.FormDataContentType()})
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestRoot(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI Analytics Dashboard API")
}

func TestUploadReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	content := []byte(`{"drone_id": "drone-alpha"}`)
	reportID := uuid.New()

	mockService.EXPECT().
		UploadReport(gomock.Any(), "drone-zone-alpha.json", content).
		Return(&models.UploadResult{
			Message:         "Processed 3 violations from drone-alpha",
			ReportID:        reportID,
			DroneID:         "drone-alpha",
			Date:            "2025-07-10",
			Location:        "Zone Alpha",
			ViolationsCount: 3,
		}, nil).Times(1)

	w := makeUpload(t, router, "drone-zone-alpha.json", content)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "drone-alpha", resp.DroneID)
	assert.Equal(t, "2025-07-10", resp.Date)
	assert.Equal(t, 3, resp.ViolationsCount)
	assert.Equal(t, reportID, resp.ReportID)
}

func TestUploadReport_NonJSONExtension(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeUpload(t, router, "report.txt", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only JSON files are allowed", decodeDetail(t, w))
}

func TestUploadReport_MissingFile(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/upload", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decodeDetail(t, w))
}

func TestUploadReport_TooLarge(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeUpload(t, router, "big.json", bytes.Repeat([]byte("a"), 2048))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, decodeDetail(t, w), "File too large")
}

func TestUploadReport_ServiceErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "report error surfaced verbatim",
			err:        &service.ReportError{Detail: "Missing required field: drone_id"},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Missing required field: drone_id",
		},
		{
			name:       "duplicate violation",
			err:        fmt.Errorf("service: could not store report: %w", models.ErrDuplicateViolation),
			wantStatus: http.StatusConflict,
			wantDetail: "Report contains a violation that was already uploaded",
		},
		{
			name:       "internal failure",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "failed to process report",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			w := makeUpload(t, router, "report.json", []byte(`{}`))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestListViolations_WithFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []models.Violation{
		{ViolationID: "v-1", Type: "Fire Detected", DroneID: "drone-alpha", Date: "2025-07-10"},
	}

	mockService.EXPECT().
		ListViolations(gomock.Any(), models.Filters{DroneID: "drone-alpha", ViolationType: "Fire Detected"}).
		Return(expected, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/violations?drone_id=drone-alpha&violation_type=Fire+Detected", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ViolationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "v-1", resp[0].ViolationID)
}

func TestListViolations_NoFiltersReturnsEmptyArray(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListViolations(gomock.Any(), models.Filters{}).Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/violations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListViolations_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListViolations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/violations", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeDetail(t, w))
}

func TestGetDashboardStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	stats := &models.DashboardStats{
		TotalViolations:  10,
		ViolationsByType: map[string]int{"Fire Detected": 4, "No PPE Kit": 6},
		Drones:           []string{"drone-alpha"},
		RecentViolations: []models.Violation{{ViolationID: "v-10"}},
	}

	mockService.EXPECT().GetDashboardStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/dashboard/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DashboardStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.TotalViolations)
	assert.Equal(t, 6, resp.ViolationsByType["No PPE Kit"])
	assert.Equal(t, []string{}, resp.Locations)
	require.Len(t, resp.RecentViolations, 1)
}

func TestGetDashboardStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetDashboardStats(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/dashboard/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFilterOptionEndpoints(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListDrones(gomock.Any()).Return([]string{"drone-alpha", "drone-beta"}, nil).Times(1)
	mockService.EXPECT().ListDates(gomock.Any()).Return(nil, nil).Times(1)
	mockService.EXPECT().ListViolationTypes(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	drones := makeRequest(router, http.MethodGet, "/drones", nil)
	dates := makeRequest(router, http.MethodGet, "/dates", nil)
	types := makeRequest(router, http.MethodGet, "/violations/types", nil)

	assert.Equal(t, http.StatusOK, drones.Code)
	assert.JSONEq(t, `["drone-alpha","drone-beta"]`, drones.Body.String())
	assert.Equal(t, http.StatusOK, dates.Code)
	assert.JSONEq(t, `[]`, dates.Body.String())
	assert.Equal(t, http.StatusInternalServerError, types.Code)
}

func TestListReports_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().ListReports(gomock.Any()).Return([]*models.DroneReport{
		{
			ID:       reportID,
			DroneID:  "drone-alpha",
			Date:     "2025-07-10",
			Location: "Zone Alpha",
			Violations: []models.ReportViolation{
				{ViolationID: "v-1", Type: "Fire Detected"},
			},
		},
	}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/reports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, reportID, resp[0].ID)
	require.Len(t, resp[0].Violations, 1)
	assert.Equal(t, "v-1", resp[0].Violations[0].ViolationID)
}

func TestResetDatabase_WithoutConfiguredKeys(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResetDatabase(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/reset-database", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Database reset successfully")
}

func TestResetDatabase_RequiresKeyWhenConfigured(t *testing.T) {
	_, mockService, router := newTestHandler(t, "admin-key")

	mockService.EXPECT().ResetDatabase(gomock.Any()).Times(0)

	missing := makeRequest(router, http.MethodPost, "/reset-database", nil)
	invalid := makeRequest(router, http.MethodPost, "/reset-database", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, "API key required", decodeDetail(t, missing))
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Equal(t, "Invalid API key", decodeDetail(t, invalid))
}

func TestResetDatabase_BearerKey(t *testing.T) {
	_, mockService, router := newTestHandler(t, "admin-key")

	mockService.EXPECT().ResetDatabase(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/reset-database", nil, map[string]string{"Authorization": "Bearer admin-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetDatabase_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResetDatabase(gomock.Any()).Return(errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/reset-database", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to reset database", decodeDetail(t, w))
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListDrones(gomock.Any()).Return([]string{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/drones", nil, map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListDrones(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/drones", nil, map[string]string{"Origin": "http://evil.example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_NoOriginPassesThrough(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListDrones(gomock.Any()).Return([]string{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/drones", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodOptions, "/upload", nil, map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Api-Key")
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, http.MethodGet, "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadReport_PassesRequestContext(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UploadReport(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []byte) (*models.UploadResult, error) {
			assert.NotNil(t, ctx)
			return &models.UploadResult{DroneID: "drone-alpha", Date: "2025-07-10"}, nil
		}).Times(1)

	w := makeUpload(t, router, "report.json", []byte(`{}`))

	assert.Equal(t, http.StatusOK, w.Code)
}
