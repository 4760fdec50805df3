package dashboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/drone_analytics_dashboard/internal/dashboard/mocks"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/pkg/client"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboard(t *testing.T) (*Dashboard, *mocks.MockDataSource) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return New(source, logger), source
}

func testStats() *models.DashboardStats {
	return &models.DashboardStats{
		TotalViolations:  10,
		ViolationsByType: map[string]int{"Fire Detected": 4, "No PPE Kit": 6},
		Drones:           []string{"drone-alpha"},
		Locations:        []string{"Zone Alpha"},
	}
}

func TestNew_InitialState(t *testing.T) {
	d, _ := newTestDashboard(t)

	assert.Equal(t, DefaultSortState(), d.SortState())
	assert.Equal(t, StatusIdle, d.Status().Kind)
	assert.True(t, d.Filters().IsEmpty())
	assert.Empty(t, d.Violations())
}

func TestRefresh_ReplacesWorkingSet(t *testing.T) {
	// Подготовка
	d, source := newTestDashboard(t)
	ctx := context.Background()
	violations := sampleViolations()

	// Ожидания
	source.EXPECT().Violations(ctx, models.Filters{}).Return(violations, nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)

	// Действие
	err := d.Refresh(ctx)

	// Проверки
	require.NoError(t, err)
	got := d.Violations()
	require.Len(t, got, 3)
	// По умолчанию сортировка по дате, новые сверху
	assert.Equal(t, "2025-07-11", got[0].Date)
	assert.Equal(t, 10, d.Stats().TotalViolations)
}

func TestSetFilters_TriggersRefreshWithFilters(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()
	filters := models.Filters{DroneID: "drone-alpha"}

	source.EXPECT().Violations(ctx, filters).Return([]models.Violation{{ViolationID: "v-2", DroneID: "drone-alpha"}}, nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)

	require.NoError(t, d.SetFilters(ctx, filters))
	assert.Equal(t, filters, d.Filters())
	assert.Len(t, d.Violations(), 1)

	// Те же фильтры повторно - без запроса
	require.NoError(t, d.SetFilters(ctx, filters))
}

func TestClearFilters_ExactlyOneRefreshWithoutParams(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()
	filters := models.Filters{DroneID: "drone-alpha", Date: "2025-07-10", ViolationType: "Fire Detected"}

	gomock.InOrder(
		source.EXPECT().Violations(ctx, filters).Return(nil, nil),
		source.EXPECT().Stats(ctx).Return(testStats(), nil),
		source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1),
		source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1),
	)

	require.NoError(t, d.SetFilters(ctx, filters))
	require.NoError(t, d.ClearFilters(ctx))

	assert.Equal(t, models.Filters{}, d.Filters())
	assert.Empty(t, d.Filters().Query())
	assert.Len(t, d.Violations(), 3)
}

func TestClearFilters_AlreadyEmptyStillRefreshes(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().Violations(ctx, models.Filters{}).Return(nil, nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)

	require.NoError(t, d.ClearFilters(ctx))
	assert.NotNil(t, d.Violations())
}

func TestRefresh_ErrorKeepsPreviousData(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)
	require.NoError(t, d.Refresh(ctx))

	source.EXPECT().Violations(ctx, models.Filters{}).Return(nil, errors.New("connection refused")).Times(1)

	err := d.Refresh(ctx)

	require.Error(t, err)
	assert.Len(t, d.Violations(), 3)
	assert.Equal(t, Status{Kind: StatusError, Message: "Network error occurred"}, d.Status())
}

func TestRefresh_StatsErrorKeepsFetchedViolations(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1)
	source.EXPECT().Stats(ctx).Return(nil, errors.New("eof")).Times(1)

	err := d.Refresh(ctx)

	require.Error(t, err)
	assert.Len(t, d.Violations(), 3)
	assert.Equal(t, 0, d.Stats().TotalViolations)
	assert.Equal(t, StatusError, d.Status().Kind)
}

func TestSortBy_TogglesWithoutFetching(t *testing.T) {
	d, _ := newTestDashboard(t)

	assert.Equal(t, SortState{Field: SortByDate, Direction: Asc}, d.SortBy(SortByDate))
	assert.Equal(t, SortState{Field: SortByType, Direction: Asc}, d.SortBy(SortByType))
	assert.Equal(t, SortState{Field: SortByType, Direction: Desc}, d.SortBy(SortByType))
}

func TestUpload_NonJSONNeverCallsSource(t *testing.T) {
	d, source := newTestDashboard(t)

	source.EXPECT().UploadReport(gomock.Any(), gomock.Any()).Times(0)

	result, err := d.Upload(context.Background(), "/tmp/report.csv")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, client.ErrInvalidFileType)
	assert.Equal(t, Status{Kind: StatusError, Message: "Please upload a JSON file"}, d.Status())
}

func TestUpload_SuccessRefreshes(t *testing.T) {
	// Подготовка
	d, source := newTestDashboard(t)
	ctx := context.Background()
	result := &models.UploadResult{DroneID: "drone-alpha", Date: "2025-07-10", ViolationsCount: 3}

	// Ожидания
	source.EXPECT().UploadReport(ctx, "reports/drone-zone-alpha.json").Return(result, nil).Times(1)
	source.EXPECT().FilterOptions(ctx).Return(&models.FilterOptions{Drones: []string{"drone-alpha"}}, nil).Times(1)
	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)

	// Действие
	got, err := d.Upload(ctx, "reports/drone-zone-alpha.json")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, result, got)
	assert.Equal(t, Status{Kind: StatusSuccess, Message: "File uploaded successfully!"}, d.Status())
	assert.Equal(t, []string{"drone-alpha"}, d.Options().Drones)
	assert.Len(t, d.Violations(), 3)
}

func TestUpload_FollowUpRefreshFailureKeepsSuccess(t *testing.T) {
	// Подготовка
	d, source := newTestDashboard(t)
	ctx := context.Background()
	result := &models.UploadResult{DroneID: "drone-alpha", Date: "2025-07-10", ViolationsCount: 3}

	// Ожидания
	source.EXPECT().UploadReport(ctx, "report.json").Return(result, nil).Times(1)
	source.EXPECT().FilterOptions(ctx).Return(&models.FilterOptions{Drones: []string{"drone-alpha"}}, nil).Times(1)
	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1)
	source.EXPECT().Stats(ctx).Return(nil, errors.New("eof")).Times(1)

	// Действие
	got, err := d.Upload(ctx, "report.json")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, result, got)
	assert.Equal(t, Status{Kind: StatusSuccess, Message: "File uploaded successfully!"}, d.Status())
	assert.Len(t, d.Violations(), 3)
}

func TestUpload_OptionsFailureStillRefreshes(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().UploadReport(ctx, "report.json").Return(&models.UploadResult{DroneID: "drone-alpha"}, nil).Times(1)
	source.EXPECT().FilterOptions(ctx).Return(nil, errors.New("connection reset")).Times(1)
	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil).Times(1)
	source.EXPECT().Stats(ctx).Return(testStats(), nil).Times(1)

	_, err := d.Upload(ctx, "report.json")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, d.Status().Kind)
	assert.Equal(t, 10, d.Stats().TotalViolations)
}

func TestUpload_ErrorMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server detail shown verbatim",
			err:  &client.APIError{StatusCode: 400, Detail: "Missing required field: drone_id"},
			want: "Missing required field: drone_id",
		},
		{
			name: "server error without detail",
			err:  &client.APIError{StatusCode: 500},
			want: "Upload failed",
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp: connection refused"),
			want: "Network error occurred",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, source := newTestDashboard(t)
			source.EXPECT().UploadReport(gomock.Any(), "report.json").Return(nil, tc.err).Times(1)

			_, err := d.Upload(context.Background(), "report.json")

			require.Error(t, err)
			assert.Equal(t, Status{Kind: StatusError, Message: tc.want}, d.Status())
		})
	}
}

func TestReset_Success(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().ResetDatabase(ctx).Return(nil).Times(1)
	source.EXPECT().FilterOptions(ctx).Return(&models.FilterOptions{}, nil).Times(1)
	source.EXPECT().Violations(ctx, models.Filters{}).Return([]models.Violation{}, nil).Times(1)
	source.EXPECT().Stats(ctx).Return(&models.DashboardStats{}, nil).Times(1)

	require.NoError(t, d.Reset(ctx))
	assert.Equal(t, StatusSuccess, d.Status().Kind)
	assert.Empty(t, d.Violations())
}

func TestReset_FollowUpRefreshFailureKeepsSuccess(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()

	source.EXPECT().ResetDatabase(ctx).Return(nil).Times(1)
	source.EXPECT().FilterOptions(ctx).Return(&models.FilterOptions{}, nil).Times(1)
	source.EXPECT().Violations(ctx, models.Filters{}).Return(nil, errors.New("connection refused")).Times(1)

	require.NoError(t, d.Reset(ctx))
	assert.Equal(t, Status{Kind: StatusSuccess, Message: "Database reset successfully"}, d.Status())
}

func TestReset_Unauthorized(t *testing.T) {
	d, source := newTestDashboard(t)

	source.EXPECT().ResetDatabase(gomock.Any()).Return(&client.APIError{StatusCode: 401, Detail: "Invalid API key"}).Times(1)

	err := d.Reset(context.Background())

	require.Error(t, err)
	assert.Equal(t, Status{Kind: StatusError, Message: "Invalid API key"}, d.Status())
}
