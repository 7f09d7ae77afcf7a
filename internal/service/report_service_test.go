package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type fakeReportClient struct {
	top     []models.TopStudent
	debtors []models.Debtor
	above   []models.AboveAverageStudent
	calls   int
}

func (f *fakeReportClient) TopStudents(ctx context.Context) ([]models.TopStudent, error) {
	f.calls++
	return f.top, nil
}

func (f *fakeReportClient) Debtors(ctx context.Context) ([]models.Debtor, error) {
	f.calls++
	return f.debtors, nil
}

func (f *fakeReportClient) StudentsAboveAverage(ctx context.Context) ([]models.AboveAverageStudent, error) {
	f.calls++
	return f.above, nil
}

func TestReportTopStudentsCaches(t *testing.T) {
	upstream := &fakeReportClient{top: []models.TopStudent{{ID: 1, FullName: "Alice", GPA: "3.90"}}}
	svc := NewReportService(upstream, newTestCacheService(true), time.Minute, time.Minute)

	rows, cached, err := svc.TopStudents(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, rows, 1)

	rows, cached, err = svc.TopStudents(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "Alice", rows[0].FullName)
	assert.Equal(t, 1, upstream.calls)
}

func TestReportEmptyResultsTolerated(t *testing.T) {
	svc := NewReportService(&fakeReportClient{}, newTestCacheService(false), time.Minute, time.Minute)

	rows, _, err := svc.Debtors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)

	above, _, err := svc.StudentsAboveAverage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, above)
}

func TestReportDatasetDebtors(t *testing.T) {
	upstream := &fakeReportClient{debtors: []models.Debtor{
		{ID: 1, FullName: "Bob", Email: "bob@uni.edu", Debt: json.Number("120.50")},
	}}
	svc := NewReportService(upstream, newTestCacheService(false), time.Minute, time.Minute)

	data, err := svc.Dataset(context.Background(), ReportDebtors)
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Name", "Email", "Debt"}, data.Headers)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "120.50", data.Rows[0]["Debt"])
}

func TestReportDatasetTopStudentsRank(t *testing.T) {
	two := 2
	upstream := &fakeReportClient{top: []models.TopStudent{
		{FullName: "First", GPA: "4.00"},
		{FullName: "Second", GPA: "3.80", RankPosition: &two},
	}}
	svc := NewReportService(upstream, newTestCacheService(false), time.Minute, time.Minute)

	data, err := svc.Dataset(context.Background(), ReportTopStudents)
	require.NoError(t, err)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "1", data.Rows[0]["Rank"])
	assert.Equal(t, "2", data.Rows[1]["Rank"])
}

func TestReportDatasetAboveAverageFormatsAverage(t *testing.T) {
	upstream := &fakeReportClient{above: []models.AboveAverageStudent{
		{FullName: "Carol", GPA: "3.70", CourseAvgGrade: 3.456},
	}}
	svc := NewReportService(upstream, newTestCacheService(false), time.Minute, time.Minute)

	data, err := svc.Dataset(context.Background(), ReportAboveAverage)
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "3.46", data.Rows[0]["Course Average"])
}

func TestReportWarmersPopulateCache(t *testing.T) {
	upstream := &fakeReportClient{debtors: []models.Debtor{{ID: 1, FullName: "Bob"}}}
	svc := NewReportService(upstream, newTestCacheService(true), time.Minute, time.Minute)

	warmers := svc.Warmers()
	require.Len(t, warmers, 3)
	for _, w := range warmers {
		require.NoError(t, w.Warm(context.Background()))
	}
	require.Equal(t, 3, upstream.calls)

	_, cached, err := svc.Debtors(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 3, upstream.calls)
}

func TestReportDatasetUnknownName(t *testing.T) {
	svc := NewReportService(&fakeReportClient{}, newTestCacheService(false), time.Minute, time.Minute)

	_, err := svc.Dataset(context.Background(), "grades")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
