package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
	"github.com/campus-hq/uni-admin-gateway/pkg/export"
)

type reportClient interface {
	TopStudents(ctx context.Context) ([]models.TopStudent, error)
	Debtors(ctx context.Context) ([]models.Debtor, error)
	StudentsAboveAverage(ctx context.Context) ([]models.AboveAverageStudent, error)
}

const reportKeyPrefix = "uni:report:"

// Report names accepted by the console and the export endpoint.
const (
	ReportTopStudents  = "top-students"
	ReportDebtors      = "debtors"
	ReportAboveAverage = "above-average"
)

// ReportService serves the three analytics reports, each read-only and
// cached under its own key.
type ReportService struct {
	upstream   reportClient
	cache      *CacheService
	reportTTL  time.Duration
	debtorsTTL time.Duration
}

// NewReportService constructs a ReportService instance.
func NewReportService(upstream reportClient, cache *CacheService, reportTTL, debtorsTTL time.Duration) *ReportService {
	return &ReportService{upstream: upstream, cache: cache, reportTTL: reportTTL, debtorsTTL: debtorsTTL}
}

// TopStudents returns the top-5 GPA report; the boolean reports a cache hit.
func (s *ReportService) TopStudents(ctx context.Context) ([]models.TopStudent, bool, error) {
	key := reportKeyPrefix + ReportTopStudents
	rows := []models.TopStudent{}
	if hit, err := s.cache.Get(ctx, key, &rows); err == nil && hit {
		return rows, true, nil
	}
	rows, err := s.upstream.TopStudents(ctx)
	if err != nil {
		return nil, false, err
	}
	_ = s.cache.Set(ctx, key, rows, s.reportTTL)
	return rows, false, nil
}

// Debtors returns the payment debtors report; the boolean reports a cache hit.
func (s *ReportService) Debtors(ctx context.Context) ([]models.Debtor, bool, error) {
	key := reportKeyPrefix + ReportDebtors
	rows := []models.Debtor{}
	if hit, err := s.cache.Get(ctx, key, &rows); err == nil && hit {
		return rows, true, nil
	}
	rows, err := s.upstream.Debtors(ctx)
	if err != nil {
		return nil, false, err
	}
	_ = s.cache.Set(ctx, key, rows, s.debtorsTTL)
	return rows, false, nil
}

// StudentsAboveAverage returns the above-average report; the boolean
// reports a cache hit.
func (s *ReportService) StudentsAboveAverage(ctx context.Context) ([]models.AboveAverageStudent, bool, error) {
	key := reportKeyPrefix + ReportAboveAverage
	rows := []models.AboveAverageStudent{}
	if hit, err := s.cache.Get(ctx, key, &rows); err == nil && hit {
		return rows, true, nil
	}
	rows, err := s.upstream.StudentsAboveAverage(ctx)
	if err != nil {
		return nil, false, err
	}
	_ = s.cache.Set(ctx, key, rows, s.reportTTL)
	return rows, false, nil
}

// reportWarmer adapts one report fetch into the warm queue alongside the
// collection lists.
type reportWarmer struct {
	tag   string
	fetch func(ctx context.Context) error
}

func (w reportWarmer) Tag() string                    { return w.tag }
func (w reportWarmer) Warm(ctx context.Context) error { return w.fetch(ctx) }

// Warmers returns one Warmer per report so report snapshots can be
// scheduled for warm-up.
func (s *ReportService) Warmers() []Warmer {
	return []Warmer{
		reportWarmer{tag: "report:" + ReportTopStudents, fetch: func(ctx context.Context) error {
			_, _, err := s.TopStudents(ctx)
			return err
		}},
		reportWarmer{tag: "report:" + ReportDebtors, fetch: func(ctx context.Context) error {
			_, _, err := s.Debtors(ctx)
			return err
		}},
		reportWarmer{tag: "report:" + ReportAboveAverage, fetch: func(ctx context.Context) error {
			_, _, err := s.StudentsAboveAverage(ctx)
			return err
		}},
	}
}

// Dataset materializes one report as a tabular dataset for export.
func (s *ReportService) Dataset(ctx context.Context, name string) (export.Dataset, error) {
	switch name {
	case ReportTopStudents:
		rows, _, err := s.TopStudents(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{
			Title:   "Top 5 Students by GPA",
			Headers: []string{"Rank", "Full Name", "Email", "GPA"},
		}
		for i, row := range rows {
			rank := i + 1
			if row.RankPosition != nil {
				rank = *row.RankPosition
			}
			data.Rows = append(data.Rows, map[string]string{
				"Rank":      strconv.Itoa(rank),
				"Full Name": row.FullName,
				"Email":     row.Email,
				"GPA":       row.GPA,
			})
		}
		return data, nil

	case ReportDebtors:
		rows, _, err := s.Debtors(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{
			Title:   "Students with Outstanding Payments",
			Headers: []string{"Full Name", "Email", "Debt"},
		}
		for _, row := range rows {
			data.Rows = append(data.Rows, map[string]string{
				"Full Name": row.FullName,
				"Email":     row.Email,
				"Debt":      row.Debt.String(),
			})
		}
		return data, nil

	case ReportAboveAverage:
		rows, _, err := s.StudentsAboveAverage(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{
			Title:   "Students Above Course Average",
			Headers: []string{"Full Name", "Email", "GPA", "Course Average"},
		}
		for _, row := range rows {
			data.Rows = append(data.Rows, map[string]string{
				"Full Name":      row.FullName,
				"Email":          row.Email,
				"GPA":            row.GPA,
				"Course Average": strconv.FormatFloat(row.CourseAvgGrade, 'f', 2, 64),
			})
		}
		return data, nil
	}
	return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown report %q", name))
}
