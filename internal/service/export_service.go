package service

import (
	"context"
	"fmt"

	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
	"github.com/campus-hq/uni-admin-gateway/pkg/export"
)

// ExportService renders reports into downloadable documents.
type ExportService struct {
	reports *ReportService
}

// ExportResult bundles a rendered document with its delivery metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// NewExportService constructs an ExportService instance.
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

// Export fetches the named report and renders it in the requested format.
// An empty format defaults to CSV.
func (s *ExportService) Export(ctx context.Context, name, format string) (*ExportResult, error) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported export format")
	}

	data, err := s.reports.Dataset(ctx, name)
	if err != nil {
		return nil, err
	}

	body, err := exporter.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("%s.%s", name, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}
