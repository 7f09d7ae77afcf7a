package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

const importErrorLimit = 10

type studentCreator interface {
	Create(ctx context.Context, form dto.StudentForm) error
}

// studentServiceCreator adapts StudentService to the narrow creator surface.
type studentServiceCreator struct {
	students *StudentService
}

func (a studentServiceCreator) Create(ctx context.Context, form dto.StudentForm) error {
	_, err := a.students.Create(ctx, form)
	return err
}

// ImportService loads students in bulk from a CSV document. Rows are
// dispatched one at a time; a bad row is counted and skipped, it never
// aborts the rest of the file.
type ImportService struct {
	students studentCreator
}

// NewImportService constructs an ImportService instance.
func NewImportService(students *StudentService) *ImportService {
	return &ImportService{students: studentServiceCreator{students: students}}
}

// ImportStudents reads CSV content with a full_name,email,status,gpa
// header and creates one student per row. The summary keeps at most the
// first ten row errors.
func (s *ImportService) ImportStudents(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "csv file is empty or unreadable")
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"full_name", "email", "status", "gpa"} {
		if _, ok := columns[required]; !ok {
			return nil, appErrors.Wrap(fmt.Errorf("missing column %q", required), appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "csv header is incomplete")
		}
	}

	summary := &dto.ImportSummary{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			summary.TotalRows++
			s.addError(summary, line, err)
			continue
		}

		summary.TotalRows++
		form := dto.StudentForm{
			FullName: field(record, columns["full_name"]),
			Email:    field(record, columns["email"]),
			Status:   field(record, columns["status"]),
			GPA:      field(record, columns["gpa"]),
		}
		if err := s.students.Create(ctx, form); err != nil {
			s.addError(summary, line, err)
			continue
		}
		summary.Created++
	}

	return summary, nil
}

func (s *ImportService) addError(summary *dto.ImportSummary, line int, err error) {
	summary.TotalErrors++
	if len(summary.Errors) < importErrorLimit {
		summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
