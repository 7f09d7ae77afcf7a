package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// ExamService validates console input and delegates to the exams
// collection.
type ExamService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewExamService constructs an ExamService instance.
func NewExamService(collection *CollectionService, validate *validator.Validate) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	return &ExamService{collection: collection, validator: validate}
}

// List returns all exams; the boolean reports a cache hit.
func (s *ExamService) List(ctx context.Context) ([]models.Exam, bool, error) {
	exams := []models.Exam{}
	cached, err := s.collection.List(ctx, &exams)
	if err != nil {
		return nil, false, err
	}
	return exams, cached, nil
}

// Get returns one exam by id.
func (s *ExamService) Get(ctx context.Context, id int64) (*models.Exam, error) {
	var exam models.Exam
	if err := s.collection.Get(ctx, id, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create validates the form and dispatches the create upstream.
func (s *ExamService) Create(ctx context.Context, form dto.ExamForm) (*models.Exam, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var exam models.Exam
	if err := s.collection.Create(ctx, payload, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Update validates the form and dispatches the update upstream.
func (s *ExamService) Update(ctx context.Context, id int64, form dto.ExamForm) (*models.Exam, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var exam models.Exam
	if err := s.collection.Update(ctx, id, payload, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Delete removes one exam.
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached exam list.
func (s *ExamService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *ExamService) payload(form dto.ExamForm) (dto.ExamPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.ExamPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.ExamPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam form")
	}
	return payload, nil
}
