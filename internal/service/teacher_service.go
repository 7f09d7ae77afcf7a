package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// TeacherService validates console input and delegates to the teachers
// collection.
type TeacherService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewTeacherService constructs a TeacherService instance.
func NewTeacherService(collection *CollectionService, validate *validator.Validate) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{collection: collection, validator: validate}
}

// List returns all teachers; the boolean reports a cache hit.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, bool, error) {
	teachers := []models.Teacher{}
	cached, err := s.collection.List(ctx, &teachers)
	if err != nil {
		return nil, false, err
	}
	return teachers, cached, nil
}

// Get returns one teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.collection.Get(ctx, id, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create validates the form and dispatches the create upstream.
func (s *TeacherService) Create(ctx context.Context, form dto.TeacherForm) (*models.Teacher, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var teacher models.Teacher
	if err := s.collection.Create(ctx, payload, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Update validates the form and dispatches the update upstream.
func (s *TeacherService) Update(ctx context.Context, id int64, form dto.TeacherForm) (*models.Teacher, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var teacher models.Teacher
	if err := s.collection.Update(ctx, id, payload, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Delete removes one teacher.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached teacher list.
func (s *TeacherService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *TeacherService) payload(form dto.TeacherForm) (dto.TeacherPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.TeacherPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.TeacherPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher form")
	}
	return payload, nil
}
