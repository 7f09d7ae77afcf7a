package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// StudentService validates console input and delegates to the students
// collection.
type StudentService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(collection *CollectionService, validate *validator.Validate) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{collection: collection, validator: validate}
}

// List returns all students; the boolean reports a cache hit.
func (s *StudentService) List(ctx context.Context) ([]models.Student, bool, error) {
	students := []models.Student{}
	cached, err := s.collection.List(ctx, &students)
	if err != nil {
		return nil, false, err
	}
	return students, cached, nil
}

// Get returns one student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := s.collection.Get(ctx, id, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create validates the form and dispatches the create upstream.
func (s *StudentService) Create(ctx context.Context, form dto.StudentForm) (*models.Student, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var student models.Student
	if err := s.collection.Create(ctx, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Update validates the form and dispatches the update upstream.
func (s *StudentService) Update(ctx context.Context, id int64, form dto.StudentForm) (*models.Student, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var student models.Student
	if err := s.collection.Update(ctx, id, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Delete removes one student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached student list.
func (s *StudentService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *StudentService) payload(form dto.StudentForm) (dto.StudentPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.StudentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.StudentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student form")
	}
	return payload, nil
}
