package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// CourseService validates console input and delegates to the courses
// collection.
type CourseService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(collection *CollectionService, validate *validator.Validate) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{collection: collection, validator: validate}
}

// List returns all courses; the boolean reports a cache hit.
func (s *CourseService) List(ctx context.Context) ([]models.Course, bool, error) {
	courses := []models.Course{}
	cached, err := s.collection.List(ctx, &courses)
	if err != nil {
		return nil, false, err
	}
	return courses, cached, nil
}

// Get returns one course by id.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := s.collection.Get(ctx, id, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create validates the form and dispatches the create upstream.
func (s *CourseService) Create(ctx context.Context, form dto.CourseForm) (*models.Course, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var course models.Course
	if err := s.collection.Create(ctx, payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Update validates the form and dispatches the update upstream.
func (s *CourseService) Update(ctx context.Context, id int64, form dto.CourseForm) (*models.Course, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var course models.Course
	if err := s.collection.Update(ctx, id, payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Delete removes one course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached course list.
func (s *CourseService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *CourseService) payload(form dto.CourseForm) (dto.CoursePayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.CoursePayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.CoursePayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course form")
	}
	return payload, nil
}
