package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// EnrollmentService validates console input and delegates to the
// enrollments collection.
type EnrollmentService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewEnrollmentService constructs an EnrollmentService instance.
func NewEnrollmentService(collection *CollectionService, validate *validator.Validate) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	return &EnrollmentService{collection: collection, validator: validate}
}

// List returns all enrollments; the boolean reports a cache hit.
func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, bool, error) {
	enrollments := []models.Enrollment{}
	cached, err := s.collection.List(ctx, &enrollments)
	if err != nil {
		return nil, false, err
	}
	return enrollments, cached, nil
}

// Get returns one enrollment by id.
func (s *EnrollmentService) Get(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.collection.Get(ctx, id, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create validates the form and dispatches the create upstream.
func (s *EnrollmentService) Create(ctx context.Context, form dto.EnrollmentForm) (*models.Enrollment, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var enrollment models.Enrollment
	if err := s.collection.Create(ctx, payload, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Update validates the form and dispatches the update upstream.
func (s *EnrollmentService) Update(ctx context.Context, id int64, form dto.EnrollmentForm) (*models.Enrollment, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var enrollment models.Enrollment
	if err := s.collection.Update(ctx, id, payload, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Delete removes one enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached enrollment list.
func (s *EnrollmentService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *EnrollmentService) payload(form dto.EnrollmentForm) (dto.EnrollmentPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.EnrollmentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.EnrollmentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment form")
	}
	return payload, nil
}
