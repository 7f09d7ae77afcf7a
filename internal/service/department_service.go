package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// DepartmentService validates console input and delegates to the
// departments collection.
type DepartmentService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewDepartmentService constructs a DepartmentService instance.
func NewDepartmentService(collection *CollectionService, validate *validator.Validate) *DepartmentService {
	if validate == nil {
		validate = validator.New()
	}
	return &DepartmentService{collection: collection, validator: validate}
}

// List returns all departments; the boolean reports a cache hit.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, bool, error) {
	departments := []models.Department{}
	cached, err := s.collection.List(ctx, &departments)
	if err != nil {
		return nil, false, err
	}
	return departments, cached, nil
}

// Get returns one department by id.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	if err := s.collection.Get(ctx, id, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// Create validates the form and dispatches the create upstream.
func (s *DepartmentService) Create(ctx context.Context, form dto.DepartmentForm) (*models.Department, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var department models.Department
	if err := s.collection.Create(ctx, payload, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// Update validates the form and dispatches the update upstream.
func (s *DepartmentService) Update(ctx context.Context, id int64, form dto.DepartmentForm) (*models.Department, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var department models.Department
	if err := s.collection.Update(ctx, id, payload, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// Delete removes one department.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached department list.
func (s *DepartmentService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *DepartmentService) payload(form dto.DepartmentForm) (dto.DepartmentPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.DepartmentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.DepartmentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department form")
	}
	return payload, nil
}
