package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// ScheduleService validates console input and delegates to the schedules
// collection.
type ScheduleService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(collection *CollectionService, validate *validator.Validate) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleService{collection: collection, validator: validate}
}

// List returns all schedule slots; the boolean reports a cache hit.
func (s *ScheduleService) List(ctx context.Context) ([]models.Schedule, bool, error) {
	schedules := []models.Schedule{}
	cached, err := s.collection.List(ctx, &schedules)
	if err != nil {
		return nil, false, err
	}
	return schedules, cached, nil
}

// Get returns one schedule slot by id.
func (s *ScheduleService) Get(ctx context.Context, id int64) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.collection.Get(ctx, id, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create validates the form and dispatches the create upstream.
func (s *ScheduleService) Create(ctx context.Context, form dto.ScheduleForm) (*models.Schedule, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var schedule models.Schedule
	if err := s.collection.Create(ctx, payload, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Update validates the form and dispatches the update upstream.
func (s *ScheduleService) Update(ctx context.Context, id int64, form dto.ScheduleForm) (*models.Schedule, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var schedule models.Schedule
	if err := s.collection.Update(ctx, id, payload, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Delete removes one schedule slot.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached schedule list.
func (s *ScheduleService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *ScheduleService) payload(form dto.ScheduleForm) (dto.SchedulePayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.SchedulePayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.SchedulePayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule form")
	}
	return payload, nil
}
