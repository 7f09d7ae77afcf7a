package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// PaymentService validates console input and delegates to the payments
// collection.
type PaymentService struct {
	collection *CollectionService
	validator  *validator.Validate
}

// NewPaymentService constructs a PaymentService instance.
func NewPaymentService(collection *CollectionService, validate *validator.Validate) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	return &PaymentService{collection: collection, validator: validate}
}

// List returns all payments; the boolean reports a cache hit.
func (s *PaymentService) List(ctx context.Context) ([]models.Payment, bool, error) {
	payments := []models.Payment{}
	cached, err := s.collection.List(ctx, &payments)
	if err != nil {
		return nil, false, err
	}
	return payments, cached, nil
}

// Get returns one payment by id.
func (s *PaymentService) Get(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	if err := s.collection.Get(ctx, id, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create validates the form and dispatches the create upstream.
func (s *PaymentService) Create(ctx context.Context, form dto.PaymentForm) (*models.Payment, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var payment models.Payment
	if err := s.collection.Create(ctx, payload, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update validates the form and dispatches the update upstream.
func (s *PaymentService) Update(ctx context.Context, id int64, form dto.PaymentForm) (*models.Payment, error) {
	payload, err := s.payload(form)
	if err != nil {
		return nil, err
	}
	var payment models.Payment
	if err := s.collection.Update(ctx, id, payload, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes one payment.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.collection.Delete(ctx, id)
}

// Warm refreshes the cached payment list.
func (s *PaymentService) Warm(ctx context.Context) error {
	return s.collection.Warm(ctx)
}

func (s *PaymentService) payload(form dto.PaymentForm) (dto.PaymentPayload, error) {
	if err := s.validator.Struct(form); err != nil {
		return dto.PaymentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment form")
	}
	payload, err := form.Payload()
	if err != nil {
		return dto.PaymentPayload{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment form")
	}
	return payload, nil
}
