package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
)

type auditRepository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// AuditService records the gateway's local trail of dispatched mutations.
// It is entirely optional: a nil service (no database configured) turns
// every call into a no-op, and a failed write never fails the mutation.
type AuditService struct {
	repo   auditRepository
	logger *zap.Logger
}

// NewAuditService constructs an AuditService instance.
func NewAuditService(repo auditRepository, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{repo: repo, logger: logger}
}

// Record persists one audit entry, logging instead of failing on error.
func (s *AuditService) Record(ctx context.Context, action, entity string, objectID *int64, payload any) {
	if s == nil || s.repo == nil {
		return
	}

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			s.logger.Warn("failed to encode audit payload", zap.String("entity", entity), zap.Error(err))
		} else {
			raw = data
		}
	}

	entry := &models.AuditEntry{
		Action:   action,
		Entity:   entity,
		ObjectID: objectID,
		Payload:  raw,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit entry", zap.String("entity", entity), zap.Error(err))
	}
}

// Recent returns the latest audit entries.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if s == nil || s.repo == nil {
		return []models.AuditEntry{}, nil
	}
	return s.repo.Recent(ctx, limit)
}
