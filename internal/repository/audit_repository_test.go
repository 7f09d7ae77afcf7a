package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
)

func newAuditRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAuditRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_log")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	objectID := int64(7)
	entry := &models.AuditEntry{
		Action:   models.AuditActionUpdate,
		Entity:   "students",
		ObjectID: &objectID,
		Payload:  []byte(`{"full_name":"John"}`),
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryRecent(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	rows := sqlmock.NewRows([]string{"id", "action", "entity", "object_id", "payload", "created_at"}).
		AddRow("audit-1", "create", "students", nil, []byte(`{"full_name":"John"}`), time.Now()).
		AddRow("audit-2", "delete", "courses", int64(3), nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, action, entity, object_id, payload, created_at")).
		WithArgs(50).
		WillReturnRows(rows)

	entries, err := repo.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "students", entries[0].Entity)
	require.NoError(t, mock.ExpectationsWereMet())
}
