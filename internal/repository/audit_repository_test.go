package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestAuditRepositoryInsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.AuditLog{Username: "student01", Action: models.AuditActionEnroll}
	err := repo.Insert(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID, "id assigned on insert")
	assert.False(t, entry.CreatedAt.IsZero(), "timestamp assigned on insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListRecent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "action", "created_at"}).
		AddRow("2", "admin", models.AuditActionUserCreate, now).
		AddRow("1", "admin", models.AuditActionLogin, now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, action, created_at FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ?")).
		WithArgs(5).
		WillReturnRows(rows)

	logs, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUserCreate, logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListRecentDefaultLimit(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "action", "created_at"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, action, created_at FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ?")).
		WithArgs(20).
		WillReturnRows(rows)

	_, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
