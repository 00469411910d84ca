package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-portal/internal/models"
)

// AuditRepository persists the append-only action log.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores an action log entry.
func (r *AuditRepository) Insert(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, username, action, created_at) VALUES (:id, :username, :action, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries, most recent first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `SELECT id, username, action, created_at FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ?`
	var logs []models.AuditLog
	if err := r.db.SelectContext(ctx, &logs, query, limit); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
