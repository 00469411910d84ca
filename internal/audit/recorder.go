package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
)

type auditStore interface {
	Insert(ctx context.Context, log *models.AuditLog) error
}

// Recorder writes action log entries best-effort: a failed write is
// logged and never propagated to the calling operation.
type Recorder struct {
	store  auditStore
	logger *zap.Logger
}

// NewRecorder constructs a Recorder.
func NewRecorder(store auditStore, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, logger: logger}
}

// Record appends one entry to the action log.
func (r *Recorder) Record(ctx context.Context, username, action string) {
	if r == nil || r.store == nil {
		return
	}
	entry := &models.AuditLog{Username: username, Action: action}
	if err := r.store.Insert(ctx, entry); err != nil {
		r.logger.Warn("failed to record audit log",
			zap.String("username", username),
			zap.String("action", action),
			zap.Error(err))
	}
}
