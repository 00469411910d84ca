package models

import "time"

// AuditAction constants represent actions to be logged.
const (
	AuditActionLogin          = "LOGIN"
	AuditActionLogout         = "LOGOUT"
	AuditActionPasswordChange = "PASSWORD_CHANGE"
	AuditActionEnroll         = "ENROLL"
	AuditActionUnenroll       = "UNENROLL"
	AuditActionGradeEntry     = "GRADE_ENTRY"
	AuditActionUserCreate     = "USER_CREATE"
	AuditActionProfileUpdate  = "PROFILE_UPDATE"
	AuditActionSalaryView     = "SALARY_VIEW"
	AuditActionRosterEdit     = "ROSTER_EDIT"
)

// AuditLog represents one append-only action log entry.
type AuditLog struct {
	ID        string    `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Action    string    `db:"action" json:"action"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
