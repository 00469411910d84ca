package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/service"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type auditTrail interface {
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type actionRecorder interface {
	Record(ctx context.Context, username, action string)
}

// Session drives the login loop and dispatches to the role menus over
// the closed role variant.
type Session struct {
	prompt *Prompt
	out    io.Writer

	auth        *service.AuthService
	enrollments *service.EnrollmentService
	grades      *service.GradeService
	records     *service.RecordService
	users       *service.UserService
	teachers    *service.TeacherService
	trail       auditTrail
	audit       actionRecorder

	logger *zap.Logger
}

// Deps bundles the collaborators a Session needs.
type Deps struct {
	Prompt      *Prompt
	Out         io.Writer
	Auth        *service.AuthService
	Enrollments *service.EnrollmentService
	Grades      *service.GradeService
	Records     *service.RecordService
	Users       *service.UserService
	Teachers    *service.TeacherService
	Trail       auditTrail
	Audit       actionRecorder
	Logger      *zap.Logger
}

// NewSession constructs a Session.
func NewSession(deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		prompt:      deps.Prompt,
		out:         deps.Out,
		auth:        deps.Auth,
		enrollments: deps.Enrollments,
		grades:      deps.Grades,
		records:     deps.Records,
		users:       deps.Users,
		teachers:    deps.Teachers,
		trail:       deps.Trail,
		audit:       deps.Audit,
		logger:      logger,
	}
}

// Run executes the login loop until a user completes a session or the
// input stream ends.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Campus Portal (Student / Teacher / Admin)")

	for {
		user, err := s.login(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if user == nil {
			continue
		}

		if err := s.dispatch(ctx, user); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if s.audit != nil {
			s.audit.Record(ctx, user.Username, models.AuditActionLogout)
		}
		fmt.Fprintln(s.out, "Logged out. Goodbye.")
		return nil
	}
}

func (s *Session) login(ctx context.Context) (*models.User, error) {
	username, err := s.prompt.Line("Username: ")
	if err != nil {
		return nil, err
	}
	password, err := s.prompt.Line("Password: ")
	if err != nil {
		return nil, err
	}

	user, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		s.report(err)
		return nil, nil
	}
	return user, nil
}

func (s *Session) dispatch(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleStudent:
		return s.studentMenu(ctx, user)
	case models.RoleTeacher:
		return s.teacherMenu(ctx, user)
	case models.RoleAdmin:
		return s.adminMenu(ctx, user)
	default:
		fmt.Fprintln(s.out, "Invalid role assigned to user.")
		return nil
	}
}

// report prints a domain failure and lets the menu loop re-prompt.
func (s *Session) report(err error) {
	e := appErrors.FromError(err)
	if e.Code == appErrors.ErrInternal.Code {
		s.logger.Error("operation failed", zap.Error(err))
	}
	fmt.Fprintln(s.out, e.Message)
}

func (s *Session) changePassword(ctx context.Context, username string) {
	current, err := s.prompt.Line("Enter current password: ")
	if err != nil {
		return
	}
	next, err := s.prompt.Line("Enter new password: ")
	if err != nil {
		return
	}
	if err := s.auth.ChangePassword(ctx, username, service.ChangePasswordRequest{OldPassword: current, NewPassword: next}); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Password changed successfully.")
}
