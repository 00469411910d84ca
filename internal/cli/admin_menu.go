package cli

import (
	"context"
	"fmt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/service"
)

func (s *Session) adminMenu(ctx context.Context, user *models.User) error {
	for {
		fmt.Fprintf(s.out, "\nAdmin Menu - %s\n", user.FullName)
		fmt.Fprintln(s.out, "1. Create new student")
		fmt.Fprintln(s.out, "2. Create new teacher")
		fmt.Fprintln(s.out, "3. Manage enrollments")
		fmt.Fprintln(s.out, "4. View all users")
		fmt.Fprintln(s.out, "5. View system statistics")
		fmt.Fprintln(s.out, "6. View activity log")
		fmt.Fprintln(s.out, "7. Change password")
		fmt.Fprintln(s.out, "8. Logout")

		choice, err := s.prompt.Choice("Enter your choice: ", "1", "2", "3", "4", "5", "6", "7", "8")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.createUser(ctx, user, models.RoleStudent)
		case "2":
			s.createUser(ctx, user, models.RoleTeacher)
		case "3":
			s.manageRoster(ctx, user)
		case "4":
			s.viewAllUsers(ctx)
		case "5":
			s.viewStats(ctx)
		case "6":
			s.viewActivityLog(ctx)
		case "7":
			s.changePassword(ctx, user.Username)
		case "8":
			return nil
		}
	}
}

func (s *Session) createUser(ctx context.Context, actor *models.User, role models.Role) {
	username, err := s.prompt.Line("Enter username: ")
	if err != nil {
		return
	}
	name, err := s.prompt.Line("Enter full name: ")
	if err != nil {
		return
	}
	password, err := s.prompt.Line("Enter password: ")
	if err != nil {
		return
	}

	created, err := s.users.CreateUser(ctx, actor.Username, service.CreateUserRequest{
		Username: username,
		FullName: name,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "%s user %s created successfully.\n", created.Role, created.Username)
}

func (s *Session) manageRoster(ctx context.Context, actor *models.User) {
	courseID, err := s.prompt.Line("Enter course ID: ")
	if err != nil {
		return
	}
	action, err := s.prompt.Choice("Add or Remove user? (a/r): ", "a", "r")
	if err != nil {
		return
	}
	username, err := s.prompt.Line("Enter username: ")
	if err != nil {
		return
	}

	if action == "a" {
		if err := s.users.AddToRoster(ctx, actor.Username, courseID, username); err != nil {
			s.report(err)
			return
		}
		fmt.Fprintf(s.out, "User %s added to course %s.\n", username, courseID)
		return
	}

	if err := s.users.RemoveFromRoster(ctx, actor.Username, courseID, username); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "User %s removed from course %s.\n", username, courseID)
}

func (s *Session) viewAllUsers(ctx context.Context) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "All user data:")
	for _, u := range users {
		line := fmt.Sprintf("%s: role=%s name=%q", u.Username, u.Role, u.FullName)
		if u.Qualification != "" {
			line += fmt.Sprintf(" qualification=%q", u.Qualification)
		}
		fmt.Fprintln(s.out, line)
	}

	save, err := s.prompt.Choice("Export user list as CSV? (y/n): ", "y", "n")
	if err != nil || save == "n" {
		return
	}
	path, err := s.users.ExportUsersCSV(ctx)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "User list written to %s\n", path)
}

func (s *Session) viewStats(ctx context.Context) {
	stats, err := s.users.Stats(ctx)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "System statistics:")
	fmt.Fprintf(s.out, "Total users: %d\n", stats.TotalUsers)
	fmt.Fprintf(s.out, "Total students: %d\n", stats.TotalStudents)
	fmt.Fprintf(s.out, "Total teachers: %d\n", stats.TotalTeachers)
	fmt.Fprintf(s.out, "Total admins: %d\n", stats.TotalAdmins)
	fmt.Fprintf(s.out, "Total courses: %d\n", stats.TotalCourses)
}

func (s *Session) viewActivityLog(ctx context.Context) {
	logs, err := s.trail.ListRecent(ctx, 20)
	if err != nil {
		s.report(err)
		return
	}
	if len(logs) == 0 {
		fmt.Fprintln(s.out, "No activity recorded yet.")
		return
	}
	fmt.Fprintln(s.out, "Recent activity:")
	for _, entry := range logs {
		fmt.Fprintf(s.out, "%s - User: %s - Action: %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Username, entry.Action)
	}
}
