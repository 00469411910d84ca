package cli

import (
	"context"
	"fmt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/service"
)

func (s *Session) teacherMenu(ctx context.Context, user *models.User) error {
	for {
		fmt.Fprintf(s.out, "\nTeacher Menu - %s\n", user.FullName)
		fmt.Fprintln(s.out, "1. View salary slips")
		fmt.Fprintln(s.out, "2. Update personal information")
		fmt.Fprintln(s.out, "3. Change password")
		fmt.Fprintln(s.out, "4. Logout")

		choice, err := s.prompt.Choice("Enter your choice: ", "1", "2", "3", "4")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.viewSalarySlips(ctx, user)
		case "2":
			s.updateProfile(ctx, user)
		case "3":
			s.changePassword(ctx, user.Username)
		case "4":
			return nil
		}
	}
}

func (s *Session) viewSalarySlips(ctx context.Context, user *models.User) {
	slips, err := s.teachers.SalarySlips(ctx, user.Username)
	if err != nil {
		s.report(err)
		return
	}
	if len(slips) == 0 {
		fmt.Fprintln(s.out, "No salary slips found.")
		return
	}
	fmt.Fprintf(s.out, "Salary slips for %s:\n", user.FullName)
	for _, slip := range slips {
		fmt.Fprintf(s.out, "Month: %s, Amount: %.2f\n", slip.Month, slip.Amount)
	}
}

func (s *Session) updateProfile(ctx context.Context, user *models.User) {
	fmt.Fprintln(s.out, "Update your personal information:")
	name, err := s.prompt.Line(fmt.Sprintf("Name (%s): ", user.FullName))
	if err != nil {
		return
	}
	if name == "" {
		name = user.FullName
	}
	qualification, err := s.prompt.Line("Qualification (optional): ")
	if err != nil {
		return
	}
	if qualification == "" {
		qualification = user.Qualification
	}

	if err := s.teachers.UpdateProfile(ctx, user.Username, service.UpdateProfileRequest{FullName: name, Qualification: qualification}); err != nil {
		s.report(err)
		return
	}
	user.FullName = name
	user.Qualification = qualification
	fmt.Fprintln(s.out, "Information updated.")
}
