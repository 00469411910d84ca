package repository

import (
	"context"

	"github.com/noah-isme/campus-portal/internal/models"
)

// SalaryRepository is the salary ledger keyed by username. It ships
// empty; payroll feeds it from outside the portal.
type SalaryRepository struct {
	slips map[string][]models.SalarySlip
}

// NewSalaryRepository creates an empty ledger.
func NewSalaryRepository() *SalaryRepository {
	return &SalaryRepository{slips: make(map[string][]models.SalarySlip)}
}

// ListByUsername returns the slips recorded for a teacher.
func (r *SalaryRepository) ListByUsername(ctx context.Context, username string) ([]models.SalarySlip, error) {
	return append([]models.SalarySlip(nil), r.slips[username]...), nil
}

// Add appends a slip to the teacher's ledger entry.
func (r *SalaryRepository) Add(ctx context.Context, username string, slip models.SalarySlip) error {
	r.slips[username] = append(r.slips[username], slip)
	return nil
}
