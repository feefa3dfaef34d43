package billing

import (
	"context"
	"fmt"
)

// PatientChecker reports whether a patient id exists. The patient repository
// satisfies this through an adapter; the indirection keeps this package free
// of a patient import.
type PatientChecker interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientChecker
}

func NewService(repo Repository, patients PatientChecker) *Service {
	return &Service{repo: repo, patients: patients}
}

// Bill records a treatment against an existing patient. The existence check
// holds only at billing time; deleting the patient later leaves the
// treatment in place.
func (s *Service) Bill(ctx context.Context, t *Treatment) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Cost < 0 {
		return fmt.Errorf("cost must not be negative")
	}
	if t.BilledTo == 0 {
		return fmt.Errorf("billed_to is required")
	}
	ok, err := s.patients.PatientExists(ctx, t.BilledTo)
	if err != nil {
		return fmt.Errorf("check patient %d: %w", t.BilledTo, err)
	}
	if !ok {
		return fmt.Errorf("patient %d does not exist", t.BilledTo)
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) GetTreatment(ctx context.Context, id int64) (*Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListTreatments(ctx context.Context) ([]*Treatment, error) {
	return s.repo.List(ctx)
}

func (s *Service) SearchTreatmentsByName(ctx context.Context, name string) ([]*Treatment, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) ListTreatmentsForPatient(ctx context.Context, patientID int64) ([]*Treatment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// TotalForPatient sums the cost of every treatment billed to the patient.
func (s *Service) TotalForPatient(ctx context.Context, patientID int64) (float64, error) {
	ts, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range ts {
		total += t.Cost
	}
	return total, nil
}
