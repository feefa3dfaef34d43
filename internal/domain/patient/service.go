package patient

import (
	"context"
	"fmt"
)

// DoctorChecker reports whether a doctor id exists. The staff repository
// satisfies this; the indirection keeps this package free of a staff import.
type DoctorChecker interface {
	DoctorExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	doctors DoctorChecker
}

func NewService(repo Repository, doctors DoctorChecker) *Service {
	return &Service{repo: repo, doctors: doctors}
}

// CreatePatient validates that the treating doctor exists before the record
// is constructed. A patient without a treating doctor is meaningless here.
func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.TreatedBy == 0 {
		return fmt.Errorf("treated_by is required")
	}
	ok, err := s.doctors.DoctorExists(ctx, p.TreatedBy)
	if err != nil {
		return fmt.Errorf("check doctor %d: %w", p.TreatedBy, err)
	}
	if !ok {
		return fmt.Errorf("doctor %d does not exist", p.TreatedBy)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) SearchPatientsByName(ctx context.Context, name string) ([]*Patient, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) ListPatientsByDoctor(ctx context.Context, doctorID int64) ([]*Patient, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ListAdmittedPatients returns only patients currently occupying a room,
// the candidate set for a discharge.
func (s *Service) ListAdmittedPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.ListAdmitted(ctx)
}
