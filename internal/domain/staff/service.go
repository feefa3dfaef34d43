package staff

import (
	"context"
	"fmt"
)

type Service struct {
	doctors   DoctorRepository
	nurses    NurseRepository
	personnel PersonnelRepository
}

func NewService(doctors DoctorRepository, nurses NurseRepository, personnel PersonnelRepository) *Service {
	return &Service{doctors: doctors, nurses: nurses, personnel: personnel}
}

// -- Doctors --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Spec == "" {
		return fmt.Errorf("spec is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

// SearchDoctorsByName matches case-sensitive substrings; the empty string
// matches every record.
func (s *Service) SearchDoctorsByName(ctx context.Context, name string) ([]*Doctor, error) {
	return s.doctors.SearchByName(ctx, name)
}

func (s *Service) SearchDoctorsBySpec(ctx context.Context, spec string) ([]*Doctor, error) {
	return s.doctors.SearchBySpec(ctx, spec)
}

// -- Nurses --

func (s *Service) CreateNurse(ctx context.Context, n *Nurse) error {
	if n.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.nurses.Create(ctx, n)
}

func (s *Service) GetNurse(ctx context.Context, id int64) (*Nurse, error) {
	return s.nurses.GetByID(ctx, id)
}

func (s *Service) ListNurses(ctx context.Context) ([]*Nurse, error) {
	return s.nurses.List(ctx)
}

func (s *Service) SearchNursesByName(ctx context.Context, name string) ([]*Nurse, error) {
	return s.nurses.SearchByName(ctx, name)
}

func (s *Service) DeleteNurse(ctx context.Context, id int64) error {
	return s.nurses.Delete(ctx, id)
}

// -- Personnel --

func (s *Service) CreatePersonnel(ctx context.Context, p *Personnel) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Type == "" {
		return fmt.Errorf("type is required")
	}
	return s.personnel.Create(ctx, p)
}

func (s *Service) GetPersonnel(ctx context.Context, id int64) (*Personnel, error) {
	return s.personnel.GetByID(ctx, id)
}

func (s *Service) ListPersonnel(ctx context.Context) ([]*Personnel, error) {
	return s.personnel.List(ctx)
}

func (s *Service) SearchPersonnelByName(ctx context.Context, name string) ([]*Personnel, error) {
	return s.personnel.SearchByName(ctx, name)
}

func (s *Service) SearchPersonnelByType(ctx context.Context, typ string) ([]*Personnel, error) {
	return s.personnel.SearchByType(ctx, typ)
}

func (s *Service) DeletePersonnel(ctx context.Context, id int64) error {
	return s.personnel.Delete(ctx, id)
}
