package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zgr2788/hosadm/internal/domain/billing"
	"github.com/zgr2788/hosadm/internal/domain/patient"
	"github.com/zgr2788/hosadm/internal/domain/room"
	"github.com/zgr2788/hosadm/internal/domain/staff"
)

// seed populates an empty store with a small demo dataset. A store that
// already holds doctors is left untouched.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	doctorRepo := staff.NewDoctorRepo(pool)

	existing, err := doctorRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing records: %w", err)
	}
	if len(existing) > 0 {
		fmt.Println("Store is not empty, skipping seed.")
		return nil
	}

	doctors := []*staff.Doctor{
		{Name: "Thomas Shelby", Spec: "Cardiology"},
		{Name: "Arthur Shelby", Spec: "Orthopedics"},
		{Name: "Miles Morales", Spec: "Neurology"},
	}
	for _, d := range doctors {
		if err := doctorRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("seed doctor %q: %w", d.Name, err)
		}
	}

	nurseRepo := staff.NewNurseRepo(pool)
	for _, name := range []string{"Carla Espinosa", "Greg Focker"} {
		if err := nurseRepo.Create(ctx, &staff.Nurse{Name: name}); err != nil {
			return fmt.Errorf("seed nurse %q: %w", name, err)
		}
	}

	personnelRepo := staff.NewPersonnelRepo(pool)
	personnel := []*staff.Personnel{
		{Name: "Gilfoyle", Type: "Security"},
		{Name: "Luigi", Type: "Cleaning"},
	}
	for _, p := range personnel {
		if err := personnelRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed personnel %q: %w", p.Name, err)
		}
	}

	roomRepo := room.NewRepo(pool)
	rooms := []*room.Room{
		{Name: "White Room", Size: 1},
		{Name: "Blue Room", Size: 2},
	}
	for _, r := range rooms {
		if err := roomRepo.Create(ctx, r); err != nil {
			return fmt.Errorf("seed room %q: %w", r.Name, err)
		}
	}

	patientRepo := patient.NewRepo(pool)
	patients := []*patient.Patient{
		{Name: "Gus Fring", History: "hypertension", TreatedBy: doctors[0].ID},
		{Name: "Walter White", History: "lung screening", TreatedBy: doctors[2].ID},
	}
	for _, p := range patients {
		if err := patientRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %q: %w", p.Name, err)
		}
	}

	treatmentRepo := billing.NewRepo(pool)
	treatments := []*billing.Treatment{
		{Name: "ECG", Cost: 150, BilledTo: patients[0].ID},
		{Name: "Chest X-Ray", Cost: 220, BilledTo: patients[1].ID},
	}
	for _, t := range treatments {
		if err := treatmentRepo.Create(ctx, t); err != nil {
			return fmt.Errorf("seed treatment %q: %w", t.Name, err)
		}
	}

	fmt.Println("Seed data inserted.")
	return nil
}
