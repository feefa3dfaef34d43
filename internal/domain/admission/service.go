package admission

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zgr2788/hosadm/internal/domain/patient"
	"github.com/zgr2788/hosadm/internal/domain/room"
	"github.com/zgr2788/hosadm/internal/domain/staff"
	"github.com/zgr2788/hosadm/internal/platform/db"
)

var (
	// ErrRoomOccupied rejects an admission into a room that already holds
	// a patient. Rooms are single occupancy.
	ErrRoomOccupied = errors.New("room is occupied")
	// ErrPatientAdmitted rejects admitting a patient who already holds a
	// room. Discharge first.
	ErrPatientAdmitted = errors.New("patient is already admitted")
)

// IntegrityError reports a half-applied engine operation: the second write
// of a pair failed and the compensating write could not restore the first,
// or a cascade failed past the point where its effects can be undone. Under
// the Postgres runner the surrounding transaction still rolls the damage
// back; under a pass-through runner this is a loud corruption signal.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation during %s: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// PatientStore is the slice of the patient repository the engine needs.
type PatientStore interface {
	GetByID(ctx context.Context, id int64) (*patient.Patient, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*patient.Patient, error)
	SetAdmission(ctx context.Context, patientID, roomID int64) error
	Delete(ctx context.Context, id int64) error
}

// RoomStore is the slice of the room repository the engine needs.
type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*room.Room, error)
	SetOccupancy(ctx context.Context, roomID, patientID int64) error
	Delete(ctx context.Context, id int64) error
}

// DoctorStore is the slice of the doctor repository the engine needs.
type DoctorStore interface {
	GetByID(ctx context.Context, id int64) (*staff.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

// Service keeps the Patient<->Room and Doctor->Patient links consistent.
// Every mutation runs under the engine mutex and inside one transactional
// unit, so concurrent admissions cannot interleave between the paired
// writes. When the second write of a pair fails, the engine undoes the
// first before returning, so the links stay consistent even on a runner
// without transactional isolation.
type Service struct {
	mu       sync.Mutex
	patients PatientStore
	rooms    RoomStore
	doctors  DoctorStore
	tx       db.TxRunner
}

func NewService(patients PatientStore, rooms RoomStore, doctors DoctorStore, tx db.TxRunner) *Service {
	return &Service{patients: patients, rooms: rooms, doctors: doctors, tx: tx}
}

// Admit places a patient into a room, writing both sides of the link.
// The room must be empty and the patient must not already hold a room.
func (s *Service) Admit(ctx context.Context, patientID, roomID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.patients.GetByID(ctx, patientID)
		if err != nil {
			return fmt.Errorf("patient %d: %w", patientID, err)
		}
		r, err := s.rooms.GetByID(ctx, roomID)
		if err != nil {
			return fmt.Errorf("room %d: %w", roomID, err)
		}
		if r.Occupied {
			return fmt.Errorf("room %d: %w", roomID, ErrRoomOccupied)
		}
		if p.AdmittedTo != 0 {
			return fmt.Errorf("patient %d: %w", patientID, ErrPatientAdmitted)
		}

		if err := s.patients.SetAdmission(ctx, p.ID, r.ID); err != nil {
			return fmt.Errorf("admit patient %d: %w", p.ID, err)
		}
		if err := s.rooms.SetOccupancy(ctx, r.ID, p.ID); err != nil {
			if undoErr := s.patients.SetAdmission(ctx, p.ID, 0); undoErr != nil {
				return &IntegrityError{Op: "admit", Err: fmt.Errorf("%w; rollback failed: %v", err, undoErr)}
			}
			return fmt.Errorf("occupy room %d: %w", r.ID, err)
		}
		return nil
	})
}

// Discharge frees the patient's room and clears the patient's admission.
// Discharging a patient who holds no room is a no-op, so the operation is
// safe to repeat.
func (s *Service) Discharge(ctx context.Context, patientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.patients.GetByID(ctx, patientID)
		if err != nil {
			return fmt.Errorf("patient %d: %w", patientID, err)
		}
		return s.discharge(ctx, p)
	})
}

// discharge is the unsynchronized core shared by the cascading deletes.
// Callers hold the mutex and run inside a transactional unit.
func (s *Service) discharge(ctx context.Context, p *patient.Patient) error {
	if p.AdmittedTo == 0 {
		return nil
	}

	if err := s.rooms.SetOccupancy(ctx, p.AdmittedTo, 0); err != nil {
		return fmt.Errorf("free room %d: %w", p.AdmittedTo, err)
	}
	if err := s.patients.SetAdmission(ctx, p.ID, 0); err != nil {
		if undoErr := s.rooms.SetOccupancy(ctx, p.AdmittedTo, p.ID); undoErr != nil {
			return &IntegrityError{Op: "discharge", Err: fmt.Errorf("%w; rollback failed: %v", err, undoErr)}
		}
		return fmt.Errorf("clear admission of patient %d: %w", p.ID, err)
	}
	return nil
}

// DeleteRoom removes a room, discharging its occupant first so no patient
// is left pointing at a dead room.
func (s *Service) DeleteRoom(ctx context.Context, roomID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.rooms.GetByID(ctx, roomID)
		if err != nil {
			return fmt.Errorf("room %d: %w", roomID, err)
		}
		if r.Occupied {
			if err := s.patients.SetAdmission(ctx, r.OccupiedBy, 0); err != nil {
				return fmt.Errorf("discharge patient %d: %w", r.OccupiedBy, err)
			}
		}
		if err := s.rooms.Delete(ctx, r.ID); err != nil {
			if r.Occupied {
				if undoErr := s.patients.SetAdmission(ctx, r.OccupiedBy, r.ID); undoErr != nil {
					return &IntegrityError{Op: "delete room", Err: fmt.Errorf("%w; rollback failed: %v", err, undoErr)}
				}
			}
			return fmt.Errorf("delete room %d: %w", r.ID, err)
		}
		return nil
	})
}

// DeletePatient removes a patient, freeing their room first. Treatments
// billed to the patient are kept as billing history.
func (s *Service) DeletePatient(ctx context.Context, patientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.deletePatient(ctx, patientID)
	})
}

func (s *Service) deletePatient(ctx context.Context, patientID int64) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("patient %d: %w", patientID, err)
	}
	roomID := p.AdmittedTo

	if err := s.discharge(ctx, p); err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, p.ID); err != nil {
		// Undo the discharge so the patient record still agrees with
		// its room.
		if roomID != 0 {
			if undoErr := s.readmit(ctx, p.ID, roomID); undoErr != nil {
				return &IntegrityError{Op: "delete patient", Err: fmt.Errorf("%w; rollback failed: %v", err, undoErr)}
			}
		}
		return fmt.Errorf("delete patient %d: %w", p.ID, err)
	}
	return nil
}

func (s *Service) readmit(ctx context.Context, patientID, roomID int64) error {
	if err := s.patients.SetAdmission(ctx, patientID, roomID); err != nil {
		return err
	}
	return s.rooms.SetOccupancy(ctx, roomID, patientID)
}

// DeleteDoctor removes a doctor and cascades through every patient the
// doctor treats, freeing any rooms those patients held.
func (s *Service) DeleteDoctor(ctx context.Context, doctorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
			return fmt.Errorf("doctor %d: %w", doctorID, err)
		}

		treated, err := s.patients.ListByDoctor(ctx, doctorID)
		if err != nil {
			return fmt.Errorf("list patients of doctor %d: %w", doctorID, err)
		}
		for i, p := range treated {
			if err := s.deletePatient(ctx, p.ID); err != nil {
				// Patients already removed by this cascade cannot be
				// restored here; only the transactional runner can
				// unwind them.
				if i > 0 {
					return &IntegrityError{Op: "delete doctor", Err: err}
				}
				return err
			}
		}

		if err := s.doctors.Delete(ctx, doctorID); err != nil {
			if len(treated) > 0 {
				return &IntegrityError{Op: "delete doctor", Err: err}
			}
			return fmt.Errorf("delete doctor %d: %w", doctorID, err)
		}
		return nil
	})
}
