package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup references an id absent from the store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	SearchByName(ctx context.Context, name string) ([]*Patient, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Patient, error)
	ListAdmitted(ctx context.Context) ([]*Patient, error)
	// SetAdmission updates the patient's room reference. roomID 0 means
	// "not admitted".
	SetAdmission(ctx context.Context, patientID, roomID int64) error
	Delete(ctx context.Context, id int64) error
}
