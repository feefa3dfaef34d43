package billing

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup references an id absent from the store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, t *Treatment) error
	GetByID(ctx context.Context, id int64) (*Treatment, error)
	List(ctx context.Context) ([]*Treatment, error)
	SearchByName(ctx context.Context, name string) ([]*Treatment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Treatment, error)
}
