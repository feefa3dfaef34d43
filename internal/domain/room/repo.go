package room

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup references an id absent from the store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	SearchByName(ctx context.Context, name string) ([]*Room, error)
	// SetOccupancy writes both occupancy fields in one statement.
	// patientID 0 marks the room empty.
	SetOccupancy(ctx context.Context, roomID, patientID int64) error
	Delete(ctx context.Context, id int64) error
}
