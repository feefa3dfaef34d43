package staff

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup references an id absent from the store.
var ErrNotFound = errors.New("record not found")

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	List(ctx context.Context) ([]*Doctor, error)
	SearchByName(ctx context.Context, name string) ([]*Doctor, error)
	SearchBySpec(ctx context.Context, spec string) ([]*Doctor, error)
	Delete(ctx context.Context, id int64) error
}

type NurseRepository interface {
	Create(ctx context.Context, n *Nurse) error
	GetByID(ctx context.Context, id int64) (*Nurse, error)
	List(ctx context.Context) ([]*Nurse, error)
	SearchByName(ctx context.Context, name string) ([]*Nurse, error)
	Delete(ctx context.Context, id int64) error
}

type PersonnelRepository interface {
	Create(ctx context.Context, p *Personnel) error
	GetByID(ctx context.Context, id int64) (*Personnel, error)
	List(ctx context.Context) ([]*Personnel, error)
	SearchByName(ctx context.Context, name string) ([]*Personnel, error)
	SearchByType(ctx context.Context, typ string) ([]*Personnel, error)
	Delete(ctx context.Context, id int64) error
}
