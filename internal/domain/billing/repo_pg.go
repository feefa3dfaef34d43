package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zgr2788/hosadm/internal/platform/db"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) Create(ctx context.Context, t *Treatment) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO treatments (name, cost, billed_to) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Cost, t.BilledTo,
	).Scan(&t.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Treatment, error) {
	var t Treatment
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, cost, billed_to FROM treatments WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Cost, &t.BilledTo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Treatment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, cost, billed_to FROM treatments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTreatments(rows)
}

func (r *repoPG) SearchByName(ctx context.Context, name string) ([]*Treatment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, cost, billed_to FROM treatments WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTreatments(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Treatment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, cost, billed_to FROM treatments WHERE billed_to = $1 ORDER BY id`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTreatments(rows)
}

func collectTreatments(rows pgx.Rows) ([]*Treatment, error) {
	var out []*Treatment
	for rows.Next() {
		var t Treatment
		if err := rows.Scan(&t.ID, &t.Name, &t.Cost, &t.BilledTo); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
