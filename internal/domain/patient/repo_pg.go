package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zgr2788/hosadm/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patCols = `id, name, history, treated_by, admitted_to`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.AdmittedTo = 0
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO patients (name, history, treated_by, admitted_to) VALUES ($1, $2, $3, 0) RETURNING id`,
		p.Name, p.History, p.TreatedBy,
	).Scan(&p.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+patCols+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) SearchByName(ctx context.Context, name string) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patCols+` FROM patients WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patCols+` FROM patients WHERE treated_by = $1 ORDER BY id`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) ListAdmitted(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patCols+` FROM patients WHERE admitted_to <> 0 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) SetAdmission(ctx context.Context, patientID, roomID int64) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patients SET admitted_to = $2 WHERE id = $1`, patientID, roomID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.History, &p.TreatedBy, &p.AdmittedTo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	var pats []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.History, &p.TreatedBy, &p.AdmittedTo); err != nil {
			return nil, err
		}
		pats = append(pats, &p)
	}
	return pats, rows.Err()
}
