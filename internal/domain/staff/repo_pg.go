package staff

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

func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}

// -- Doctors --

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

func NewDoctorRepo(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	return conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO doctors (name, spec) VALUES ($1, $2) RETURNING id`,
		d.Name, d.Spec,
	).Scan(&d.ID)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	var d Doctor
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, spec FROM doctors WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Spec)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, name, spec FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDoctors(rows)
}

func (r *doctorRepoPG) SearchByName(ctx context.Context, name string) ([]*Doctor, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, spec FROM doctors WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDoctors(rows)
}

func (r *doctorRepoPG) SearchBySpec(ctx context.Context, spec string) ([]*Doctor, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, spec FROM doctors WHERE spec LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(spec))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDoctors(rows)
}

func (r *doctorRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectDoctors(rows pgx.Rows) ([]*Doctor, error) {
	var docs []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Spec); err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// -- Nurses --

type nurseRepoPG struct {
	pool *pgxpool.Pool
}

func NewNurseRepo(pool *pgxpool.Pool) NurseRepository {
	return &nurseRepoPG{pool: pool}
}

func (r *nurseRepoPG) Create(ctx context.Context, n *Nurse) error {
	return conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO nurses (name) VALUES ($1) RETURNING id`, n.Name,
	).Scan(&n.ID)
}

func (r *nurseRepoPG) GetByID(ctx context.Context, id int64) (*Nurse, error) {
	var n Nurse
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name FROM nurses WHERE id = $1`, id,
	).Scan(&n.ID, &n.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *nurseRepoPG) List(ctx context.Context) ([]*Nurse, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, name FROM nurses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNurses(rows)
}

func (r *nurseRepoPG) SearchByName(ctx context.Context, name string) ([]*Nurse, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name FROM nurses WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNurses(rows)
}

func (r *nurseRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM nurses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectNurses(rows pgx.Rows) ([]*Nurse, error) {
	var nurses []*Nurse
	for rows.Next() {
		var n Nurse
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, err
		}
		nurses = append(nurses, &n)
	}
	return nurses, rows.Err()
}

// -- Personnel --

type personnelRepoPG struct {
	pool *pgxpool.Pool
}

func NewPersonnelRepo(pool *pgxpool.Pool) PersonnelRepository {
	return &personnelRepoPG{pool: pool}
}

func (r *personnelRepoPG) Create(ctx context.Context, p *Personnel) error {
	return conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO personnel (name, type) VALUES ($1, $2) RETURNING id`,
		p.Name, p.Type,
	).Scan(&p.ID)
}

func (r *personnelRepoPG) GetByID(ctx context.Context, id int64) (*Personnel, error) {
	var p Personnel
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, type FROM personnel WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personnelRepoPG) List(ctx context.Context) ([]*Personnel, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, name, type FROM personnel ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPersonnel(rows)
}

func (r *personnelRepoPG) SearchByName(ctx context.Context, name string) ([]*Personnel, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, type FROM personnel WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPersonnel(rows)
}

func (r *personnelRepoPG) SearchByType(ctx context.Context, typ string) ([]*Personnel, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, type FROM personnel WHERE type LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(typ))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPersonnel(rows)
}

func (r *personnelRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectPersonnel(rows pgx.Rows) ([]*Personnel, error) {
	var staff []*Personnel
	for rows.Next() {
		var p Personnel
		if err := rows.Scan(&p.ID, &p.Name, &p.Type); err != nil {
			return nil, err
		}
		staff = append(staff, &p)
	}
	return staff, rows.Err()
}
