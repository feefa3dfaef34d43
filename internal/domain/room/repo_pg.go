package room

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

const roomCols = `id, name, size, occupied, occupied_by`

func (r *repoPG) Create(ctx context.Context, ro *Room) error {
	ro.Occupied = false
	ro.OccupiedBy = 0
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO rooms (name, size, occupied, occupied_by) VALUES ($1, $2, FALSE, 0) RETURNING id`,
		ro.Name, ro.Size,
	).Scan(&ro.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Room, error) {
	return scanRoom(r.conn(ctx).QueryRow(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Room, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+roomCols+` FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func (r *repoPG) SearchByName(ctx context.Context, name string) ([]*Room, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+roomCols+` FROM rooms WHERE name LIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`,
		db.EscapeLike(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func (r *repoPG) SetOccupancy(ctx context.Context, roomID, patientID int64) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE rooms SET occupied = ($2 <> 0), occupied_by = $2 WHERE id = $1`,
		roomID, patientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRoom(row pgx.Row) (*Room, error) {
	var ro Room
	err := row.Scan(&ro.ID, &ro.Name, &ro.Size, &ro.Occupied, &ro.OccupiedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ro, nil
}

func collectRooms(rows pgx.Rows) ([]*Room, error) {
	var rooms []*Room
	for rows.Next() {
		var ro Room
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Size, &ro.Occupied, &ro.OccupiedBy); err != nil {
			return nil, err
		}
		rooms = append(rooms, &ro)
	}
	return rooms, rows.Err()
}
