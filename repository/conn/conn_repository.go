package conn

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rare-treasures/query"
	"github.com/muhammadheryan/rare-treasures/utils/result"
)

// ConnRepository hands out one pooled connection per request.
type ConnRepository interface {
	Acquire(ctx context.Context) (*sqlx.Conn, error)
	Release(conn *sqlx.Conn) error
}

type connRepo struct {
	db *sqlx.DB
}

func NewConnRepository(db *sqlx.DB) ConnRepository {
	return &connRepo{db: db}
}

func (r *connRepo) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	return r.db.Connx(ctx)
}

func (r *connRepo) Release(conn *sqlx.Conn) error {
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Query runs stmt on conn and collects every row as a slice of column values.
func Query(ctx context.Context, conn *sqlx.Conn, stmt query.Statement) (*result.Rows, error) {
	q, args, err := stmt.Compile(conn.Rebind)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := &result.Rows{Columns: columns, Values: make([][]any, 0)}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		out.Values = append(out.Values, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
