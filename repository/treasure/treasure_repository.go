package treasure

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	connrepo "github.com/muhammadheryan/rare-treasures/repository/conn"
	"github.com/muhammadheryan/rare-treasures/query"
	"github.com/muhammadheryan/rare-treasures/utils/result"
)

type SQL struct{}

type TreasureRepository interface {
	ListColoursConn(ctx context.Context, conn *sqlx.Conn) ([]string, error)
	QueryConn(ctx context.Context, conn *sqlx.Conn, stmt query.Statement) (*result.Rows, error)
}

func NewTreasureRepository() TreasureRepository {
	return &SQL{}
}

func (s *SQL) ListColoursConn(ctx context.Context, conn *sqlx.Conn) ([]string, error) {
	var colours []sql.NullString
	if err := conn.SelectContext(ctx, &colours, query.DistinctColours().SQL); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(colours))
	for _, c := range colours {
		if c.Valid {
			out = append(out, c.String)
		}
	}
	return out, nil
}

func (s *SQL) QueryConn(ctx context.Context, conn *sqlx.Conn, stmt query.Statement) (*result.Rows, error) {
	return connrepo.Query(ctx, conn, stmt)
}
