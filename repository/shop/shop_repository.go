package shop

import (
	"context"

	"github.com/jmoiron/sqlx"
	connrepo "github.com/muhammadheryan/rare-treasures/repository/conn"
	"github.com/muhammadheryan/rare-treasures/query"
	"github.com/muhammadheryan/rare-treasures/utils/result"
)

type SQL struct{}

type ShopRepository interface {
	ListConn(ctx context.Context, conn *sqlx.Conn) (*result.Rows, error)
}

func NewShopRepository() ShopRepository {
	return &SQL{}
}

func (s *SQL) ListConn(ctx context.Context, conn *sqlx.Conn) (*result.Rows, error) {
	return connrepo.Query(ctx, conn, query.ListShops())
}
