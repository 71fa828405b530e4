package shop

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rare-treasures/constant"
	connrepo "github.com/muhammadheryan/rare-treasures/repository/conn"
	shoprepo "github.com/muhammadheryan/rare-treasures/repository/shop"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/muhammadheryan/rare-treasures/utils/logger"
	"github.com/muhammadheryan/rare-treasures/utils/result"
	"go.uber.org/zap"
)

type ShopApp interface {
	ListShops(ctx context.Context) (*result.Document, error)
}

type shopAppImpl struct {
	connRepo connrepo.ConnRepository
	shopRepo shoprepo.ShopRepository
}

func NewShopApp(connRepo connrepo.ConnRepository, shopRepo shoprepo.ShopRepository) ShopApp {
	return &shopAppImpl{connRepo: connRepo, shopRepo: shopRepo}
}

func (s *shopAppImpl) ListShops(ctx context.Context) (*result.Document, error) {
	conn, err := s.connRepo.Acquire(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[ListShops] error connRepo.Acquire", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer s.release(ctx, conn)

	rows, err := s.shopRepo.ListConn(ctx, conn)
	if err != nil {
		logger.Ctx(ctx).Error("[ListShops] error shopRepo.ListConn", zap.String("error", err.Error()))
		return nil, errors.FromStorage(err)
	}

	doc, err := result.Normalize(rows, constant.KeyShops, result.Infer)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrPageNotFound)
	}

	return doc, nil
}

func (s *shopAppImpl) release(ctx context.Context, conn *sqlx.Conn) {
	if err := s.connRepo.Release(conn); err != nil {
		logger.Ctx(ctx).Error("[release] error connRepo.Release", zap.String("error", err.Error()))
	}
}
