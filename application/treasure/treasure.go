package treasure

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rare-treasures/constant"
	"github.com/muhammadheryan/rare-treasures/model"
	"github.com/muhammadheryan/rare-treasures/query"
	connrepo "github.com/muhammadheryan/rare-treasures/repository/conn"
	treasurerepo "github.com/muhammadheryan/rare-treasures/repository/treasure"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/muhammadheryan/rare-treasures/utils/logger"
	"github.com/muhammadheryan/rare-treasures/utils/result"
	validatorx "github.com/muhammadheryan/rare-treasures/utils/validator"
	"go.uber.org/zap"
)

type TreasureApp interface {
	ListTreasures(ctx context.Context, req *model.TreasureListRequest) (*result.Document, error)
	CreateTreasure(ctx context.Context, req *model.NewTreasure) (*result.Document, error)
	UpdateTreasure(ctx context.Context, id int64, req *model.TreasureUpdate) (*result.Document, error)
	DeleteTreasure(ctx context.Context, id int64) error
}

type treasureAppImpl struct {
	connRepo     connrepo.ConnRepository
	treasureRepo treasurerepo.TreasureRepository
}

func NewTreasureApp(connRepo connrepo.ConnRepository, treasureRepo treasurerepo.TreasureRepository) TreasureApp {
	return &treasureAppImpl{connRepo: connRepo, treasureRepo: treasureRepo}
}

func (s *treasureAppImpl) ListTreasures(ctx context.Context, req *model.TreasureListRequest) (*result.Document, error) {
	params, err := toTreasureParams(req)
	if err != nil {
		return nil, err
	}

	conn, err := s.connRepo.Acquire(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[ListTreasures] error connRepo.Acquire", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer s.release(ctx, conn)

	var colours []string
	if params.Colour != "" {
		colours, err = s.treasureRepo.ListColoursConn(ctx, conn)
		if err != nil {
			logger.Ctx(ctx).Error("[ListTreasures] error treasureRepo.ListColoursConn", zap.String("error", err.Error()))
			return nil, errors.FromStorage(err)
		}
	}

	stmt, err := query.ListTreasures(params, colours)
	if err != nil {
		var ce errors.CustomError
		if stderrors.As(err, &ce) {
			return nil, ce
		}
		logger.Ctx(ctx).Error("[ListTreasures] error query.ListTreasures", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.treasureRepo.QueryConn(ctx, conn, stmt)
	if err != nil {
		logger.Ctx(ctx).Error("[ListTreasures] error treasureRepo.QueryConn", zap.String("error", err.Error()))
		return nil, errors.FromStorage(err)
	}

	// An empty first page is reported the same way as a page past the end.
	doc, err := result.Normalize(rows, constant.KeyTreasures, result.Infer)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrPageNotFound)
	}

	return doc, nil
}

func (s *treasureAppImpl) CreateTreasure(ctx context.Context, req *model.NewTreasure) (*result.Document, error) {
	conn, err := s.connRepo.Acquire(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[CreateTreasure] error connRepo.Acquire", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer s.release(ctx, conn)

	rows, err := s.treasureRepo.QueryConn(ctx, conn, query.InsertTreasure(req))
	if err != nil {
		logger.Ctx(ctx).Error("[CreateTreasure] error treasureRepo.QueryConn", zap.String("error", err.Error()))
		return nil, errors.FromStorage(err)
	}

	doc, err := result.Normalize(rows, constant.KeyTreasure, result.Single)
	if err != nil {
		logger.Ctx(ctx).Error("[CreateTreasure] insert returned no row")
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return doc, nil
}

func (s *treasureAppImpl) UpdateTreasure(ctx context.Context, id int64, req *model.TreasureUpdate) (*result.Document, error) {
	conn, err := s.connRepo.Acquire(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[UpdateTreasure] error connRepo.Acquire", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer s.release(ctx, conn)

	rows, err := s.treasureRepo.QueryConn(ctx, conn, query.UpdateTreasureCost(id, req))
	if err != nil {
		logger.Ctx(ctx).Error("[UpdateTreasure] error treasureRepo.QueryConn", zap.String("error", err.Error()))
		return nil, errors.FromStorage(err)
	}

	doc, err := result.Normalize(rows, constant.KeyTreasure, result.Single)
	if stderrors.Is(err, result.ErrEmpty) {
		return nil, errors.SetCustomError(constant.ErrNoDataGiven)
	}
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return doc, nil
}

func (s *treasureAppImpl) DeleteTreasure(ctx context.Context, id int64) error {
	conn, err := s.connRepo.Acquire(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[DeleteTreasure] error connRepo.Acquire", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	defer s.release(ctx, conn)

	rows, err := s.treasureRepo.QueryConn(ctx, conn, query.DeleteTreasure(id))
	if err != nil {
		logger.Ctx(ctx).Error("[DeleteTreasure] error treasureRepo.QueryConn", zap.String("error", err.Error()))
		return errors.FromStorage(err)
	}

	if _, err := result.Normalize(rows, constant.KeyTreasure, result.Single); err != nil {
		return errors.SetCustomError(constant.ErrTreasureNotFound)
	}

	return nil
}

func (s *treasureAppImpl) release(ctx context.Context, conn *sqlx.Conn) {
	if err := s.connRepo.Release(conn); err != nil {
		logger.Ctx(ctx).Error("[release] error connRepo.Release", zap.String("error", err.Error()))
	}
}

// toTreasureParams applies defaults and converts validated query values.
func toTreasureParams(req *model.TreasureListRequest) (query.TreasureParams, error) {
	params := query.DefaultTreasureParams()
	var details []string

	if req.SortBy != "" {
		col, err := query.ParseSortColumn(req.SortBy)
		if err != nil {
			details = append(details, "query sort_by should match pattern '"+validatorx.SortByPattern+"'")
		}
		params.SortBy = col
	}
	if req.Order != "" {
		order, err := query.ParseSortOrder(req.Order)
		if err != nil {
			details = append(details, "query order should match pattern '"+validatorx.OrderPattern+"'")
		}
		params.Order = order
	}
	params.Colour = req.Colour

	ints := []struct {
		field    string
		raw      string
		positive bool
		set      func(n int)
	}{
		{"max_age", req.MaxAge, false, func(n int) { params.MaxAge = &n }},
		{"min_age", req.MinAge, false, func(n int) { params.MinAge = &n }},
		{"limit", req.Limit, true, func(n int) { params.Limit = n }},
		{"page", req.Page, true, func(n int) { params.Page = n }},
	}
	for _, in := range ints {
		if in.raw == "" {
			continue
		}
		n, err := strconv.Atoi(in.raw)
		if err != nil {
			details = append(details, validatorx.IntegerMessage("query", in.field))
			continue
		}
		if in.positive && n <= 0 {
			details = append(details, "query "+in.field+" should be greater than 0")
			continue
		}
		in.set(n)
	}

	if len(details) > 0 {
		return params, errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(details...)
	}
	return params, nil
}
