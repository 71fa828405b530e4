package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	shopapp "github.com/muhammadheryan/rare-treasures/application/shop"
	treasureapp "github.com/muhammadheryan/rare-treasures/application/treasure"
	"github.com/muhammadheryan/rare-treasures/constant"
	"github.com/muhammadheryan/rare-treasures/model"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	validatorx "github.com/muhammadheryan/rare-treasures/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	TreasureApp treasureapp.TreasureApp
	ShopApp     shopapp.ShopApp
}

func NewTransport(TreasureApp treasureapp.TreasureApp, ShopApp shopapp.ShopApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		TreasureApp: TreasureApp,
		ShopApp:     ShopApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix("/api").Subrouter()
	api.HandleFunc("/treasures", rh.ListTreasures).Methods(http.MethodGet)
	api.HandleFunc("/treasures", rh.CreateTreasure).Methods(http.MethodPost)
	api.HandleFunc("/treasures/{treasure_id}", rh.UpdateTreasure).Methods(http.MethodPatch)
	api.HandleFunc("/treasures/{treasure_id}", rh.DeleteTreasure).Methods(http.MethodDelete)
	api.HandleFunc("/shops", rh.ListShops).Methods(http.MethodGet)

	mux.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
	})
	mux.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrMethodNotAllowed))
	})

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(RecoveryMiddleware())

	return mux
}

// ListTreasures handler
// @Summary List treasures
// @Description Filter, sort and paginate treasures. A single match is returned as an object, several as an array.
// @Tags Treasures
// @Produce json
// @Param sort_by query string false "age | cost_at_auction | treasure_name | treasure_id" default(age)
// @Param order query string false "ASC | DESC" default(ASC)
// @Param colour query string false "Colour, case insensitive"
// @Param max_age query int false "Maximum age, inclusive"
// @Param min_age query int false "Minimum age, inclusive"
// @Param limit query int false "Page size" default(5)
// @Param page query int false "Page number, starting at 1" default(1)
// @Success 200 {object} model.TreasureListResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /api/treasures [get]
func (s *RestHandler) ListTreasures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TreasureListRequest
	readQuery(r, &req)

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(validatorx.FieldMessages(err, "query")...))
		return
	}

	if s.TreasureApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TreasureApp.ListTreasures(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateTreasure handler
// @Summary Create treasure
// @Description Insert a treasure. Fields are optional here; database constraints decide.
// @Tags Treasures
// @Accept json
// @Produce json
// @Param request body model.NewTreasure true "New treasure"
// @Success 201 {object} model.TreasureResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/treasures [post]
func (s *RestHandler) CreateTreasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.NewTreasure
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.TreasureApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TreasureApp.CreateTreasure(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateTreasure handler
// @Summary Update treasure cost
// @Description Set cost_at_auction of one treasure
// @Tags Treasures
// @Accept json
// @Produce json
// @Param treasure_id path int true "Treasure ID"
// @Param request body model.TreasureUpdate true "New cost"
// @Success 200 {object} model.TreasureResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /api/treasures/{treasure_id} [patch]
func (s *RestHandler) UpdateTreasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "treasure_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.TreasureUpdate
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.TreasureApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TreasureApp.UpdateTreasure(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteTreasure handler
// @Summary Delete treasure
// @Tags Treasures
// @Param treasure_id path int true "Treasure ID"
// @Success 204
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /api/treasures/{treasure_id} [delete]
func (s *RestHandler) DeleteTreasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "treasure_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if s.TreasureApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.TreasureApp.DeleteTreasure(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListShops handler
// @Summary List shops
// @Description Shops ordered by shop_id, with stock value and treasure count
// @Tags Shops
// @Produce json
// @Success 200 {object} model.ShopListResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/shops [get]
func (s *RestHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ShopApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ShopApp.ListShops(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
