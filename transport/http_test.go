package transport_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/rare-treasures/constant"
	shopmocks "github.com/muhammadheryan/rare-treasures/mocks/application/shop"
	treasuremocks "github.com/muhammadheryan/rare-treasures/mocks/application/treasure"
	"github.com/muhammadheryan/rare-treasures/model"
	"github.com/muhammadheryan/rare-treasures/transport"
	cerr "github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/muhammadheryan/rare-treasures/utils/result"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	treasureApp *treasuremocks.TreasureApp
	shopApp     *shopmocks.ShopApp
}

func serve(t *testing.T, f fields, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	transport.NewTransport(f.treasureApp, f.shopApp).ServeHTTP(rec, req)
	return rec
}

func TestRestHandler_Treasures(t *testing.T) {
	single := &result.Document{
		Key:    "treasure",
		Kind:   result.KindSingle,
		Record: result.Record{"treasure_id": 27, "treasure_name": "Golden Chalice", "cost_at_auction": 100000.5},
	}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		mockCall   func(f fields)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list: query values are forwarded raw",
			method: http.MethodGet,
			target: "/api/treasures?sort_by=COST_AT_AUCTION&order=desc&colour=Gold&limit=2&page=3",
			mockCall: func(f fields) {
				f.treasureApp.On("ListTreasures", mock.Anything, &model.TreasureListRequest{
					SortBy: "COST_AT_AUCTION", Order: "desc", Colour: "Gold", Limit: "2", Page: "3",
				}).Return(&result.Document{
					Key:  "treasures",
					Kind: result.KindMany,
					Records: []result.Record{
						{"treasure_id": 8, "colour": "gold"},
						{"treasure_id": 9, "colour": "gold"},
					},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"treasures":[{"treasure_id":8,"colour":"gold"},{"treasure_id":9,"colour":"gold"}]}`,
		},
		{
			name:       "list: every malformed field is reported",
			method:     http.MethodGet,
			target:     "/api/treasures?sort_by=shop_id&order=sideways&max_age=old&limit=0",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: `{"code":"0003","detail":[
				"query sort_by should match pattern '^(?i)(age|cost_at_auction|treasure_name|treasure_id)$'",
				"query order should match pattern '^(?i)(ASC|DESC)$'",
				"query max_age should be a valid integer, unable to parse string as an integer",
				"query limit should be greater than 0"
			]}`,
		},
		{
			name:   "list: unknown colour",
			method: http.MethodGet,
			target: "/api/treasures?colour=plaid",
			mockCall: func(f fields) {
				f.treasureApp.On("ListTreasures", mock.Anything, &model.TreasureListRequest{Colour: "plaid"}).
					Return(nil, cerr.SetCustomError(constant.ErrUnknownColour)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"code":"0007","detail":"There is no such colour in the database, please try another one"}`,
		},
		{
			name:   "list: page past the end",
			method: http.MethodGet,
			target: "/api/treasures?page=1000",
			mockCall: func(f fields) {
				f.treasureApp.On("ListTreasures", mock.Anything, &model.TreasureListRequest{Page: "1000"}).
					Return(nil, cerr.SetCustomError(constant.ErrPageNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"0004","detail":"Page Not Found"}`,
		},
		{
			name:   "create: 201 with the created row",
			method: http.MethodPost,
			target: "/api/treasures",
			body:   `{"treasure_name":"Golden Chalice","cost_at_auction":100000.5}`,
			mockCall: func(f fields) {
				f.treasureApp.On("CreateTreasure", mock.Anything, &model.NewTreasure{
					TreasureName:  lo.ToPtr("Golden Chalice"),
					CostAtAuction: lo.ToPtr(100000.5),
				}).Return(single, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"treasure":{"treasure_id":27,"treasure_name":"Golden Chalice","cost_at_auction":100000.5}}`,
		},
		{
			name:       "create: wrong types are all reported",
			method:     http.MethodPost,
			target:     "/api/treasures",
			body:       `{"treasure_name":5,"age":"old","shop_id":2}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"code":"0003","detail":["body treasure_name should be a valid string","body age should be a valid integer"]}`,
		},
		{
			name:       "create: body is not an object",
			method:     http.MethodPost,
			target:     "/api/treasures",
			body:       `[1,2]`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"code":"0003","detail":["body should be a valid JSON object"]}`,
		},
		{
			name:   "create: storage constraint message is passed through",
			method: http.MethodPost,
			target: "/api/treasures",
			body:   `{"colour":"gold"}`,
			mockCall: func(f fields) {
				f.treasureApp.On("CreateTreasure", mock.Anything, &model.NewTreasure{Colour: lo.ToPtr("gold")}).
					Return(nil, cerr.SetCustomError(constant.ErrStorageConstraint).
						WithMessage(`null value in column "treasure_name" of relation "treasures" violates not-null constraint`)).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"0008","detail":"null value in column \"treasure_name\" of relation \"treasures\" violates not-null constraint"}`,
		},
		{
			name:   "update: 200 with the updated row",
			method: http.MethodPatch,
			target: "/api/treasures/27",
			body:   `{"cost_at_auction":100000.5}`,
			mockCall: func(f fields) {
				f.treasureApp.On("UpdateTreasure", mock.Anything, int64(27), &model.TreasureUpdate{CostAtAuction: lo.ToPtr(100000.5)}).
					Return(single, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"treasure":{"treasure_id":27,"treasure_name":"Golden Chalice","cost_at_auction":100000.5}}`,
		},
		{
			name:       "update: non integer id",
			method:     http.MethodPatch,
			target:     "/api/treasures/abc",
			body:       `{"cost_at_auction":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"code":"0003","detail":["path treasure_id should be a valid integer, unable to parse string as an integer"]}`,
		},
		{
			name:       "update: wrong cost type",
			method:     http.MethodPatch,
			target:     "/api/treasures/1",
			body:       `{"cost_at_auction":"cheap"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"code":"0003","detail":["body cost_at_auction should be a valid number"]}`,
		},
		{
			name:   "update: unknown id",
			method: http.MethodPatch,
			target: "/api/treasures/123",
			body:   `{"cost_at_auction":1}`,
			mockCall: func(f fields) {
				f.treasureApp.On("UpdateTreasure", mock.Anything, int64(123), mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrNoDataGiven)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"0005","detail":"There is no data given the request"}`,
		},
		{
			name:   "delete: 204 without body",
			method: http.MethodDelete,
			target: "/api/treasures/1",
			mockCall: func(f fields) {
				f.treasureApp.On("DeleteTreasure", mock.Anything, int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete: unknown id",
			method: http.MethodDelete,
			target: "/api/treasures/123",
			mockCall: func(f fields) {
				f.treasureApp.On("DeleteTreasure", mock.Anything, int64(123)).
					Return(cerr.SetCustomError(constant.ErrTreasureNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"0006","detail":"There is no such treasure_id in the database"}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/api/unicorns",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"0002","detail":"Not Found"}`,
		},
		{
			name:       "wrong method",
			method:     http.MethodPut,
			target:     "/api/treasures",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"code":"0009","detail":"Method Not Allowed"}`,
		},
		{
			name:   "panic is answered with 500",
			method: http.MethodDelete,
			target: "/api/treasures/5",
			mockCall: func(f fields) {
				f.treasureApp.On("DeleteTreasure", mock.Anything, int64(5)).
					Run(func(mock.Arguments) { panic("boom") }).
					Return(nil).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"0001","detail":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				treasureApp: treasuremocks.NewTreasureApp(t),
				shopApp:     shopmocks.NewShopApp(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec := serve(t, f, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRestHandler_ListShops(t *testing.T) {
	f := fields{
		treasureApp: treasuremocks.NewTreasureApp(t),
		shopApp:     shopmocks.NewShopApp(t),
	}
	f.shopApp.On("ListShops", mock.Anything).Return(&result.Document{
		Key:  "shops",
		Kind: result.KindMany,
		Records: []result.Record{
			{"shop_id": 1, "shop_name": "shop-b", "stock_value": 250.5, "treasure_count": 3},
			{"shop_id": 2, "shop_name": "shop-a", "stock_value": 10, "treasure_count": 1},
		},
	}, nil).Once()

	rec := serve(t, f, http.MethodGet, "/api/shops", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shops":[
		{"shop_id":1,"shop_name":"shop-b","stock_value":250.5,"treasure_count":3},
		{"shop_id":2,"shop_name":"shop-a","stock_value":10,"treasure_count":1}
	]}`, rec.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	f := fields{
		treasureApp: treasuremocks.NewTreasureApp(t),
		shopApp:     shopmocks.NewShopApp(t),
	}
	f.treasureApp.On("DeleteTreasure", mock.Anything, int64(1)).Return(nil).Twice()

	rec := serve(t, f, http.MethodDelete, "/api/treasures/1", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodDelete, "/api/treasures/1", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec = httptest.NewRecorder()
	transport.NewTransport(f.treasureApp, f.shopApp).ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
