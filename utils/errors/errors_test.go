package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muhammadheryan/rare-treasures/constant"
	cerr "github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError_Detail(t *testing.T) {
	tests := []struct {
		name string
		err  cerr.CustomError
		want any
	}{
		{
			name: "default message",
			err:  cerr.SetCustomError(constant.ErrPageNotFound),
			want: "Page Not Found",
		},
		{
			name: "overridden message",
			err:  cerr.SetCustomError(constant.ErrStorageConstraint).WithMessage("boom"),
			want: "boom",
		},
		{
			name: "field details",
			err:  cerr.SetCustomError(constant.ErrInvalidRequest).WithDetails("a", "b"),
			want: []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Detail())
		})
	}
}

func TestCustomError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", cerr.SetCustomError(constant.ErrInvalidRequest).WithDetails("x"))

	assert.True(t, errors.Is(err, cerr.SetCustomError(constant.ErrInvalidRequest)))
	assert.False(t, errors.Is(err, cerr.SetCustomError(constant.ErrNotFound)))
}

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name: "not null violation keeps database message",
			err: &pgconn.PgError{
				Code:    "23502",
				Message: `null value in column "treasure_name" of relation "treasures" violates not-null constraint`,
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  `null value in column "treasure_name" of relation "treasures" violates not-null constraint`,
		},
		{
			name: "wrapped foreign key violation",
			err: fmt.Errorf("exec: %w", &pgconn.PgError{
				Code:    "23503",
				Message: `insert or update on table "treasures" violates foreign key constraint "treasures_shop_id_fkey"`,
			}),
			wantCode: http.StatusInternalServerError,
			wantMsg:  `insert or update on table "treasures" violates foreign key constraint "treasures_shop_id_fkey"`,
		},
		{
			name:     "syntax error is not surfaced",
			err:      &pgconn.PgError{Code: "42601", Message: "syntax error at or near"},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal Server Error",
		},
		{
			name:     "plain error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cerr.FromStorage(tt.err)
			assert.Equal(t, tt.wantCode, got.ErrorHTTPCode())
			assert.Equal(t, tt.wantMsg, got.Error())
		})
	}
}
