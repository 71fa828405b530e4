package treasure_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rare-treasures/query"
	treasurerepo "github.com/muhammadheryan/rare-treasures/repository/treasure"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConn(t *testing.T) (*sqlx.Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn, err := sqlx.NewDb(db, "pgx").Connx(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

func TestTreasureRepository_ListColoursConn(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []string
		expectErr bool
	}{
		{
			name: "null colours are skipped",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT colour FROM treasures")).
					WillReturnRows(sqlmock.NewRows([]string{"colour"}).
						AddRow("gold").
						AddRow(nil).
						AddRow("onyx"))
			},
			want: []string{"gold", "onyx"},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT DISTINCT colour").WillReturnError(assert.AnError)
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConn(t)
			tt.setupMock(mock)

			got, err := treasurerepo.NewTreasureRepository().ListColoursConn(context.Background(), conn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTreasureRepository_QueryConn(t *testing.T) {
	conn, mock := newConn(t)

	params := query.DefaultTreasureParams()
	params.Colour = "Gold"
	params.MinAge = lo.ToPtr(10)
	params.Page = 2
	stmt, err := query.ListTreasures(params, []string{"gold"})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(colour) = $1 AND age >= CAST($2 AS BIGINT)\nORDER BY age ASC, treasure_id ASC\nLIMIT $3 OFFSET $4")).
		WithArgs("gold", 10, 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"treasure_id", "treasure_name", "colour", "age", "cost_at_auction", "shop_name"}).
			AddRow(int64(6), "ancient vase", "gold", int64(20), 40.5, "Shop A").
			AddRow(int64(9), "carved chest", "gold", int64(35), 12.0, "Shop B"))

	rows, err := treasurerepo.NewTreasureRepository().QueryConn(context.Background(), conn, stmt)
	require.NoError(t, err)
	assert.Len(t, rows.Values, 2)
	assert.Equal(t, "shop_name", rows.Columns[5])
	assert.NoError(t, mock.ExpectationsWereMet())
}
