// Package query assembles the SQL statements run by the API. Filter values
// are always bound through named placeholders; only tokens from closed
// enumerations reach clause position.
package query

import (
	"github.com/jmoiron/sqlx"
)

// Statement is SQL text with :name placeholders and the values bound to them.
type Statement struct {
	SQL  string
	Args map[string]any
}

// Compile resolves named placeholders into the positional form expected by
// the driver. rebind is usually the Rebind method of the connection.
func (s Statement) Compile(rebind func(string) string) (string, []any, error) {
	args := s.Args
	if args == nil {
		args = map[string]any{}
	}
	q, bound, err := sqlx.Named(s.SQL, args)
	if err != nil {
		return "", nil, err
	}
	return rebind(q), bound, nil
}

const (
	treasureListBase = `SELECT treasure_id, treasure_name, colour, age, cost_at_auction, shop_name
FROM treasures t
LEFT JOIN shops s ON t.shop_id = s.shop_id`

	distinctColours = `SELECT DISTINCT colour FROM treasures WHERE colour IS NOT NULL`

	insertTreasure = `INSERT INTO treasures (treasure_name, colour, age, cost_at_auction, shop_id)
VALUES (:name, :colour, :age, :cost, :shop_id)
RETURNING *`

	updateTreasureCost = `UPDATE treasures SET cost_at_auction = :cost WHERE treasure_id = :id
RETURNING *`

	deleteTreasure = `DELETE FROM treasures WHERE treasure_id = :id
RETURNING *`

	shopList = `WITH total_cost_per_shop AS (
	SELECT shop_id, SUM(cost_at_auction) AS stock_value, COUNT(treasure_id) AS treasure_count
	FROM treasures
	GROUP BY shop_id
)
SELECT s.shop_id, shop_name, slogan, stock_value, treasure_count
FROM shops s
LEFT JOIN total_cost_per_shop tc ON s.shop_id = tc.shop_id
ORDER BY s.shop_id ASC`
)
