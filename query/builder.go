package query

import (
	"fmt"
	"math"
	"strings"

	"github.com/muhammadheryan/rare-treasures/constant"
	"github.com/muhammadheryan/rare-treasures/model"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/samber/lo"
)

// DistinctColours lists the colours currently stored.
func DistinctColours() Statement {
	return Statement{SQL: distinctColours, Args: map[string]any{}}
}

// ListTreasures builds the filtered, ordered and paginated treasure list.
// knownColours is the live colour set and is only consulted when p.Colour is
// set; an unknown colour is a validation error rather than an empty page.
func ListTreasures(p TreasureParams, knownColours []string) (Statement, error) {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		return Statement{}, fmt.Errorf("query: sort column %d is not allowed", p.SortBy)
	}
	order, ok := sortOrders[p.Order]
	if !ok {
		return Statement{}, fmt.Errorf("query: sort order %d is not allowed", p.Order)
	}
	if p.Limit <= 0 || p.Page <= 0 {
		return Statement{}, fmt.Errorf("query: limit %d and page %d must be positive", p.Limit, p.Page)
	}
	// An offset that does not fit in an int lies past any table.
	if p.Page-1 > math.MaxInt/p.Limit {
		return Statement{}, errors.SetCustomError(constant.ErrPageNotFound)
	}

	var (
		sb         strings.Builder
		args       = map[string]any{}
		conditions []string
	)

	if p.Colour != "" {
		if !lo.ContainsBy(knownColours, func(c string) bool { return strings.EqualFold(c, p.Colour) }) {
			return Statement{}, errors.SetCustomError(constant.ErrUnknownColour)
		}
		conditions = append(conditions, "LOWER(colour) = :colour")
		args["colour"] = strings.ToLower(p.Colour)
	}
	if p.MaxAge != nil {
		conditions = append(conditions, "age <= CAST(:max_age AS BIGINT)")
		args["max_age"] = *p.MaxAge
	}
	if p.MinAge != nil {
		conditions = append(conditions, "age >= CAST(:min_age AS BIGINT)")
		args["min_age"] = *p.MinAge
	}

	sb.WriteString(treasureListBase)
	for i, cond := range conditions {
		if i == 0 {
			sb.WriteString("\nWHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(cond)
	}

	sb.WriteString("\nORDER BY ")
	sb.WriteString(column)
	sb.WriteString(" ")
	sb.WriteString(order)
	// treasure_id breaks ties so pages cut the same ordering.
	if column != sortColumns[SortByTreasureID] {
		sb.WriteString(", treasure_id ")
		sb.WriteString(order)
	}

	sb.WriteString("\nLIMIT :limit OFFSET :offset")
	args["limit"] = p.Limit
	args["offset"] = p.Offset()

	return Statement{SQL: sb.String(), Args: args}, nil
}

// InsertTreasure maps a new treasure onto the insert statement. Absent fields
// are bound as NULL and left for the database to accept or reject.
func InsertTreasure(t *model.NewTreasure) Statement {
	return Statement{
		SQL: insertTreasure,
		Args: map[string]any{
			"name":    deref(t.TreasureName),
			"colour":  deref(t.Colour),
			"age":     deref(t.Age),
			"cost":    deref(t.CostAtAuction),
			"shop_id": deref(t.ShopID),
		},
	}
}

// UpdateTreasureCost sets cost_at_auction of one treasure.
func UpdateTreasureCost(id int64, u *model.TreasureUpdate) Statement {
	return Statement{
		SQL: updateTreasureCost,
		Args: map[string]any{
			"cost": deref(u.CostAtAuction),
			"id":   id,
		},
	}
}

// DeleteTreasure removes one treasure.
func DeleteTreasure(id int64) Statement {
	return Statement{
		SQL:  deleteTreasure,
		Args: map[string]any{"id": id},
	}
}

// ListShops returns every shop with its stock aggregates, ordered by shop_id.
func ListShops() Statement {
	return Statement{SQL: shopList, Args: map[string]any{}}
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
