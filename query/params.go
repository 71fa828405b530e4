package query

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/rare-treasures/constant"
)

// SortColumn is a column the treasure list may be ordered by.
type SortColumn int

const (
	SortByAge SortColumn = iota
	SortByCostAtAuction
	SortByTreasureName
	SortByTreasureID
)

var sortColumns = map[SortColumn]string{
	SortByAge:           "age",
	SortByCostAtAuction: "cost_at_auction",
	SortByTreasureName:  "treasure_name",
	SortByTreasureID:    "treasure_id",
}

func (c SortColumn) String() string {
	return sortColumns[c]
}

// ParseSortColumn maps user input to a SortColumn, ignoring case.
func ParseSortColumn(s string) (SortColumn, error) {
	for col, name := range sortColumns {
		if strings.EqualFold(s, name) {
			return col, nil
		}
	}
	return 0, fmt.Errorf("query: unknown sort column %q", s)
}

// SortOrder is the direction of the ORDER BY clause.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

var sortOrders = map[SortOrder]string{
	Ascending:  "ASC",
	Descending: "DESC",
}

func (o SortOrder) String() string {
	return sortOrders[o]
}

// ParseSortOrder maps user input to a SortOrder, ignoring case.
func ParseSortOrder(s string) (SortOrder, error) {
	for order, kw := range sortOrders {
		if strings.EqualFold(s, kw) {
			return order, nil
		}
	}
	return 0, fmt.Errorf("query: unknown sort order %q", s)
}

// TreasureParams are the validated inputs of a treasure list request.
// A nil age bound means the filter is absent.
type TreasureParams struct {
	SortBy SortColumn
	Order  SortOrder
	Colour string
	MaxAge *int
	MinAge *int
	Limit  int
	Page   int
}

// DefaultTreasureParams returns the parameters used when the query string is empty.
func DefaultTreasureParams() TreasureParams {
	return TreasureParams{
		SortBy: SortByAge,
		Order:  Ascending,
		Limit:  constant.DefaultLimit,
		Page:   constant.DefaultPage,
	}
}

// Offset is the number of rows skipped before the requested page.
func (p TreasureParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
