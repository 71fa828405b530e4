package model

// TreasureListRequest carries the raw query string of GET /api/treasures.
// Values stay strings until every field has passed validation.
type TreasureListRequest struct {
	SortBy string `query:"sort_by" validate:"omitempty,sort_by"`
	Order  string `query:"order" validate:"omitempty,sort_order"`
	Colour string `query:"colour" validate:"omitempty,alpha"`
	MaxAge string `query:"max_age" validate:"omitempty,integer"`
	MinAge string `query:"min_age" validate:"omitempty,integer"`
	Limit  string `query:"limit" validate:"omitempty,positive_integer"`
	Page   string `query:"page" validate:"omitempty,positive_integer"`
}

// NewTreasure is the body of POST /api/treasures. Every field is optional
// here; required columns are enforced by the database.
type NewTreasure struct {
	TreasureName  *string  `json:"treasure_name"`
	Colour        *string  `json:"colour"`
	Age           *int64   `json:"age"`
	CostAtAuction *float64 `json:"cost_at_auction"`
	ShopID        *int64   `json:"shop_id"`
}

// TreasureUpdate is the body of PATCH /api/treasures/{treasure_id}.
type TreasureUpdate struct {
	CostAtAuction *float64 `json:"cost_at_auction"`
}

// TreasureListItem documents a row of the treasure list.
type TreasureListItem struct {
	TreasureID    int64   `json:"treasure_id"`
	TreasureName  string  `json:"treasure_name"`
	Colour        string  `json:"colour"`
	Age           int64   `json:"age"`
	CostAtAuction float64 `json:"cost_at_auction"`
	ShopName      string  `json:"shop_name"`
}

// TreasureEntity documents a row of the treasures table as returned by
// write statements.
type TreasureEntity struct {
	TreasureID    int64   `json:"treasure_id"`
	TreasureName  string  `json:"treasure_name"`
	Colour        string  `json:"colour"`
	Age           int64   `json:"age"`
	CostAtAuction float64 `json:"cost_at_auction"`
	ShopID        int64   `json:"shop_id"`
}

type TreasureListResponse struct {
	Treasures []TreasureListItem `json:"treasures"`
}

type TreasureResponse struct {
	Treasure TreasureEntity `json:"treasure"`
}
