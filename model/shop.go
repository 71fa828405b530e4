package model

// ShopListItem documents a row of the shop list, aggregates included.
type ShopListItem struct {
	ShopID        int64   `json:"shop_id"`
	ShopName      string  `json:"shop_name"`
	Slogan        string  `json:"slogan"`
	StockValue    float64 `json:"stock_value"`
	TreasureCount int64   `json:"treasure_count"`
}

type ShopListResponse struct {
	Shops []ShopListItem `json:"shops"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail any    `json:"detail"`
}
