package constant

type contextKey string

const RequestIDKey contextKey = "request_id"

// List defaults applied when the query string omits a parameter.
const (
	DefaultLimit = 5
	DefaultPage  = 1
)

// Keys wrapping normalized rows in response documents.
const (
	KeyTreasures = "treasures"
	KeyTreasure  = "treasure"
	KeyShops     = "shops"
)
