package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrPageNotFound
	ErrNoDataGiven
	ErrTreasureNotFound
	ErrUnknownColour
	ErrStorageConstraint
	ErrMethodNotAllowed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "Internal Server Error",
	ErrNotFound:          "Not Found",
	ErrInvalidRequest:    "invalid request",
	ErrPageNotFound:      "Page Not Found",
	ErrNoDataGiven:       "There is no data given the request",
	ErrTreasureNotFound:  "There is no such treasure_id in the database",
	ErrUnknownColour:     "There is no such colour in the database, please try another one",
	ErrStorageConstraint: "storage constraint violated",
	ErrMethodNotAllowed:  "Method Not Allowed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusUnprocessableEntity,
	ErrPageNotFound:      http.StatusNotFound,
	ErrNoDataGiven:       http.StatusNotFound,
	ErrTreasureNotFound:  http.StatusNotFound,
	ErrUnknownColour:     http.StatusUnprocessableEntity,
	ErrStorageConstraint: http.StatusInternalServerError,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrPageNotFound:      "0004",
	ErrNoDataGiven:       "0005",
	ErrTreasureNotFound:  "0006",
	ErrUnknownColour:     "0007",
	ErrStorageConstraint: "0008",
	ErrMethodNotAllowed:  "0009",
}
