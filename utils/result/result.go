// Package result shapes rectangular query results into keyed documents.
package result

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmpty is returned by Normalize when the statement produced no rows.
var ErrEmpty = errors.New("result: no rows")

// Rows is a result set: column names in statement order and one value slice
// per row, each aligned with Columns.
type Rows struct {
	Columns []string
	Values  [][]any
}

// Record maps column names to the values of one row.
type Record map[string]any

// Cardinality tells Normalize which shape the caller expects.
type Cardinality int

const (
	// Infer picks Single for one row and Many for more.
	Infer Cardinality = iota
	// Single always yields one record, taken from the first row.
	Single
)

// Kind tags the shape held by a Document.
type Kind int

const (
	KindSingle Kind = iota + 1
	KindMany
)

// Document is a normalized result wrapped under Key. Exactly one of Record
// and Records is meaningful, selected by Kind.
type Document struct {
	Key     string
	Kind    Kind
	Record  Record
	Records []Record
}

// Normalize converts rows into a Document under key.
func Normalize(rows *Rows, key string, card Cardinality) (*Document, error) {
	if rows == nil || len(rows.Values) == 0 {
		return nil, ErrEmpty
	}

	if card == Single || len(rows.Values) == 1 {
		return &Document{
			Key:    key,
			Kind:   KindSingle,
			Record: toRecord(rows.Columns, rows.Values[0]),
		}, nil
	}

	return &Document{
		Key:  key,
		Kind: KindMany,
		Records: lo.Map(rows.Values, func(values []any, _ int) Record {
			return toRecord(rows.Columns, values)
		}),
	}, nil
}

// Len reports the number of records in the document.
func (d *Document) Len() int {
	if d.Kind == KindMany {
		return len(d.Records)
	}
	return 1
}

// MarshalJSON renders {"<key>": {...}} or {"<key>": [...]} depending on Kind.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.Kind == KindMany {
		return json.Marshal(map[string][]Record{d.Key: d.Records})
	}
	return json.Marshal(map[string]Record{d.Key: d.Record})
}

func toRecord(columns []string, values []any) Record {
	rec := make(Record, len(columns))
	for i, col := range columns {
		if i >= len(values) {
			rec[col] = nil
			continue
		}
		if b, ok := values[i].([]byte); ok {
			rec[col] = string(b)
			continue
		}
		rec[col] = values[i]
	}
	return rec
}
