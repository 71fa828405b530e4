package transport

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/muhammadheryan/rare-treasures/constant"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	validatorx "github.com/muhammadheryan/rare-treasures/utils/validator"
)

// readQuery copies query string values into the string fields of dst that
// carry a `query` tag.
func readQuery(r *http.Request, dst any) {
	values := r.URL.Query()
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Tag.Get("query")
		if name == "" || rv.Field(i).Kind() != reflect.String {
			continue
		}
		rv.Field(i).SetString(values.Get(name))
	}
}

// decodeBody decodes a JSON object into dst field by field so that every
// field with a wrong type is reported, not only the first one.
func decodeBody(r *http.Request, dst any) error {
	raw := map[string]jsoniter.RawMessage{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.SetCustomError(constant.ErrInvalidRequest).WithDetails("body field required")
		}
		return errors.SetCustomError(constant.ErrInvalidRequest).WithDetails("body should be a valid JSON object")
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	var details []string
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		value, ok := raw[name]
		if name == "" || !ok {
			continue
		}
		if err := json.Unmarshal(value, rv.Field(i).Addr().Interface()); err != nil {
			details = append(details, fmt.Sprintf("body %s should be a valid %s", name, typeName(rt.Field(i).Type)))
		}
	}

	if len(details) > 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(details...)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(validatorx.IntegerMessage("path", name))
	}
	return id, nil
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}
