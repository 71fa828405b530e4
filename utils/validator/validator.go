package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

const (
	SortByPattern = `^(?i)(age|cost_at_auction|treasure_name|treasure_id)$`
	OrderPattern  = `^(?i)(ASC|DESC)$`
	AlphaPattern  = `^(?i)[a-z]+$`
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	sortByRegex = regexp.MustCompile(SortByPattern)
	orderRegex  = regexp.MustCompile(OrderPattern)

	patterns = map[string]string{
		"sort_by":    SortByPattern,
		"sort_order": OrderPattern,
		"alpha":      AlphaPattern,
	}
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(wireName)
	_ = v.RegisterValidation("sort_by", matches(sortByRegex))
	_ = v.RegisterValidation("sort_order", matches(orderRegex))
	_ = v.RegisterValidation("integer", isInteger)
	_ = v.RegisterValidation("positive_integer", isPositiveInteger)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldMessages renders one message per failed field, prefixed with the
// location the value was read from ("query", "body", "path").
func FieldMessages(err error, location string) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe, location))
	}
	return msgs
}

// IntegerMessage is the message for a value that does not parse as an integer.
func IntegerMessage(location, field string) string {
	return fmt.Sprintf("%s %s should be a valid integer, unable to parse string as an integer", location, field)
}

func fieldMessage(fe gpvalidator.FieldError, location string) string {
	switch fe.Tag() {
	case "sort_by", "sort_order", "alpha":
		return fmt.Sprintf("%s %s should match pattern '%s'", location, fe.Field(), patterns[fe.Tag()])
	case "integer":
		return IntegerMessage(location, fe.Field())
	case "positive_integer":
		if _, err := strconv.Atoi(fmt.Sprint(fe.Value())); err != nil {
			return IntegerMessage(location, fe.Field())
		}
		return fmt.Sprintf("%s %s should be greater than 0", location, fe.Field())
	default:
		return fmt.Sprintf("%s %s failed on the '%s' rule", location, fe.Field(), fe.Tag())
	}
}

// wireName reports fields by the name they carry on the wire.
func wireName(fld reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func matches(re *regexp.Regexp) gpvalidator.Func {
	return func(fl gpvalidator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func isInteger(fl gpvalidator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

func isPositiveInteger(fl gpvalidator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n > 0
}
