// Package querycodec maps between structured parameters and flat query strings.
//
// Encoding drops falsy values, so a caller cannot distinguish an explicit
// zero or false from an unset parameter.
package querycodec

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Params is an unordered set of named query values.
type Params map[string]any

// Encode renders params as a URL-encoded query string with keys sorted.
// Falsy values (nil, "", 0, NaN, false, nil pointers, empty slices) are omitted.
// String slices are comma-joined.
func Encode(params Params) string {
	values := url.Values{}
	for key, value := range params {
		s, ok := format(value)
		if !ok {
			continue
		}
		values.Set(key, s)
	}
	return values.Encode()
}

// Decode parses a raw query string. When a key repeats, the last value wins.
func Decode(query string) (map[string]string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, fmt.Errorf("querycodec: invalid query: %w", err)
	}

	decoded := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		decoded[key] = vs[len(vs)-1]
	}
	return decoded, nil
}

// format returns the wire form of value and whether it is truthy.
func format(value any) (string, bool) {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}

	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "true", v
	case int:
		return strconv.Itoa(v), v != 0
	case int64:
		return strconv.FormatInt(v, 10), v != 0
	case float64:
		if v == 0 || math.IsNaN(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return strings.Join(v, ","), true
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		return format(rv.Elem().Interface())
	}
	if rv.IsZero() {
		return "", false
	}
	return fmt.Sprint(value), true
}
