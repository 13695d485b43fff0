package clients

import (
	"fmt"
	"net/url"
	"strconv"
)

// Params is an unencoded query-parameter set for an upstream request.
// Nil values and empty strings are dropped at encode time; everything
// else is stringified.
type Params map[string]any

// Encode serializes the set into a canonical query string. Keys come out
// in sorted order, so identical input always yields identical output.
// Returns "" when nothing survives the filtering.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	values := url.Values{}
	for key, raw := range p {
		s, ok := stringify(raw)
		if !ok || s == "" {
			continue
		}
		values.Set(key, s)
	}
	return values.Encode()
}

func stringify(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
