package dom

import "fmt"

// Attr is a single attribute. Attributes keep insertion order when
// serialized, which is why nodes carry a slice rather than a map.
//
// Val semantics:
//   - string: rendered as key="value"
//   - nil: rendered as a bare key (boolean-style attribute)
//   - Omit: the entry is skipped entirely
//   - anything else: string-converted, then rendered as key="value"
type Attr struct {
	Key string
	Val any
}

// omitted is the sentinel type behind Omit.
type omitted struct{}

// Omit marks an attribute entry to be dropped from serialized output. It
// exists so a fixed attribute list can switch entries off without reslicing.
var Omit = omitted{}

// Attrs builds an ordered attribute list.
func Attrs(attrs ...Attr) []Attr {
	return attrs
}

// attrString normalizes a non-nil, non-omitted attribute value to a string.
// Unexpected types are converted rather than rejected.
func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
