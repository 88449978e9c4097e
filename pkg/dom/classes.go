package dom

import "strings"

// Toggle is one entry of the ordered boolean class mapping accepted by
// Compose. Go maps do not preserve insertion order, so the mapping form is a
// slice of pairs.
type Toggle struct {
	Name string
	On   bool
}

// Classes builds the ordered-sequence class form.
func Classes(names ...string) []string {
	return names
}

// normalizeClasses converts the three accepted class shapes to an ordered
// class list:
//   - string: split on spaces (empty entries dropped)
//   - []string: used as-is
//   - []Toggle: names whose flag is true, in slice order
//
// nil yields an empty list. Any other type is ignored the same way.
func normalizeClasses(classes any) []string {
	switch v := classes.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		return v
	case []Toggle:
		out := make([]string, 0, len(v))
		for _, t := range v {
			if t.On {
				out = append(out, t.Name)
			}
		}
		return out
	default:
		return nil
	}
}
