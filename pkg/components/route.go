package components

import (
	"strings"

	"github.com/sprout-ui/sprout/pkg/dom"
)

// RouteDef maps a path pattern to a sub-tree factory. Patterns are
// slash-separated; a segment starting with ':' captures the corresponding
// path segment as a named parameter.
type RouteDef struct {
	Pattern string
	Render  func(params map[string]string) *dom.Node
}

// Router creates a route node. Configuration keys:
//
//	"path"     string          — current path
//	"routes"   []RouteDef      — tried in order, first match wins
//	"notFound" func() *dom.Node — rendered when nothing matches (optional)
//
// Navigation is an update: Navigate(n, "/users/42") re-renders the route
// node in place with the new path.
func Router(path string, routes []RouteDef) *dom.Node {
	return dom.New(routeVariant{}, dom.Options{
		"path":   path,
		"routes": routes,
	})
}

// Navigate updates a route node's current path.
func Navigate(n *dom.Node, path string) error {
	return n.Update(dom.Options{"path": path})
}

type routeVariant struct{}

func (routeVariant) Init(n *dom.Node) {
	n.Compose(dom.DefaultTag, nil, "route")

	path := n.OptString("path", "/")
	routes, _ := n.Opt("routes").([]RouteDef)
	for _, r := range routes {
		if params, ok := matchRoute(r.Pattern, path); ok {
			if r.Render != nil {
				n.Append(r.Render(params))
			}
			return
		}
	}
	if notFound, ok := n.Opt("notFound").(func() *dom.Node); ok && notFound != nil {
		n.Append(notFound())
	}
}

// matchRoute matches a concrete path against a pattern segment by segment.
func matchRoute(pattern, path string) (map[string]string, bool) {
	ps := splitPath(pattern)
	cs := splitPath(path)
	if len(ps) != len(cs) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range ps {
		if name, ok := strings.CutPrefix(seg, ":"); ok && name != "" {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = cs[i]
			continue
		}
		if seg != cs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
