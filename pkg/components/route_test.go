package components_test

import (
	"testing"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/domtest"
	"github.com/sprout-ui/sprout/pkg/el"
)

func demoRoutes() []components.RouteDef {
	return []components.RouteDef{
		{Pattern: "/", Render: func(map[string]string) *dom.Node {
			return el.P("home")
		}},
		{Pattern: "/users/:id", Render: func(params map[string]string) *dom.Node {
			return el.P("user " + params["id"])
		}},
		{Pattern: "/users/:id/posts/:post", Render: func(params map[string]string) *dom.Node {
			return el.P("post " + params["post"] + " by " + params["id"])
		}},
	}
}

func TestRouterMatchesFirst(t *testing.T) {
	n := components.Router("/", demoRoutes())
	domtest.ExpectContains(t, n.Serialize(), "home")
}

func TestRouterCapturesParams(t *testing.T) {
	n := components.Router("/users/42", demoRoutes())
	domtest.ExpectContains(t, n.Serialize(), "user 42")

	n = components.Router("/users/7/posts/99", demoRoutes())
	domtest.ExpectContains(t, n.Serialize(), "post 99 by 7")
}

func TestRouterNoMatch(t *testing.T) {
	n := components.Router("/missing", demoRoutes())
	domtest.ExpectNotContains(t, n.Serialize(), "<p")
}

func TestRouterNotFound(t *testing.T) {
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	r := components.Router("/", demoRoutes())
	if err := r.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := r.Update(dom.Options{
		"path": "/missing",
		"notFound": func() *dom.Node {
			return el.P("nothing here")
		},
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	html, err := doc.ElementHTML(r.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	domtest.ExpectContains(t, html, "nothing here")
}

func TestNavigate(t *testing.T) {
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	r := components.Router("/", demoRoutes())
	if err := r.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if err := components.Navigate(r, "/users/42"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	html, err := doc.ElementHTML(r.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	domtest.ExpectContains(t, html, "user 42")
	domtest.ExpectNotContains(t, html, "home")
}

func TestTrailingSlashNormalized(t *testing.T) {
	n := components.Router("/users/42/", demoRoutes())
	domtest.ExpectContains(t, n.Serialize(), "user 42")
}
