package components_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/domtest"
	"github.com/sprout-ui/sprout/pkg/el"
)

func renderItem(item any, i int) *dom.Node {
	return el.Li(fmt.Sprintf("%v", item))
}

func TestListRendersItems(t *testing.T) {
	n := components.List([]any{"a", "b", "c"}, renderItem)
	html := n.Serialize()
	if got := strings.Count(html, "<li"); got != 3 {
		t.Errorf("rendered %d items, want 3:\n%s", got, html)
	}
	domtest.ExpectContains(t, html, ">a</li>")
	domtest.ExpectContains(t, html, ">c</li>")
}

func TestListEmptySerializesBareTags(t *testing.T) {
	domtest.Deterministic(t)

	n := components.List(nil, renderItem)
	want := `<ul data-sid="n1" class=""></ul>`
	if got := n.Serialize(); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestListCustomTag(t *testing.T) {
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	n := components.List([]any{"x"}, renderItem)
	if err := n.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := n.Update(dom.Options{"tag": "ol"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n.Tag() != "ol" {
		t.Errorf("Tag() = %q after tag update, want %q", n.Tag(), "ol")
	}
	html, err := doc.ElementHTML(n.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	domtest.ExpectElement(t, html, "ol")
}

func TestListGrowsAndShrinks(t *testing.T) {
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	n := components.List(nil, renderItem)
	if err := n.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if err := n.Update(dom.Options{"items": []any{"a", "b", "c"}}); err != nil {
		t.Fatalf("Update grow: %v", err)
	}
	html, err := doc.ElementHTML(n.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	if got := strings.Count(html, "<li"); got != 3 {
		t.Fatalf("grew to %d items, want 3:\n%s", got, html)
	}

	if err := n.Update(dom.Options{"items": []any{"z"}}); err != nil {
		t.Fatalf("Update shrink: %v", err)
	}
	html, err = doc.ElementHTML(n.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	if got := strings.Count(html, "<li"); got != 1 {
		t.Errorf("shrank to %d items, want 1:\n%s", got, html)
	}
	domtest.ExpectContains(t, html, ">z</li>")
	domtest.ExpectNotContains(t, html, ">a</li>")
}
