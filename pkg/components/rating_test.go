package components_test

import (
	"strings"
	"testing"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/domtest"
)

func filledCount(html string) int {
	return strings.Count(html, `class="filled"`)
}

func TestRatingRenders(t *testing.T) {
	n := components.Rating(2, 5)
	html := n.Serialize()
	if got := strings.Count(html, "<span"); got != 5 {
		t.Fatalf("rendered %d positions, want 5:\n%s", got, html)
	}
	if got := filledCount(html); got != 2 {
		t.Errorf("%d filled positions, want 2:\n%s", got, html)
	}
	domtest.ExpectAttribute(t, html, "data-value", "5")
}

func TestRatingDefaultsMax(t *testing.T) {
	n := components.Rating(1, 0)
	html := n.Serialize()
	if got := strings.Count(html, "<span"); got != 5 {
		t.Errorf("rendered %d positions with max 0, want default 5", got)
	}
}

func TestRatingClickUpdatesInPlace(t *testing.T) {
	domtest.Deterministic(t)
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	// Root is n1; the five position spans are n2 through n6.
	n := components.Rating(2, 5)
	if err := n.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	id := n.ID()

	// Click the fourth position; the event bubbles from the span to the
	// container listener, which re-renders the widget in place.
	if err := doc.Dispatch("n5", "click"); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if n.ID() != id {
		t.Fatalf("identity changed across click update: %q -> %q", id, n.ID())
	}
	html, err := doc.ElementHTML(id)
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	if got := filledCount(html); got != 4 {
		t.Errorf("%d filled positions after click, want 4:\n%s", got, html)
	}
	if got := strings.Count(doc.HTML(), `data-sid="`+id+`"`); got != 1 {
		t.Errorf("identity %q appears %d times, want 1", id, got)
	}
}

func TestRatingSecondClick(t *testing.T) {
	domtest.Deterministic(t)
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	n := components.Rating(0, 3)
	if err := n.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	// First click on position 3 (span n4), then on position 1. The second
	// click exercises the re-bound listener on the replaced widget; its
	// spans are n5 through n7.
	if err := doc.Dispatch("n4", "click"); err != nil {
		t.Fatalf("first Dispatch: %v", err)
	}
	if err := doc.Dispatch("n5", "click"); err != nil {
		t.Fatalf("second Dispatch: %v", err)
	}

	html, err := doc.ElementHTML(n.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	if got := filledCount(html); got != 1 {
		t.Errorf("%d filled positions after second click, want 1:\n%s", got, html)
	}
}
