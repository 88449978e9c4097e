package components_test

import (
	"strings"
	"testing"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/domtest"
)

func TestChoiceGrouped(t *testing.T) {
	n := components.Choice(components.ChoiceConfig{
		Name:     "fruit",
		Items:    []any{"apple", "pear"},
		Grouped:  true,
		Selected: "pear",
	})
	html := n.Serialize()

	domtest.ExpectElement(t, html, "fieldset")
	if got := strings.Count(html, `type="radio"`); got != 2 {
		t.Fatalf("%d radio inputs, want 2:\n%s", got, html)
	}
	if got := strings.Count(html, `name="fruit"`); got != 2 {
		t.Errorf("%d grouped names, want 2:\n%s", got, html)
	}
	// Only the selected item carries the checked attribute.
	if got := strings.Count(html, " checked"); got != 1 {
		t.Errorf("%d checked inputs, want 1:\n%s", got, html)
	}
	domtest.ExpectContains(t, html, ">apple</label>")
}

func TestChoiceSelect(t *testing.T) {
	n := components.Choice(components.ChoiceConfig{
		Name:     "fruit",
		Items:    []any{"apple", "pear", "plum"},
		Selected: "plum",
	})
	html := n.Serialize()

	domtest.ExpectElement(t, html, "select")
	if got := strings.Count(html, "<option"); got != 3 {
		t.Fatalf("%d options, want 3:\n%s", got, html)
	}
	if got := strings.Count(html, " selected"); got != 1 {
		t.Errorf("%d selected options, want 1:\n%s", got, html)
	}
	domtest.ExpectContains(t, html, ">pear</option>")
}

func TestChoiceCustomLabelValue(t *testing.T) {
	type fruit struct {
		Code  string
		Label string
	}
	n := components.Choice(components.ChoiceConfig{
		Name:  "fruit",
		Items: []any{fruit{"ap", "Apple"}, fruit{"pe", "Pear"}},
		Label: func(item any) string { return item.(fruit).Label },
		Value: func(item any) string { return item.(fruit).Code },
	})
	html := n.Serialize()

	domtest.ExpectAttribute(t, html, "value", "ap")
	domtest.ExpectContains(t, html, ">Apple</option>")
}

func TestChoiceUpdateSelection(t *testing.T) {
	doc := domtest.NewDoc(t, `<div id="app"></div>`)

	n := components.Choice(components.ChoiceConfig{
		Name:     "fruit",
		Items:    []any{"apple", "pear"},
		Selected: "apple",
	})
	if err := n.Mount(doc, "#app"); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := n.Update(dom.Options{"selected": "pear"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	html, err := doc.ElementHTML(n.ID())
	if err != nil {
		t.Fatalf("ElementHTML: %v", err)
	}
	// memdoc renders bare attributes as key="".
	pearAt := strings.Index(html, `value="pear" selected`)
	if pearAt < 0 {
		t.Errorf("pear not selected after update:\n%s", html)
	}
	if got := strings.Count(html, " selected"); got != 1 {
		t.Errorf("%d selected options after update, want 1:\n%s", got, html)
	}
}
