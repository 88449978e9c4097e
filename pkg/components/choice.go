package components

import (
	"fmt"

	"github.com/sprout-ui/sprout/pkg/dom"
)

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}

// ChoiceConfig is the configuration of a choice node.
type ChoiceConfig struct {
	// Name groups the rendered controls (radio group name / select name).
	Name string

	// Items is the source sequence.
	Items []any

	// Label and Value map an item to its visible label and submitted
	// value. When nil, both default to string conversion of the item.
	Label func(item any) string
	Value func(item any) string

	// Grouped selects between a grouped-choice rendering (radio inputs
	// with labels) and a single-list rendering (select with options).
	Grouped bool

	// Selected is the value of the currently selected item, if any.
	Selected string
}

// Choice creates a choice node. Configuration keys mirror ChoiceConfig:
// "name", "items", "label", "value", "grouped", "selected".
func Choice(cfg ChoiceConfig) *dom.Node {
	return dom.New(choiceVariant{}, dom.Options{
		"name":     cfg.Name,
		"items":    cfg.Items,
		"label":    cfg.Label,
		"value":    cfg.Value,
		"grouped":  cfg.Grouped,
		"selected": cfg.Selected,
	})
}

type choiceVariant struct{}

func (choiceVariant) Init(n *dom.Node) {
	name := n.OptString("name", "")
	selected := n.OptString("selected", "")
	items, _ := n.Opt("items").([]any)
	label := itemString(n.Opt("label"))
	value := itemString(n.Opt("value"))

	if n.OptBool("grouped", false) {
		n.Compose("fieldset", nil, "choice-group")
		for _, item := range items {
			v := value(item)
			input := dom.New(nil, nil).Compose("input", dom.Attrs(
				dom.Attr{Key: "type", Val: "radio"},
				dom.Attr{Key: "name", Val: name},
				dom.Attr{Key: "value", Val: v},
				checkedIf(v == selected),
			), nil).SetMode(dom.ModeSelfClosing)
			n.Append(dom.New(nil, nil).
				Compose("label", nil, "choice-item", input, dom.Text(label(item))))
		}
		return
	}

	n.Compose("select", dom.Attrs(dom.Attr{Key: "name", Val: name}), "choice-list")
	for _, item := range items {
		v := value(item)
		n.Append(dom.New(nil, nil).Compose("option", dom.Attrs(
			dom.Attr{Key: "value", Val: v},
			selectedIf(v == selected),
		), nil, label(item)))
	}
}

func checkedIf(on bool) dom.Attr {
	if on {
		return dom.Attr{Key: "checked", Val: nil}
	}
	return dom.Attr{Key: "checked", Val: dom.Omit}
}

func selectedIf(on bool) dom.Attr {
	if on {
		return dom.Attr{Key: "selected", Val: nil}
	}
	return dom.Attr{Key: "selected", Val: dom.Omit}
}

func itemString(fn any) func(any) string {
	if f, ok := fn.(func(item any) string); ok && f != nil {
		return f
	}
	return func(item any) string {
		if s, ok := item.(string); ok {
			return s
		}
		return stringify(item)
	}
}
