package components

import "github.com/sprout-ui/sprout/pkg/dom"

// List creates a list node. Configuration keys:
//
//	"items"  []any                         — source sequence
//	"render" func(item any, i int) *dom.Node — per-item mapping
//	"tag"    string                        — container tag (default "ul")
//
// The children always exactly match the latest source sequence: an empty
// source serializes to a bare opening/closing tag pair, and an Update with a
// shorter sequence shrinks the list rather than appending.
func List(items []any, render func(item any, i int) *dom.Node) *dom.Node {
	return dom.New(listVariant{}, dom.Options{
		"items":  items,
		"render": render,
	})
}

type listVariant struct{}

func (listVariant) Init(n *dom.Node) {
	n.Compose(n.OptString("tag", "ul"), nil, nil)

	items, _ := n.Opt("items").([]any)
	render, _ := n.Opt("render").(func(item any, i int) *dom.Node)
	if render == nil {
		return
	}
	for i, item := range items {
		n.Append(render(item, i))
	}
}
