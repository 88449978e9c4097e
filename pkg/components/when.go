package components

import "github.com/sprout-ui/sprout/pkg/dom"

// When creates a conditional node. Configuration keys:
//
//	"when" bool           — which branch renders
//	"then" func() *dom.Node — built when "when" is true
//	"else" func() *dom.Node — built when "when" is false (optional)
//
// The branches are factories rather than pre-built subtrees so each
// re-initialization renders a fresh branch; toggling leaks nothing from the
// previous branch.
func When(when bool, then, els func() *dom.Node) *dom.Node {
	return dom.New(whenVariant{}, dom.Options{
		"when": when,
		"then": then,
		"else": els,
	})
}

type whenVariant struct{}

func (whenVariant) Init(n *dom.Node) {
	branch := "else"
	if n.OptBool("when", false) {
		branch = "then"
	}
	n.Compose(dom.DefaultTag, nil, nil)
	if build, ok := n.Opt(branch).(func() *dom.Node); ok && build != nil {
		n.Append(build())
	}
}
