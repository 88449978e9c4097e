// Package el provides the tag-factory DSL for sprout.
//
// Element constructors are variadic: arguments are classified by type into
// attributes, classes, listeners, and children, in any order:
//
//	el.Div(el.Class("card"),
//	    el.H1("Title"),
//	    el.Button(el.OnClick(handler), "Save"),
//	)
//
// A constructor returns a normal dom.Node whose initialization recomposes
// from the captured arguments, so Update re-renders it like any variant.
package el

import (
	"github.com/sprout-ui/sprout/pkg/dom"
)

// ClassList marks a variadic argument as class names.
type ClassList []string

// Class builds a ClassList argument.
func Class(names ...string) ClassList {
	return ClassList(names)
}

// El creates a container element with the given tag. Arguments are
// classified by type: dom.Attr and []dom.Attr become attributes, ClassList
// and []dom.Toggle become classes, dom.Listener becomes a pending event
// registration, strings and nodes and leaves become children (a single
// string child becomes literal content). nil arguments are ignored so
// conditional pieces can be passed directly.
func El(tag string, args ...any) *dom.Node {
	return dom.New(dom.InitFunc(func(n *dom.Node) {
		compose(n, tag, args)
	}), nil)
}

// Void creates a self-closing element (no inner content, no closing tag).
func Void(tag string, args ...any) *dom.Node {
	return dom.New(dom.InitFunc(func(n *dom.Node) {
		compose(n, tag, args)
		n.SetMode(dom.ModeSelfClosing)
	}), nil)
}

// StartTag creates an element that serializes as a bare opening bracket and
// tag name only. It exists for markup-splicing edge cases; the node carries
// no identity marker in its output and cannot be located or updated live.
func StartTag(tag string) *dom.Node {
	return dom.New(dom.InitFunc(func(n *dom.Node) {
		compose(n, tag, nil)
		n.SetMode(dom.ModeStartTagOnly)
	}), nil)
}

// compose classifies args and shapes n in one Compose call, then applies
// listener registrations (Compose resets them along with the rest of the
// shape, so they must come after).
func compose(n *dom.Node, tag string, args []any) {
	var (
		attrs     []dom.Attr
		classes   []string
		kids      []any
		listeners []dom.Listener
	)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case dom.Attr:
			attrs = append(attrs, v)
		case []dom.Attr:
			attrs = append(attrs, v...)
		case ClassList:
			classes = append(classes, v...)
		case dom.Toggle:
			if v.On {
				classes = append(classes, v.Name)
			}
		case []dom.Toggle:
			for _, t := range v {
				if t.On {
					classes = append(classes, t.Name)
				}
			}
		case dom.Listener:
			listeners = append(listeners, v)
		case string, *dom.Node, dom.Markup, dom.Text, []*dom.Node:
			kids = append(kids, v)
		}
	}

	n.Compose(tag, attrs, classes, kids...)
	for _, l := range listeners {
		if l.Capture {
			n.OnCapture(l.Event, l.Fn)
		} else {
			n.On(l.Event, l.Fn)
		}
	}
}
