// Package sprout provides the public API for the sprout component library.
//
// This is the recommended import for most applications:
//
//	import "github.com/sprout-ui/sprout"
//
// Usage:
//
//	n := sprout.New(myVariant{}, sprout.Options{"value": 3})
//	html := n.Serialize()
//	err := n.Mount(doc, "#app")
//	err = n.Update(sprout.Options{"value": 4})
//
// The subpackages hold the full surface: pkg/dom is the core node model,
// pkg/el the tag-factory DSL, pkg/components the built-in variants, pkg/host
// the host-document boundary with its in-memory and live implementations,
// pkg/server the WebSocket session server, and pkg/export static rendering.
package sprout

import (
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/host"
)

// Node is a UI tree node. See pkg/dom.
type Node = dom.Node

// Options is a node's configuration mapping.
type Options = dom.Options

// Initializer shapes a node from its configuration.
type Initializer = dom.Initializer

// InitFunc adapts a function to Initializer.
type InitFunc = dom.InitFunc

// Attr is one serialized attribute.
type Attr = dom.Attr

// Toggle is one ordered class-name/boolean pair.
type Toggle = dom.Toggle

// Markup is a raw, pre-serialized child fragment.
type Markup = dom.Markup

// Text is an escaped text child.
type Text = dom.Text

// Listener is a pending event registration.
type Listener = dom.Listener

// Document is the host-document boundary. See pkg/host.
type Document = host.Document

// Event is a host event delivered to a listener.
type Event = host.Event

// Render modes.
const (
	ModeNormal       = dom.ModeNormal
	ModeSelfClosing  = dom.ModeSelfClosing
	ModeStartTagOnly = dom.ModeStartTagOnly
)

// New creates a node with a fresh identity. See dom.New.
func New(v Initializer, opts Options) *Node {
	return dom.New(v, opts)
}

// Generate produces a random identity of the given length. See dom.Generate.
func Generate(length int) string {
	return dom.Generate(length)
}

// Omit marks an attribute value as absent; the attribute is skipped entirely.
var Omit = dom.Omit
