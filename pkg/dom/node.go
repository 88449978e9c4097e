package dom

import (
	"github.com/sprout-ui/sprout/pkg/host"
)

// RenderMode selects the serialization shape of a node.
type RenderMode uint8

const (
	// ModeNormal emits an opening tag, inner markup, and a closing tag.
	ModeNormal RenderMode = iota
	// ModeSelfClosing emits a self-terminating tag with no inner markup.
	ModeSelfClosing
	// ModeStartTagOnly emits only the opening angle bracket and tag name.
	ModeStartTagOnly
)

// String returns the string representation of the RenderMode.
func (m RenderMode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeSelfClosing:
		return "SelfClosing"
	case ModeStartTagOnly:
		return "StartTagOnly"
	default:
		return "Unknown"
	}
}

// DefaultTag is the generic container tag a reset node starts from.
const DefaultTag = "div"

// Options is a node's backing configuration. Update merges partial options
// into a fresh copy, so holding a reference to an Options value passed to New
// never observes later updates.
type Options map[string]any

// Initializer recomputes a node's shape from its backing options. It is the
// single polymorphic capability behind all specialized node variants:
// built-ins, tag-factory nodes, and user-defined composites alike.
//
// Init is re-run in full on every Update. It must call Node.Reset (directly
// or via Compose conventions), derive everything from the node's options, and
// accumulate nothing across calls.
type Initializer interface {
	Init(n *Node)
}

// InitFunc adapts a function to the Initializer interface.
type InitFunc func(n *Node)

// Init implements Initializer.
func (f InitFunc) Init(n *Node) { f(n) }

// Listener is a pending event-listener registration awaiting attachment to
// the node's live counterpart.
type Listener struct {
	Event   string
	Capture bool
	Fn      host.EventFunc
}

// Node is the core tree element: one piece of structured markup plus its
// behavior hooks.
type Node struct {
	id         string
	tag        string
	attrs      []Attr
	classes    []string
	content    string
	hasContent bool
	children   []Child
	parent     *Node
	listeners  []Listener
	mode       RenderMode
	opts       Options
	variant    Initializer
	doc        host.Document
}

// New creates a node with the given variant and backing options, assigns it
// a fresh identity, and runs initialization. Both arguments may be nil: a
// plain node starts as an empty default container and is shaped by Compose.
func New(v Initializer, opts Options) *Node {
	n := &Node{
		id:      Generate(IDLength),
		variant: v,
		opts:    cloneOptions(opts),
	}
	n.Reset()
	if v != nil {
		v.Init(n)
	}
	return n
}

func cloneOptions(opts Options) Options {
	out := make(Options, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	return out
}

// Reset restores the node to the default empty container: default tag, no
// attributes, no classes, an empty (but set) child sequence, no content, no
// pending listeners, normal render mode. Identity, backing options, variant,
// and document binding are preserved.
//
// Variant Init implementations rely on Compose calling Reset first; a variant
// that builds its shape incrementally must call Reset itself.
func (n *Node) Reset() *Node {
	n.tag = DefaultTag
	n.attrs = nil
	n.classes = nil
	n.content = ""
	n.hasContent = false
	n.children = []Child{}
	n.listeners = nil
	n.mode = ModeNormal
	return n
}

// Compose resets the node and sets its full shape in one call.
//
// classes accepts a space-delimited string, an ordered []string, or an
// ordered boolean mapping ([]Toggle); see normalizeClasses.
//
// If exactly one child argument is given and it is a plain string, it becomes
// the node's literal text content and the child sequence stays empty.
// Otherwise every argument is treated as a child: *Node children get their
// parent back-reference set, Markup and Text leaves are kept as-is, and any
// stray string becomes a Text leaf. Content and children are mutually
// exclusive; when a later Compose sets content, it wins and children are
// never serialized.
//
// Returns the node for chaining.
func (n *Node) Compose(tag string, attrs []Attr, classes any, kids ...any) *Node {
	n.Reset()
	if tag != "" {
		n.tag = tag
	}
	n.attrs = attrs
	n.classes = normalizeClasses(classes)

	if len(kids) == 1 {
		if text, ok := kids[0].(string); ok {
			n.content = text
			n.hasContent = true
			return n
		}
	}
	for _, kid := range kids {
		n.Append(kid)
	}
	return n
}

// Append adds one child to the node. nil children are ignored so callers can
// pass the result of a conditional directly.
func (n *Node) Append(kid any) *Node {
	switch v := kid.(type) {
	case nil:
	case *Node:
		if v != nil {
			v.parent = n
			n.children = append(n.children, v)
		}
	case Markup:
		n.children = append(n.children, v)
	case Text:
		n.children = append(n.children, v)
	case string:
		n.children = append(n.children, Text(v))
	case []*Node:
		for _, c := range v {
			n.Append(c)
		}
	}
	return n
}

// On appends a pending bubble-phase listener registration. Nothing touches
// the live tree until Mount or Update binds the registrations.
func (n *Node) On(event string, fn host.EventFunc) *Node {
	n.listeners = append(n.listeners, Listener{Event: event, Fn: fn})
	return n
}

// OnCapture appends a pending capture-phase listener registration.
func (n *Node) OnCapture(event string, fn host.EventFunc) *Node {
	n.listeners = append(n.listeners, Listener{Event: event, Capture: true, Fn: fn})
	return n
}

// SetMode sets the render mode. Returns the node for chaining.
func (n *Node) SetMode(mode RenderMode) *Node {
	n.mode = mode
	return n
}

// Mode returns the render mode.
func (n *Node) Mode() RenderMode { return n.mode }

// ID returns the node's identity. It is assigned at construction and never
// changes for the node's lifetime.
func (n *Node) ID() string { return n.id }

// Tag returns the element tag.
func (n *Node) Tag() string { return n.tag }

// Parent returns the owning node, or nil for a root. The back-reference is
// for upward traversal only; ownership flows top-down.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child sequence. Nil when the node has literal text
// content instead.
func (n *Node) Children() []Child {
	if n.hasContent {
		return nil
	}
	return n.children
}

// Content returns the literal text content and whether it is set.
func (n *Node) Content() (string, bool) {
	return n.content, n.hasContent
}

// ClassList returns the ordered class list.
func (n *Node) ClassList() []string { return n.classes }

// Listeners returns the pending listener registrations in order.
func (n *Node) Listeners() []Listener { return n.listeners }

// Options returns the backing configuration. Treat it as read-only; Update
// is the only sanctioned way to change it.
func (n *Node) Options() Options { return n.opts }

// Opt returns one backing option, or nil when absent.
func (n *Node) Opt(key string) any { return n.opts[key] }

// OptString returns a string option, or def when absent or mistyped.
func (n *Node) OptString(key, def string) string {
	if v, ok := n.opts[key].(string); ok {
		return v
	}
	return def
}

// OptBool returns a bool option, or def when absent or mistyped.
func (n *Node) OptBool(key string, def bool) bool {
	if v, ok := n.opts[key].(bool); ok {
		return v
	}
	return def
}

// OptInt returns an integer option, or def when absent or mistyped. Numeric
// widenings that survive a round-trip through generic configuration (int64,
// float64) are accepted.
func (n *Node) OptInt(key string, def int) int {
	switch v := n.opts[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}
