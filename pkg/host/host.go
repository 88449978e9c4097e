// Package host defines the boundary between the logical node tree and the
// environment that displays it.
//
// The core needs exactly two capabilities from a hosting environment: locating
// a live node by the identity marker embedded in its markup, and splicing
// markup into (or removing it from) the live tree. Document expresses those
// capabilities plus listener attachment, which is how deferred event-listener
// registration reaches the live tree.
//
// Two implementations ship with sprout: memdoc (an in-memory live tree for
// tests and headless use) and livedoc (a WebSocket bridge to a browser).
package host

import "errors"

// IdentityAttr is the attribute that embeds a node's identity marker in its
// live representation. Documents locate live nodes by it.
const IdentityAttr = "data-sid"

// Handle is an opaque reference to a live node. Handles are only meaningful
// to the Document that produced them.
type Handle any

// Document is the host environment contract.
//
// All methods are synchronous from the caller's point of view: when a call
// returns nil, the logical operation has been accepted in order. Documents
// are not required to be safe for concurrent use; the component model is
// single-threaded by design and delivers one event at a time.
type Document interface {
	// SetContents replaces the contents of the container matched by
	// selector with the given markup.
	SetContents(selector, markup string) error

	// LookupByID returns a handle to the live node carrying the given
	// identity marker. Returns an error wrapping ErrNoLiveNode if no such
	// node exists.
	LookupByID(id string) (Handle, error)

	// InsertBefore splices markup into the live tree immediately before
	// the referenced node.
	InsertBefore(ref Handle, markup string) error

	// Remove detaches the referenced node (and its subtree) from the live
	// tree. Listener bindings on removed nodes are discarded with them.
	Remove(ref Handle) error

	// AddListener binds fn to the referenced node for the given event
	// type. Re-binding the same (node, event, capture) triple replaces the
	// previous binding rather than stacking a duplicate.
	AddListener(ref Handle, event string, capture bool, fn EventFunc) error
}

// Target describes the element an event originated on, which may be a
// descendant of the element the listener is bound to.
type Target struct {
	// ID is the identity marker of the origin element, if it has one.
	ID string

	// Value is the origin element's value attribute (form controls).
	Value string

	// Dataset holds the origin element's data-* attributes, keyed without
	// the "data-" prefix.
	Dataset map[string]string
}

// Event is delivered to registered listeners when the host environment
// dispatches an event.
type Event struct {
	Type   string
	Target Target
}

// EventFunc handles a dispatched event.
type EventFunc func(Event)

var (
	// ErrNoLiveNode reports that an identity has no live counterpart.
	// Hitting it from an update is a precondition violation by the caller:
	// the node was never mounted, or an ancestor's replace removed it.
	ErrNoLiveNode = errors.New("host: no live node for identity")

	// ErrBadHandle reports a handle that did not come from this document.
	ErrBadHandle = errors.New("host: handle does not belong to this document")

	// ErrNoContainer reports that SetContents found nothing matching the
	// selector.
	ErrNoContainer = errors.New("host: no container matches selector")

	// ErrClosed reports an operation on a closed document.
	ErrClosed = errors.New("host: document is closed")
)
