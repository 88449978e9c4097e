// Package livedoc bridges a host document to a live browser page over a
// WebSocket connection.
//
// Each host.Document operation becomes one JSON op message; the browser-side
// client applies ops in order and reports events from listened elements back
// as event messages, which Dispatch routes to the registered Go handlers.
//
// The document cannot query the browser synchronously, so it mirrors every
// spliced fragment into an in-memory tree (memdoc) and consults the mirror
// for lookups. The mirror evolves exactly as the page does: an update's
// remove detaches the precise stale element, retiring its whole subtree, so
// a later lookup of a replaced descendant fails with host.ErrNoLiveNode
// instead of emitting ops the page would silently drop.
package livedoc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sprout-ui/sprout/pkg/host"
	"github.com/sprout-ui/sprout/pkg/host/memdoc"
)

// Op is one operation applied to the browser document.
type Op struct {
	// Op is one of "setContents", "insertBefore", "remove", "listen".
	Op string `json:"op"`

	// Selector targets the container for setContents.
	Selector string `json:"selector,omitempty"`

	// SID is the identity marker of the referenced element.
	SID string `json:"sid,omitempty"`

	// Markup is the spliced fragment for setContents and insertBefore.
	Markup string `json:"markup,omitempty"`

	// Event and Capture describe a listen registration.
	Event   string `json:"event,omitempty"`
	Capture bool   `json:"capture,omitempty"`
}

// ClientEvent is an event message reported by the browser client. SID names
// the element whose listener fired; Target describes the element the event
// originated on, which may be a descendant.
type ClientEvent struct {
	SID     string `json:"sid"`
	Type    string `json:"type"`
	Capture bool   `json:"capture,omitempty"`
	Target  struct {
		ID      string            `json:"id,omitempty"`
		Value   string            `json:"value,omitempty"`
		Dataset map[string]string `json:"dataset,omitempty"`
	} `json:"target"`
}

// Conn is the transport the document writes ops to. *websocket.Conn from
// gorilla/websocket satisfies it.
type Conn interface {
	WriteJSON(v any) error
}

type handlerKey struct {
	sid     string
	event   string
	capture bool
}

// ref is the handle type produced by LookupByID. It carries the mirror's own
// handle so splices resolve to the exact element, not just its identity.
type ref struct {
	sid    string
	mirror host.Handle
}

// Document implements host.Document over a Conn.
type Document struct {
	mu       sync.Mutex
	conn     Conn
	mirror   *memdoc.Document
	handlers map[handlerKey]host.EventFunc
	closed   bool

	// OnOp, when set, observes every op written to the connection. The
	// server uses it to count splice traffic.
	OnOp func(op Op)
}

// New creates a document writing ops to conn.
func New(conn Conn) *Document {
	return &Document{
		conn:     conn,
		handlers: make(map[handlerKey]host.EventFunc),
	}
}

// Close marks the document closed. Subsequent operations return
// host.ErrClosed. Close does not close the underlying connection; the owner
// of the connection does that.
func (d *Document) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// SetContents implements host.Document. The first SetContents establishes
// the mirror's container from the selector, mimicking the page shell.
func (d *Document) SetContents(selector, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return host.ErrClosed
	}
	if d.mirror == nil {
		mirror, err := memdoc.New(containerShell(selector))
		if err != nil {
			return fmt.Errorf("livedoc: %w", err)
		}
		d.mirror = mirror
	}
	if err := d.mirror.SetContents(selector, markup); err != nil {
		return fmt.Errorf("livedoc: %w", err)
	}
	return d.write(Op{Op: "setContents", Selector: selector, Markup: markup})
}

// containerShell synthesizes the mirror's container element for a selector.
func containerShell(selector string) string {
	if id, ok := strings.CutPrefix(selector, "#"); ok {
		return `<div id="` + id + `"></div>`
	}
	if selector == "body" {
		return ""
	}
	return "<" + selector + "></" + selector + ">"
}

// LookupByID implements host.Document. The mirror stands in for the page: an
// identity is live while its element is still attached there.
func (d *Document) LookupByID(id string) (host.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, host.ErrClosed
	}
	if d.mirror == nil {
		return nil, fmt.Errorf("livedoc: %q: %w", id, host.ErrNoLiveNode)
	}
	h, err := d.mirror.LookupByID(id)
	if err != nil {
		return nil, fmt.Errorf("livedoc: %q: %w", id, host.ErrNoLiveNode)
	}
	return ref{sid: id, mirror: h}, nil
}

// InsertBefore implements host.Document.
func (d *Document) InsertBefore(r host.Handle, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := r.(ref)
	if !ok || d.mirror == nil {
		return host.ErrBadHandle
	}
	if err := d.mirror.InsertBefore(h.mirror, markup); err != nil {
		return fmt.Errorf("livedoc: %w", err)
	}
	return d.write(Op{Op: "insertBefore", SID: h.sid, Markup: markup})
}

// Remove implements host.Document. The mirror handle pins the exact element,
// so removing after an update's insert detaches the stale subtree and
// retires every identity under it.
func (d *Document) Remove(r host.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := r.(ref)
	if !ok || d.mirror == nil {
		return host.ErrBadHandle
	}
	if err := d.mirror.Remove(h.mirror); err != nil {
		return fmt.Errorf("livedoc: %w", err)
	}
	return d.write(Op{Op: "remove", SID: h.sid})
}

// AddListener implements host.Document. Re-binding a (sid, event, capture)
// triple replaces the previous handler in the registry; the client likewise
// replaces its element-side listener, so re-running registrations after an
// update never stacks duplicates.
func (d *Document) AddListener(r host.Handle, event string, capture bool, fn host.EventFunc) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := r.(ref)
	if !ok {
		return host.ErrBadHandle
	}
	d.handlers[handlerKey{sid: h.sid, event: event, capture: capture}] = fn
	return d.write(Op{Op: "listen", SID: h.sid, Event: event, Capture: capture})
}

// Dispatch routes a client event to its registered handler. The handler runs
// without the document lock held, so it is free to update its node (which
// writes more ops). Returns an error when no handler matches, which means
// the client and the registry have drifted.
func (d *Document) Dispatch(ev ClientEvent) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return host.ErrClosed
	}
	fn := d.handlers[handlerKey{sid: ev.SID, event: ev.Type, capture: ev.Capture}]
	d.mu.Unlock()

	if fn == nil {
		return fmt.Errorf("livedoc: no handler for %s on %q", ev.Type, ev.SID)
	}
	fn(host.Event{
		Type: ev.Type,
		Target: host.Target{
			ID:      ev.Target.ID,
			Value:   ev.Target.Value,
			Dataset: ev.Target.Dataset,
		},
	})
	return nil
}

// write sends one op. Callers hold d.mu.
func (d *Document) write(op Op) error {
	if d.closed {
		return host.ErrClosed
	}
	if err := d.conn.WriteJSON(op); err != nil {
		return fmt.Errorf("livedoc: write %s: %w", op.Op, err)
	}
	if d.OnOp != nil {
		d.OnOp(op)
	}
	return nil
}
