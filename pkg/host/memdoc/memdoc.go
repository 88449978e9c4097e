// Package memdoc provides an in-memory host document.
//
// It materializes spliced markup as a real element tree (parsed with
// htmltoken), so tests and headless consumers get the full live-tree
// contract: lookup by identity marker, insert-before/remove splicing,
// listener bindings that die with their element, and synthetic event
// dispatch with capture and bubble phases.
package memdoc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sprout-ui/sprout/pkg/host"
)

// listenerKey identifies one binding slot on an element. Re-binding the same
// slot replaces the previous function.
type listenerKey struct {
	event   string
	capture bool
}

// Element is one live node. A text node has an empty Tag and its literal in
// Text.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Text     string
	Children []*Element

	parent    *Element
	listeners map[listenerKey]host.EventFunc
}

// Attribute is a parsed attribute, insertion order preserved.
type Attribute struct {
	Key string
	Val string
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Document is an in-memory live tree implementing host.Document.
type Document struct {
	mu   sync.Mutex
	body *Element
}

// New creates a document whose body holds the given shell markup, e.g.
// `<div id="app"></div>`.
func New(shell string) (*Document, error) {
	body := &Element{Tag: "body"}
	kids, err := parseFragment(shell)
	if err != nil {
		return nil, fmt.Errorf("memdoc: shell: %w", err)
	}
	adopt(body, kids)
	body.Children = kids
	return &Document{body: body}, nil
}

// Body returns the document body element.
func (d *Document) Body() *Element {
	return d.body
}

// SetContents implements host.Document. The selector is either "#id", which
// matches an element with that id attribute, or a bare tag name.
func (d *Document) SetContents(selector, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	container := d.bySelector(selector)
	if container == nil {
		return fmt.Errorf("memdoc: %q: %w", selector, host.ErrNoContainer)
	}
	kids, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("memdoc: set contents of %q: %w", selector, err)
	}
	adopt(container, kids)
	container.Children = kids
	container.Text = ""
	return nil
}

// LookupByID implements host.Document.
func (d *Document) LookupByID(id string) (host.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el := findByID(d.body, id); el != nil {
		return el, nil
	}
	return nil, fmt.Errorf("memdoc: %q: %w", id, host.ErrNoLiveNode)
}

// InsertBefore implements host.Document.
func (d *Document) InsertBefore(ref host.Handle, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.own(ref)
	if err != nil {
		return err
	}
	if el.parent == nil {
		return fmt.Errorf("memdoc: insert before detached element: %w", host.ErrBadHandle)
	}
	kids, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("memdoc: insert before: %w", err)
	}
	siblings := el.parent.Children
	at := indexOf(siblings, el)
	if at < 0 {
		return fmt.Errorf("memdoc: insert before detached element: %w", host.ErrBadHandle)
	}
	adopt(el.parent, kids)
	next := make([]*Element, 0, len(siblings)+len(kids))
	next = append(next, siblings[:at]...)
	next = append(next, kids...)
	next = append(next, siblings[at:]...)
	el.parent.Children = next
	return nil
}

// Remove implements host.Document. Listener bindings on the removed subtree
// are garbage-collected along with it.
func (d *Document) Remove(ref host.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.own(ref)
	if err != nil {
		return err
	}
	if el.parent == nil {
		return fmt.Errorf("memdoc: remove detached element: %w", host.ErrBadHandle)
	}
	siblings := el.parent.Children
	at := indexOf(siblings, el)
	if at < 0 {
		return fmt.Errorf("memdoc: remove detached element: %w", host.ErrBadHandle)
	}
	el.parent.Children = append(siblings[:at:at], siblings[at+1:]...)
	el.parent = nil
	return nil
}

// AddListener implements host.Document.
func (d *Document) AddListener(ref host.Handle, event string, capture bool, fn host.EventFunc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.own(ref)
	if err != nil {
		return err
	}
	if el.listeners == nil {
		el.listeners = make(map[listenerKey]host.EventFunc)
	}
	el.listeners[listenerKey{event: event, capture: capture}] = fn
	return nil
}

// Dispatch delivers a synthetic event of the given type to the element
// carrying the identity marker id. Capture listeners run from the body down
// to the target, then bubble listeners from the target back up, matching
// host event propagation. Handlers run without the document lock held, so a
// handler is free to update its node.
func (d *Document) Dispatch(id, eventType string) error {
	d.mu.Lock()
	target := findByID(d.body, id)
	if target == nil {
		d.mu.Unlock()
		return fmt.Errorf("memdoc: dispatch %q: %w", id, host.ErrNoLiveNode)
	}

	ev := host.Event{Type: eventType, Target: targetInfo(target)}

	var path []*Element
	for el := target; el != nil; el = el.parent {
		path = append(path, el)
	}

	var run []host.EventFunc
	for i := len(path) - 1; i >= 0; i-- {
		if fn := path[i].listeners[listenerKey{event: eventType, capture: true}]; fn != nil {
			run = append(run, fn)
		}
	}
	for _, el := range path {
		if fn := el.listeners[listenerKey{event: eventType, capture: false}]; fn != nil {
			run = append(run, fn)
		}
	}
	d.mu.Unlock()

	for _, fn := range run {
		fn(ev)
	}
	return nil
}

// HTML returns the serialized contents of the body.
func (d *Document) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf strings.Builder
	for _, el := range d.body.Children {
		writeElement(&buf, el)
	}
	return buf.String()
}

// ElementHTML returns the serialized markup of the element carrying the
// identity marker id.
func (d *Document) ElementHTML(id string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := findByID(d.body, id)
	if el == nil {
		return "", fmt.Errorf("memdoc: %q: %w", id, host.ErrNoLiveNode)
	}
	var buf strings.Builder
	writeElement(&buf, el)
	return buf.String(), nil
}

func (d *Document) own(ref host.Handle) (*Element, error) {
	el, ok := ref.(*Element)
	if !ok || el == nil {
		return nil, host.ErrBadHandle
	}
	return el, nil
}

func (d *Document) bySelector(selector string) *Element {
	if id, ok := strings.CutPrefix(selector, "#"); ok {
		return find(d.body, func(el *Element) bool {
			v, present := el.Attr("id")
			return present && v == id
		})
	}
	if selector == "body" {
		return d.body
	}
	return find(d.body, func(el *Element) bool { return el.Tag == selector })
}

func targetInfo(el *Element) host.Target {
	t := host.Target{}
	for _, a := range el.Attrs {
		switch {
		case a.Key == host.IdentityAttr:
			t.ID = a.Val
		case a.Key == "value":
			t.Value = a.Val
		case strings.HasPrefix(a.Key, "data-"):
			if t.Dataset == nil {
				t.Dataset = make(map[string]string)
			}
			t.Dataset[strings.TrimPrefix(a.Key, "data-")] = a.Val
		}
	}
	return t
}

func adopt(parent *Element, kids []*Element) {
	for _, k := range kids {
		k.parent = parent
	}
}

func indexOf(list []*Element, el *Element) int {
	for i, e := range list {
		if e == el {
			return i
		}
	}
	return -1
}

func find(el *Element, match func(*Element) bool) *Element {
	if el.Tag != "" && match(el) {
		return el
	}
	for _, c := range el.Children {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findByID(el *Element, id string) *Element {
	return find(el, func(e *Element) bool {
		v, ok := e.Attr(host.IdentityAttr)
		return ok && v == id
	})
}
