package dom

import (
	"errors"
	"fmt"

	"github.com/sprout-ui/sprout/pkg/host"
)

var (
	// ErrNotMounted reports an Update on a node that was never mounted.
	ErrNotMounted = errors.New("dom: node is not mounted")

	// ErrNilDocument reports a Mount with no host document.
	ErrNilDocument = errors.New("dom: nil host document")
)

// Mount serializes the subtree rooted at this node, replaces the targeted
// host container's contents with that markup in one shot, then walks the
// subtree and attaches every node's pending listeners to its live
// counterpart located by identity. Leaves have no identity and are skipped.
//
// Mount is intended to run exactly once per tree root. Re-mounting the same
// root is not guaranteed safe and must be avoided.
func (n *Node) Mount(doc host.Document, selector string) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := doc.SetContents(selector, n.Serialize()); err != nil {
		return fmt.Errorf("dom: mount %q: %w", selector, err)
	}
	return n.bind(doc)
}

// Update shallow-merges partial into the backing options, re-runs
// initialization from scratch, replaces the node's live counterpart with the
// freshly serialized markup, and re-binds the replaced subtree's pending
// listeners. The node's identity is unchanged; after Update returns, exactly
// one live counterpart exists for it and all registrations are bound to it.
//
// A missing live counterpart is a precondition violation (the node was never
// mounted, or an ancestor's own replace removed it); Update fails loudly
// with an error wrapping host.ErrNoLiveNode rather than desynchronizing the
// logical and live trees.
func (n *Node) Update(partial Options) error {
	merged := cloneOptions(n.opts)
	for k, v := range partial {
		merged[k] = v
	}
	n.opts = merged

	if n.variant != nil {
		n.Reset()
		n.variant.Init(n)
	}

	if n.doc == nil {
		return ErrNotMounted
	}
	ref, err := n.doc.LookupByID(n.id)
	if err != nil {
		return fmt.Errorf("dom: update %s <%s>: %w", n.id, n.tag, err)
	}
	if err := n.doc.InsertBefore(ref, n.Serialize()); err != nil {
		return fmt.Errorf("dom: update %s <%s>: %w", n.id, n.tag, err)
	}
	if err := n.doc.Remove(ref); err != nil {
		return fmt.Errorf("dom: update %s <%s>: %w", n.id, n.tag, err)
	}
	return n.bind(n.doc)
}

// bind records the document on the subtree and attaches pending listeners to
// each node's live counterpart. Re-binding replaces any previous binding for
// the same (node, event, capture) triple, so re-running after Update leaves
// no duplicates.
func (n *Node) bind(doc host.Document) error {
	n.doc = doc

	if len(n.listeners) > 0 {
		ref, err := doc.LookupByID(n.id)
		if err != nil {
			return fmt.Errorf("dom: bind %s <%s>: %w", n.id, n.tag, err)
		}
		for _, l := range n.listeners {
			if err := doc.AddListener(ref, l.Event, l.Capture, l.Fn); err != nil {
				return fmt.Errorf("dom: bind %s <%s> %s: %w", n.id, n.tag, l.Event, err)
			}
		}
	}

	if n.hasContent {
		return nil
	}
	for _, c := range n.children {
		child, ok := c.(*Node)
		if !ok {
			continue
		}
		if err := child.bind(doc); err != nil {
			return err
		}
	}
	return nil
}
