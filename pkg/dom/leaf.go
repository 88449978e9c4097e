package dom

import "strings"

// Child is a member of a node's child sequence: a *Node, a Markup leaf, or a
// Text leaf. The interface is closed on purpose; the tree has exactly these
// three member kinds.
type Child interface {
	serializeTo(buf *strings.Builder)
}

// Markup is a pre-formed immutable fragment of markup. It has no identity,
// no parent, and no children, and serializes to its literal unchanged.
// Content is not escaped; never build Markup from untrusted input.
type Markup string

func (m Markup) serializeTo(buf *strings.Builder) {
	buf.WriteString(string(m))
}

// Text is a literal text leaf, escaped on serialization.
type Text string

func (t Text) serializeTo(buf *strings.Builder) {
	buf.WriteString(escapeHTML(string(t)))
}
