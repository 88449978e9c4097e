package dom

import (
	"strings"

	"github.com/sprout-ui/sprout/pkg/host"
)

// IdentityAttr is the attribute carrying a node's identity marker in its
// live representation. It is always the first attribute on the opening tag,
// followed by class, then the node's other attributes in insertion order.
// External tooling inspecting rendered markup depends on this shape.
const IdentityAttr = host.IdentityAttr

// Serialize returns the node's markup. It is a pure function of current
// state: the identity marker and space-joined class list come first, then
// attributes in insertion order; inner markup is the literal content when
// set, otherwise the concatenated serialization of the children in order.
func (n *Node) Serialize() string {
	var buf strings.Builder
	n.serializeTo(&buf)
	return buf.String()
}

func (n *Node) serializeTo(buf *strings.Builder) {
	buf.WriteByte('<')
	buf.WriteString(n.tag)
	if n.mode == ModeStartTagOnly {
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(IdentityAttr)
	buf.WriteString(`="`)
	buf.WriteString(n.id)
	buf.WriteString(`" class="`)
	buf.WriteString(escapeAttr(strings.Join(n.classes, " ")))
	buf.WriteByte('"')
	writeAttrs(buf, n.attrs)

	if n.mode == ModeSelfClosing {
		buf.WriteString(" />")
		return
	}

	buf.WriteByte('>')
	if n.hasContent {
		buf.WriteString(escapeHTML(n.content))
	} else {
		for _, child := range n.children {
			child.serializeTo(buf)
		}
	}
	buf.WriteString("</")
	buf.WriteString(n.tag)
	buf.WriteByte('>')
}

func writeAttrs(buf *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		switch a.Val.(type) {
		case omitted:
			continue
		case nil:
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
		default:
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(escapeAttr(attrString(a.Val)))
			buf.WriteByte('"')
		}
	}
}
