package memdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/wavetermdev/htmltoken"
)

// voidTags are elements that never take children or a closing tag. The
// tokenizer reports them as plain start tags, so the parser must know not to
// push them onto the open-element stack.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// parseFragment tokenizes markup into a sequence of elements. Tag nesting
// must balance; mismatches are reported rather than repaired, since every
// spliced fragment comes from a serializer under our control.
func parseFragment(markup string) ([]*Element, error) {
	root := &Element{}
	stack := []*Element{root}
	tok := htmltoken.NewTokenizer(strings.NewReader(markup))

	for {
		tt := tok.Next()
		token := tok.Token()
		switch tt {
		case htmltoken.StartTagToken:
			el := tokenElement(token)
			top := stack[len(stack)-1]
			el.parent = top
			top.Children = append(top.Children, el)
			if !voidTags[el.Tag] {
				stack = append(stack, el)
			}

		case htmltoken.SelfClosingTagToken:
			el := tokenElement(token)
			top := stack[len(stack)-1]
			el.parent = top
			top.Children = append(top.Children, el)

		case htmltoken.EndTagToken:
			if len(stack) == 1 {
				return nil, fmt.Errorf("end tag </%s> without start tag", token.Data)
			}
			top := stack[len(stack)-1]
			if top.Tag != token.Data {
				return nil, fmt.Errorf("end tag </%s> does not match <%s>", token.Data, top.Tag)
			}
			stack = stack[:len(stack)-1]

		case htmltoken.TextToken:
			if token.Data == "" {
				continue
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, &Element{Text: token.Data, parent: top})

		case htmltoken.CommentToken, htmltoken.DoctypeToken:
			continue

		case htmltoken.ErrorToken:
			if err := tok.Err(); err != io.EOF {
				return nil, err
			}
			if len(stack) > 1 {
				return nil, fmt.Errorf("unclosed <%s>", stack[len(stack)-1].Tag)
			}
			for _, el := range root.Children {
				el.parent = nil
			}
			return root.Children, nil
		}
	}
}

func tokenElement(token htmltoken.Token) *Element {
	el := &Element{Tag: token.Data}
	for _, a := range token.Attr {
		el.Attrs = append(el.Attrs, Attribute{Key: a.Key, Val: a.Val})
	}
	return el
}

// writeElement serializes an element back to markup. The shape mirrors the
// serializer in pkg/dom so round-tripped assertions compare like for like.
func writeElement(buf *strings.Builder, el *Element) {
	if el.Tag == "" {
		buf.WriteString(escapeText(el.Text))
		return
	}
	buf.WriteByte('<')
	buf.WriteString(el.Tag)
	for _, a := range el.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(escapeText(a.Val))
		buf.WriteByte('"')
	}
	if voidTags[el.Tag] && len(el.Children) == 0 {
		buf.WriteString(" />")
		return
	}
	buf.WriteByte('>')
	for _, c := range el.Children {
		writeElement(buf, c)
	}
	buf.WriteString("</")
	buf.WriteString(el.Tag)
	buf.WriteByte('>')
}

func escapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
