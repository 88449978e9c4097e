package el

import "github.com/sprout-ui/sprout/pkg/dom"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
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

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

func Div(args ...any) *dom.Node {
	return El("div", args...)
}
func Span(args ...any) *dom.Node {
	return El("span", args...)
}
func P(args ...any) *dom.Node {
	return El("p", args...)
}
func Pre(args ...any) *dom.Node {
	return El("pre", args...)
}
func H1(args ...any) *dom.Node {
	return El("h1", args...)
}
func H2(args ...any) *dom.Node {
	return El("h2", args...)
}
func H3(args ...any) *dom.Node {
	return El("h3", args...)
}
func H4(args ...any) *dom.Node {
	return El("h4", args...)
}
func Header(args ...any) *dom.Node {
	return El("header", args...)
}
func Footer(args ...any) *dom.Node {
	return El("footer", args...)
}
func Main(args ...any) *dom.Node {
	return El("main", args...)
}
func Nav(args ...any) *dom.Node {
	return El("nav", args...)
}
func Section(args ...any) *dom.Node {
	return El("section", args...)
}
func Article(args ...any) *dom.Node {
	return El("article", args...)
}
func Ul(args ...any) *dom.Node {
	return El("ul", args...)
}
func Ol(args ...any) *dom.Node {
	return El("ol", args...)
}
func Li(args ...any) *dom.Node {
	return El("li", args...)
}
func A(args ...any) *dom.Node {
	return El("a", args...)
}
func Strong(args ...any) *dom.Node {
	return El("strong", args...)
}
func Em(args ...any) *dom.Node {
	return El("em", args...)
}
func Code(args ...any) *dom.Node {
	return El("code", args...)
}
func Button(args ...any) *dom.Node {
	return El("button", args...)
}
func Form(args ...any) *dom.Node {
	return El("form", args...)
}
func Label(args ...any) *dom.Node {
	return El("label", args...)
}
func Fieldset(args ...any) *dom.Node {
	return El("fieldset", args...)
}
func Legend(args ...any) *dom.Node {
	return El("legend", args...)
}
func SelectEl(args ...any) *dom.Node {
	return El("select", args...)
}
func OptionEl(args ...any) *dom.Node {
	return El("option", args...)
}
func Table(args ...any) *dom.Node {
	return El("table", args...)
}
func Thead(args ...any) *dom.Node {
	return El("thead", args...)
}
func Tbody(args ...any) *dom.Node {
	return El("tbody", args...)
}
func Tr(args ...any) *dom.Node {
	return El("tr", args...)
}
func Th(args ...any) *dom.Node {
	return El("th", args...)
}
func Td(args ...any) *dom.Node {
	return El("td", args...)
}

// Void elements.

func Input(args ...any) *dom.Node {
	return Void("input", args...)
}
func Img(args ...any) *dom.Node {
	return Void("img", args...)
}
func Br(args ...any) *dom.Node {
	return Void("br", args...)
}
func Hr(args ...any) *dom.Node {
	return Void("hr", args...)
}
