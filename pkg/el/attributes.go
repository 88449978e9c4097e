package el

import "github.com/sprout-ui/sprout/pkg/dom"

// Attr builds an arbitrary attribute argument.
func Attr(key string, val any) dom.Attr {
	return dom.Attr{Key: key, Val: val}
}

// Bare builds a boolean-style attribute that renders as a bare key.
func Bare(key string) dom.Attr {
	return dom.Attr{Key: key, Val: nil}
}

// BareIf renders a bare key when on is true and omits the entry otherwise.
func BareIf(key string, on bool) dom.Attr {
	if on {
		return dom.Attr{Key: key, Val: nil}
	}
	return dom.Attr{Key: key, Val: dom.Omit}
}

func ID(id string) dom.Attr {
	return Attr("id", id)
}
func Name(name string) dom.Attr {
	return Attr("name", name)
}
func Value(value string) dom.Attr {
	return Attr("value", value)
}
func Type(t string) dom.Attr {
	return Attr("type", t)
}
func Href(href string) dom.Attr {
	return Attr("href", href)
}
func Src(src string) dom.Attr {
	return Attr("src", src)
}
func Alt(alt string) dom.Attr {
	return Attr("alt", alt)
}
func Placeholder(text string) dom.Attr {
	return Attr("placeholder", text)
}
func For(id string) dom.Attr {
	return Attr("for", id)
}
func Title(text string) dom.Attr {
	return Attr("title", text)
}
func Role(role string) dom.Attr {
	return Attr("role", role)
}
func Disabled(on bool) dom.Attr {
	return BareIf("disabled", on)
}
func Checked(on bool) dom.Attr {
	return BareIf("checked", on)
}
func Selected(on bool) dom.Attr {
	return BareIf("selected", on)
}

// Data builds a data-* attribute; Data("value", "4") renders data-value="4".
func Data(suffix string, val any) dom.Attr {
	return Attr("data-"+suffix, val)
}
