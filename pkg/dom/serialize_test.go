package dom_test

import (
	"testing"

	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/domtest"
)

func TestSerializeShape(t *testing.T) {
	domtest.Deterministic(t)

	root := dom.New(nil, nil).Compose("section",
		dom.Attrs(dom.Attr{Key: "role", Val: "main"}),
		"card wide",
		dom.New(nil, nil).Compose("span", nil, nil, "hello"),
		dom.Markup("<b>raw</b>"),
		dom.Text("a < b"),
	)

	want := `<section data-sid="n1" class="card wide" role="main">` +
		`<span data-sid="n2" class="">hello</span>` +
		`<b>raw</b>` +
		`a &lt; b` +
		`</section>`
	if got := root.Serialize(); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeEmptyNode(t *testing.T) {
	domtest.Deterministic(t)

	n := dom.New(nil, nil)
	want := `<div data-sid="n1" class=""></div>`
	if got := n.Serialize(); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeSelfClosing(t *testing.T) {
	domtest.Deterministic(t)

	n := dom.New(nil, nil).
		Compose("input", dom.Attrs(dom.Attr{Key: "type", Val: "text"}), nil).
		SetMode(dom.ModeSelfClosing)
	want := `<input data-sid="n1" class="" type="text" />`
	if got := n.Serialize(); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeStartTagOnly(t *testing.T) {
	n := dom.New(nil, nil).Compose("tr", nil, nil).SetMode(dom.ModeStartTagOnly)
	if got := n.Serialize(); got != "<tr" {
		t.Errorf("Serialize() = %q, want %q", got, "<tr")
	}
}

func TestSerializeAttrValues(t *testing.T) {
	domtest.Deterministic(t)

	n := dom.New(nil, nil).Compose("input", dom.Attrs(
		dom.Attr{Key: "disabled", Val: nil},
		dom.Attr{Key: "hidden", Val: dom.Omit},
		dom.Attr{Key: "max", Val: 10},
		dom.Attr{Key: "checked", Val: true},
		dom.Attr{Key: "", Val: "dropped"},
	), nil)

	want := `<input data-sid="n1" class="" disabled max="10" checked="true"></input>`
	if got := n.Serialize(); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeEscapesContentAndAttrs(t *testing.T) {
	domtest.Deterministic(t)

	n := dom.New(nil, nil).Compose("div",
		dom.Attrs(dom.Attr{Key: "title", Val: `a"b<c`}),
		nil,
		`<script>alert("x")</script>`,
	)

	got := n.Serialize()
	want := `<div data-sid="n1" class="" title="a&quot;b&lt;c">` +
		`&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</div>`
	if got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeContentWinsOverChildren(t *testing.T) {
	domtest.Deterministic(t)

	n := dom.New(nil, nil).Compose("p", nil, nil)
	n.Append(dom.New(nil, nil).Compose("span", nil, nil))
	n.Compose("p", nil, nil, "only text")

	want := `<p data-sid="n1" class="">only text</p>`
	if got := n.Serialize(); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeIsPure(t *testing.T) {
	n := dom.New(nil, nil).Compose("div", nil, "a", "x")
	first := n.Serialize()
	second := n.Serialize()
	if first != second {
		t.Errorf("Serialize() not stable:\n%s\n%s", first, second)
	}
}
