package components

import (
	"log/slog"
	"strconv"

	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/host"
)

// Rating creates a rating node. Configuration keys:
//
//	"value" int — current rating
//	"max"   int — number of positions (default 5)
//
// Each position is a span carrying its encoded value in data-value, class
// "filled" up to the current rating and "empty" beyond it. A click listener
// on the container reads the clicked position's encoded value and updates
// the node with it, which replaces and re-binds the whole widget while its
// identity marker stays fixed.
func Rating(value, max int) *dom.Node {
	return dom.New(ratingVariant{}, dom.Options{
		"value": value,
		"max":   max,
	})
}

type ratingVariant struct{}

func (ratingVariant) Init(n *dom.Node) {
	value := n.OptInt("value", 0)
	max := n.OptInt("max", 5)
	if max < 1 {
		max = 5
	}

	n.Compose(dom.DefaultTag, nil, "rating")
	for i := 1; i <= max; i++ {
		state := "empty"
		if i <= value {
			state = "filled"
		}
		n.Append(dom.New(nil, nil).Compose("span", dom.Attrs(
			dom.Attr{Key: "data-value", Val: strconv.Itoa(i)},
		), state))
	}

	n.On("click", func(ev host.Event) {
		clicked, err := strconv.Atoi(ev.Target.Dataset["value"])
		if err != nil {
			return
		}
		if err := n.Update(dom.Options{"value": clicked}); err != nil {
			slog.Error("rating: update failed", "sid", n.ID(), "err", err)
		}
	})
}
