package main

import (
	"fmt"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/el"
)

// demoRoot builds the demo application tree. Each session gets a fresh tree,
// so per-session state lives in the nodes themselves.
func demoRoot() *dom.Node {
	fruits := []any{"apple", "pear", "plum", "quince"}

	return el.Div(el.Class("demo"),
		el.H1("sprout demo"),
		el.P("Click a star; the widget replaces itself in place."),
		components.Rating(3, 5),
		el.H2("Fruit"),
		components.List(fruits, func(item any, i int) *dom.Node {
			return el.Li(fmt.Sprintf("%d. %v", i+1, item))
		}),
		components.Choice(components.ChoiceConfig{
			Name:     "fruit",
			Items:    fruits,
			Grouped:  true,
			Selected: "pear",
		}),
		components.Router("/", []components.RouteDef{
			{Pattern: "/", Render: func(map[string]string) *dom.Node {
				return el.P("Home page.")
			}},
			{Pattern: "/fruit/:name", Render: func(params map[string]string) *dom.Node {
				return el.P("You picked " + params["name"] + ".")
			}},
		}),
	)
}
