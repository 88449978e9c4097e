package el

import (
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/host"
)

// On builds a bubble-phase listener argument for any event type.
func On(event string, fn host.EventFunc) dom.Listener {
	return dom.Listener{Event: event, Fn: fn}
}

// OnCapture builds a capture-phase listener argument.
func OnCapture(event string, fn host.EventFunc) dom.Listener {
	return dom.Listener{Event: event, Capture: true, Fn: fn}
}

func OnClick(fn host.EventFunc) dom.Listener {
	return On("click", fn)
}
func OnInput(fn host.EventFunc) dom.Listener {
	return On("input", fn)
}
func OnChange(fn host.EventFunc) dom.Listener {
	return On("change", fn)
}
func OnSubmit(fn host.EventFunc) dom.Listener {
	return On("submit", fn)
}
func OnFocus(fn host.EventFunc) dom.Listener {
	return On("focus", fn)
}
func OnBlur(fn host.EventFunc) dom.Listener {
	return On("blur", fn)
}
func OnKeydown(fn host.EventFunc) dom.Listener {
	return On("keydown", fn)
}
