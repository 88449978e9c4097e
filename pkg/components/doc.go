// Package components provides sprout's built-in node variants: conditional
// (When), list (List), choice (Choice), route (Router), and rating (Rating).
//
// Each variant is an ordinary consumer of the core contract in pkg/dom: it
// declares its configuration keys, recomputes its whole shape from the
// backing options on every initialization, and registers whatever listeners
// its behavior needs. Because initialization is re-run verbatim on Update, a
// variant's Init is a total function of the options and accumulates nothing
// across calls.
//
// Configuration keys are the public API of a variant; Update partial maps
// use the same keys, e.g. rating.Update(dom.Options{"value": 4}).
package components
