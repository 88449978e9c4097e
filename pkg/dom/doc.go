// Package dom implements sprout's component model core: a tree of nodes that
// serializes to markup and re-renders a single node in place when its backing
// configuration changes.
//
// # Core Types
//
// Node is the central abstraction. It holds a tag, ordered attributes, an
// ordered class list, either literal text content or child nodes, pending
// event-listener registrations, and a render mode. Every node is assigned a
// short random identity at construction; the identity is embedded in the
// serialized markup as the data-sid attribute and correlates the logical node
// with its live counterpart in the host environment.
//
// Markup and Text are identity-less leaves: Markup passes a pre-formed
// fragment through unchanged, Text is escaped on serialization.
//
// # Composition and variants
//
// Compose sets a node's shape in one call. Specialized node variants
// implement Initializer and recompute their shape from the node's backing
// options; Init is re-run in full on every Update, so it must be a total
// function of the options with no hidden accumulation across calls.
//
// # Update protocol
//
// Update shallow-merges a partial configuration into the backing options,
// re-runs initialization, re-serializes only the updated node, replaces its
// live counterpart (insert-before then remove), and re-binds the replaced
// subtree's pending listeners. The node's identity never changes.
package dom
