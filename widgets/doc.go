// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (header bars, vertical stacks, popup overlay compositor)
//
// Not allowed here:
// - key handling, row state, focus or list policy
package widgets
