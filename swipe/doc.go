// Package swipe contains a horizontally swipeable row for Bubble Tea programs.
//
// A row lays out up to four leading and four trailing actions around its
// content on a single horizontal strip. Dragging (mouse), wheeling or paging
// (keys) moves the strip; on release it snaps to one of three resting
// positions: leading revealed, centered, trailing revealed.
//
// Allowed here:
// - action descriptors, zone geometry and the offset reducer
// - the row model (input, snapping, tap continuations) and its rendering
//
// Not allowed here:
// - list policy (which row is focused, how rows are stacked); that belongs to
//   the embedding program
package swipe
