// Package rooms generates connected dungeon layouts on a rectangular grid.
//
// A run grows outward from a single epicenter. Walker heads carve 2x2 room
// blocks ("big cells") across the grid and record a door on every edge they
// traverse. When a head runs out of free neighboring slots it dies at a dead
// end; a configurable chance decides whether the walk continues from a new
// head or the dead end is finalized as a treasure site. Rooms plus doors
// always form a tree rooted at the epicenter, so every room is reachable and
// corridors never loop.
//
// Generation is deterministic: the same Options with the same seed produce an
// identical Layout. A zero seed draws one from the environment and echoes the
// value used in the result so the run can be replayed.
package rooms
