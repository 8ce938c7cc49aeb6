// Package session runs one solving session: it owns the cursor, the input
// mode and the clock, applies KeyEvents to a grid and produces RenderModel
// snapshots for a presentation layer. A Session is not safe for concurrent
// use; the caller feeds it events one at a time.
package session
