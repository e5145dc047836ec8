// Package tidy implements the reversible drawer-tidying engine.
//
// A Session owns the decoration state for one open document: it locates
// property drawers in a parsed tree, decides per drawer and per configured
// style which decoration to apply, creates the visual and boundary-guard
// annotations on the document's annotation surface, and records every
// annotation it creates so Untidy can remove all of them exactly once.
//
// Tidy is idempotent: a span that already carries a visual decoration is
// skipped, so running it on every save is safe. Untidy is the exact
// inverse of Tidy and is safe to call on an already-clean session.
//
// # Concurrency
//
// All engine state is scoped to one document session and driven
// synchronously from that document's editing thread. The Registry is
// therefore unsynchronized; the annotation surface it writes to carries
// its own lock because the renderer reads it concurrently.
package tidy
