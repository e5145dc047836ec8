// Package annotate provides the host-editor annotation primitive: visual
// rendering overrides and input-interception guards attached to byte spans
// of a buffer, tracked by opaque handles.
//
// Annotations never mutate document text. A Surface owns every live
// annotation for one document; creating returns a handle, and removing by
// handle is the only way an annotation goes away. The renderer reads the
// surface to composite the decorated view, and the buffer consults it to
// refuse destructive edits inside guarded spans.
package annotate
