package annotate

// RenderKind identifies how an annotated span is presented.
type RenderKind uint8

const (
	// RenderHideAsEmpty renders the span as if it contained no text.
	RenderHideAsEmpty RenderKind = iota

	// RenderReplaceWithGlyph renders the entire span as a single glyph.
	RenderReplaceWithGlyph

	// RenderSideMarker leaves the span hidden inline and shows a marker
	// glyph in the side gutter of the span's first line.
	RenderSideMarker

	// RenderInputIntercept applies no visual change but rejects
	// destructive edits touching the span.
	RenderInputIntercept
)

// String returns the string representation of the render kind.
func (k RenderKind) String() string {
	switch k {
	case RenderHideAsEmpty:
		return "hide-as-empty"
	case RenderReplaceWithGlyph:
		return "replace-with-glyph"
	case RenderSideMarker:
		return "side-marker"
	case RenderInputIntercept:
		return "input-intercept"
	default:
		return "unknown"
	}
}

// RenderSpec describes the presentation of one annotation.
type RenderSpec struct {
	Kind RenderKind

	// Glyph is the replacement text for RenderReplaceWithGlyph.
	Glyph string

	// Marker identifies the gutter marker for RenderSideMarker.
	Marker string
}

// HideAsEmpty returns a spec that hides the span entirely.
func HideAsEmpty() RenderSpec {
	return RenderSpec{Kind: RenderHideAsEmpty}
}

// ReplaceWithGlyph returns a spec that renders the span as one glyph.
func ReplaceWithGlyph(glyph string) RenderSpec {
	return RenderSpec{Kind: RenderReplaceWithGlyph, Glyph: glyph}
}

// SideMarker returns a spec that hides the span and marks its first line
// in the gutter.
func SideMarker(marker string) RenderSpec {
	return RenderSpec{Kind: RenderSideMarker, Marker: marker}
}

// InputIntercept returns a spec that guards the span against destructive
// edits without changing its rendering.
func InputIntercept() RenderSpec {
	return RenderSpec{Kind: RenderInputIntercept}
}

// Handle is an opaque identifier for a live annotation.
type Handle string

// Annotation is one live annotation on a surface.
type Annotation struct {
	// Handle uniquely identifies the annotation.
	Handle Handle

	// Start and End delimit the annotated byte span [Start, End).
	Start int
	End   int

	// Spec describes the annotation's presentation.
	Spec RenderSpec
}

// Contains returns true if the byte offset lies inside the annotated span.
func (a Annotation) Contains(offset int) bool {
	return offset >= a.Start && offset < a.End
}

// Overlaps returns true if the annotation's span shares a byte with
// [start, end).
func (a Annotation) Overlaps(start, end int) bool {
	return a.Start < end && start < a.End
}
