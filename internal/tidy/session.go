package tidy

import (
	"github.com/dshills/drawertidy/internal/annotate"
	"github.com/dshills/drawertidy/internal/document"
)

// markerID identifies the gutter marker used for fringe-marker styling.
const markerID = "drawer"

// Session owns the decoration state for one open document. Each open
// document gets its own Session; the registry is never shared across
// documents or stored in package state.
type Session struct {
	surface  *annotate.Surface
	registry *Registry
}

// NewSession creates a session decorating through the given surface.
func NewSession(surface *annotate.Surface) *Session {
	return &Session{
		surface:  surface,
		registry: NewRegistry(),
	}
}

// Tidy decorates every property drawer in the tree according to cfg.
// Already-decorated spans are skipped, so repeated calls (on every save,
// for instance) are no-ops for unchanged drawers. Document text is never
// touched.
func (s *Session) Tidy(tree *document.Tree, cfg StyleConfig) {
	for r := range Locate(tree) {
		span := overlaySpan(r)
		if s.registry.Exists(span) {
			continue
		}

		action := Resolve(r.IsTopmost, cfg.Top, cfg.General)
		if action == ActionNoOp {
			continue
		}

		h := s.surface.Create(span.Start, span.End, renderSpecFor(action, cfg))
		s.registry.Add(Record{Kind: RecordVisual, Span: span, Handle: h})

		if r.IsTopmost {
			continue
		}
		s.guardFences(r)
	}
}

// Untidy removes every decoration this session created, draining the
// registry. Safe to call when nothing is decorated.
func (s *Session) Untidy() {
	for _, rec := range s.registry.DrainAll() {
		s.surface.Remove(rec.Handle)
	}
}

// Decorations returns the number of live decoration records.
func (s *Session) Decorations() int {
	return s.registry.Len()
}

// Records returns a copy of the session's decoration records.
func (s *Session) Records() []Record {
	return s.registry.Records()
}

// guardFences protects a non-topmost drawer's boundary bytes: the trailing
// fence against backward delete and the leading fence against forward
// delete. The guards stay even when the drawer renders as invisible.
func (s *Session) guardFences(r Region) {
	back := document.Span{Start: r.End - 1, End: r.End}
	lead := max(0, r.Start-1)
	fwd := document.Span{Start: lead, End: lead + 1}

	for _, g := range [...]document.Span{back, fwd} {
		h := s.surface.Create(g.Start, g.End, annotate.InputIntercept())
		s.registry.Add(Record{Kind: RecordBoundaryGuard, Span: g, Handle: h})
	}
}

// overlaySpan computes the decorated span for a region. The topmost drawer
// is covered verbatim. A drawer under a headline shifts one byte on each
// side, swallowing the newline that separates it from its headline and
// releasing its own trailing newline.
func overlaySpan(r Region) document.Span {
	if r.IsTopmost {
		return document.Span{Start: 0, End: r.End}
	}
	return document.Span{Start: r.Start - 1, End: r.End - 1}
}

// renderSpecFor interprets a resolved action into a concrete render spec.
func renderSpecFor(action Action, cfg StyleConfig) annotate.RenderSpec {
	switch action {
	case ActionShowInlineSymbol:
		return annotate.ReplaceWithGlyph(cfg.InlineSymbol)
	case ActionShowFringeMarker:
		return annotate.SideMarker(markerID)
	default:
		return annotate.HideAsEmpty()
	}
}
