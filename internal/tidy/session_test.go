package tidy

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/drawertidy/internal/annotate"
	"github.com/dshills/drawertidy/internal/buffer"
	"github.com/dshills/drawertidy/internal/document"
)

func countKinds(recs []Record) (visual, guard int) {
	for _, rec := range recs {
		switch rec.Kind {
		case RecordVisual:
			visual++
		case RecordBoundaryGuard:
			guard++
		}
	}
	return visual, guard
}

func TestTidyStyleCoverage(t *testing.T) {
	// One topmost drawer at [0,40), one non-topmost at [100,130).
	tree := drawerTree(
		document.Span{Start: 0, End: 40},
		document.Span{Start: 100, End: 130},
	)
	cfg := StyleConfig{Top: TopInvisible, General: GeneralInlineSymbol, InlineSymbol: "#"}

	surface := annotate.NewSurface()
	s := NewSession(surface)
	s.Tidy(tree, cfg)

	// Top drawer: 1 visual, no guards. Non-top drawer: 1 visual + 2 guards.
	recs := s.Records()
	if len(recs) != 4 {
		t.Fatalf("registry holds %d records, want 4", len(recs))
	}
	visual, guard := countKinds(recs)
	if visual != 2 || guard != 2 {
		t.Errorf("records = %d visual + %d guards, want 2 visual + 2 guards", visual, guard)
	}
	if surface.Count() != len(recs) {
		t.Errorf("surface holds %d annotations, registry holds %d records", surface.Count(), len(recs))
	}
}

func TestTidyRecordShape(t *testing.T) {
	tree := drawerTree(
		document.Span{Start: 0, End: 40},
		document.Span{Start: 100, End: 130},
	)
	cfg := StyleConfig{Top: TopInvisible, General: GeneralInlineSymbol, InlineSymbol: "#"}

	surface := annotate.NewSurface()
	s := NewSession(surface)
	s.Tidy(tree, cfg)

	var topVisual, nonTopVisual, backGuard, fwdGuard bool
	for _, rec := range s.Records() {
		switch {
		case rec.Kind == RecordVisual && rec.Span == (document.Span{Start: 0, End: 40}):
			topVisual = true
		case rec.Kind == RecordVisual && rec.Span == (document.Span{Start: 99, End: 129}):
			nonTopVisual = true
		case rec.Kind == RecordBoundaryGuard && rec.Span == (document.Span{Start: 129, End: 130}):
			backGuard = true
		case rec.Kind == RecordBoundaryGuard && rec.Span == (document.Span{Start: 99, End: 100}):
			fwdGuard = true
		default:
			t.Errorf("unexpected record %v over %+v", rec.Kind, rec.Span)
		}
	}
	if !topVisual {
		t.Error("missing visual record over topmost drawer [0,40)")
	}
	if !nonTopVisual {
		t.Error("missing visual record over shifted non-top span [99,129)")
	}
	if !backGuard {
		t.Error("missing backspace guard over [129,130)")
	}
	if !fwdGuard {
		t.Error("missing forward-delete guard over [99,100)")
	}
}

func TestTidyIdempotence(t *testing.T) {
	tree := drawerTree(
		document.Span{Start: 0, End: 40},
		document.Span{Start: 100, End: 130},
	)
	cfg := StyleConfig{Top: TopInvisible, General: GeneralFringeMarker}

	surface := annotate.NewSurface()
	s := NewSession(surface)

	s.Tidy(tree, cfg)
	recsOnce := s.Records()
	annsOnce := surface.Count()

	s.Tidy(tree, cfg)
	recsTwice := s.Records()

	if len(recsTwice) != len(recsOnce) {
		t.Errorf("second Tidy grew registry from %d to %d records", len(recsOnce), len(recsTwice))
	}
	if surface.Count() != annsOnce {
		t.Errorf("second Tidy grew surface from %d to %d annotations", annsOnce, surface.Count())
	}
	for i := range recsOnce {
		if recsOnce[i] != recsTwice[i] {
			t.Errorf("record %d changed across passes: %+v vs %+v", i, recsOnce[i], recsTwice[i])
		}
	}
}

func TestTidyUntidyRoundTrip(t *testing.T) {
	tops := []TopStyle{TopInvisible, TopKeep}
	generals := []GeneralStyle{GeneralFringeMarker, GeneralInlineSymbol, GeneralInvisible}

	for _, top := range tops {
		for _, general := range generals {
			name := top.String() + "/" + general.String()
			t.Run(name, func(t *testing.T) {
				tree := drawerTree(
					document.Span{Start: 0, End: 40},
					document.Span{Start: 100, End: 130},
				)
				cfg := StyleConfig{Top: top, General: general, InlineSymbol: "#"}

				surface := annotate.NewSurface()
				s := NewSession(surface)

				s.Tidy(tree, cfg)
				s.Untidy()

				if s.Decorations() != 0 {
					t.Errorf("registry holds %d records after Untidy, want 0", s.Decorations())
				}
				if surface.Count() != 0 {
					t.Errorf("surface holds %d annotations after Untidy, want 0", surface.Count())
				}
			})
		}
	}
}

func TestUntidyOnEmptySession(t *testing.T) {
	s := NewSession(annotate.NewSurface())
	s.Untidy()
	s.Untidy()

	if s.Decorations() != 0 {
		t.Errorf("Decorations() = %d, want 0", s.Decorations())
	}
}

func TestTidyAsymmetricGuarding(t *testing.T) {
	topOnly := func() *document.Tree {
		return drawerTree(document.Span{Start: 0, End: 40})
	}

	t.Run("top keep yields nothing", func(t *testing.T) {
		surface := annotate.NewSurface()
		s := NewSession(surface)
		s.Tidy(topOnly(), StyleConfig{Top: TopKeep, General: GeneralFringeMarker})

		if s.Decorations() != 0 {
			t.Errorf("registry holds %d records, want 0", s.Decorations())
		}
		if surface.Count() != 0 {
			t.Errorf("surface holds %d annotations, want 0", surface.Count())
		}
	})

	t.Run("top invisible yields one unguarded visual", func(t *testing.T) {
		surface := annotate.NewSurface()
		s := NewSession(surface)
		s.Tidy(topOnly(), StyleConfig{Top: TopInvisible, General: GeneralFringeMarker})

		visual, guard := countKinds(s.Records())
		if visual != 1 || guard != 0 {
			t.Errorf("records = %d visual + %d guards, want 1 visual + 0 guards", visual, guard)
		}
	})
}

func TestTidyNonTopInvisibleStillGuards(t *testing.T) {
	tree := drawerTree(document.Span{Start: 100, End: 130})
	cfg := StyleConfig{Top: TopInvisible, General: GeneralInvisible}

	surface := annotate.NewSurface()
	s := NewSession(surface)
	s.Tidy(tree, cfg)

	visual, guard := countKinds(s.Records())
	if visual != 1 || guard != 2 {
		t.Errorf("records = %d visual + %d guards, want 1 visual + 2 guards", visual, guard)
	}

	// The visual annotation hides, yet the fences stay protected.
	for _, rec := range s.Records() {
		if rec.Kind != RecordVisual {
			continue
		}
		a, ok := surface.Get(rec.Handle)
		if !ok {
			t.Fatal("visual record's annotation missing from surface")
		}
		if a.Spec.Kind != annotate.RenderHideAsEmpty {
			t.Errorf("visual spec = %v, want %v", a.Spec.Kind, annotate.RenderHideAsEmpty)
		}
	}
}

func TestTidyBoundaryOffsetPolicy(t *testing.T) {
	tree := drawerTree(document.Span{Start: 100, End: 130})

	surface := annotate.NewSurface()
	s := NewSession(surface)
	s.Tidy(tree, StyleConfig{General: GeneralFringeMarker})

	for _, rec := range s.Records() {
		if rec.Kind != RecordVisual {
			continue
		}
		if rec.Span != (document.Span{Start: 99, End: 129}) {
			t.Errorf("visual span = %+v, want [99,129)", rec.Span)
		}
	}
}

func TestTidyShrunkenSpanKeepsStaleDecoration(t *testing.T) {
	surface := annotate.NewSurface()
	s := NewSession(surface)

	s.Tidy(drawerTree(document.Span{Start: 100, End: 130}), StyleConfig{General: GeneralFringeMarker})
	before := s.Decorations()

	// The drawer shrank between passes; the candidate span [99,123) is
	// absorbed by the recorded [99,129) and the stale decoration is kept.
	s.Tidy(drawerTree(document.Span{Start: 100, End: 124}), StyleConfig{General: GeneralFringeMarker})

	if s.Decorations() != before {
		t.Errorf("shrunken span added records: %d -> %d", before, s.Decorations())
	}
}

func TestTidyGrownSpanDecoratesAgain(t *testing.T) {
	surface := annotate.NewSurface()
	s := NewSession(surface)

	s.Tidy(drawerTree(document.Span{Start: 100, End: 130}), StyleConfig{General: GeneralFringeMarker})
	before := s.Decorations()

	// A grown span is outside the directional tolerance and is decorated anew.
	s.Tidy(drawerTree(document.Span{Start: 100, End: 136}), StyleConfig{General: GeneralFringeMarker})

	if s.Decorations() <= before {
		t.Errorf("grown span added no records: %d -> %d", before, s.Decorations())
	}
}

func TestProtectedEditRejectedAfterTidy(t *testing.T) {
	text := strings.Repeat("x", 200)
	tree := drawerTree(document.Span{Start: 100, End: 130})

	surface := annotate.NewSurface()
	buf := buffer.New(buffer.WithContent(text), buffer.WithGuard(surface.Blocks))
	s := NewSession(surface)
	s.Tidy(tree, StyleConfig{General: GeneralInlineSymbol, InlineSymbol: "#"})

	// Backward delete at the drawer's trailing fence is refused.
	if err := buf.DeleteBackward(130); !errors.Is(err, buffer.ErrProtectedRegion) {
		t.Errorf("DeleteBackward(130) = %v, want ErrProtectedRegion", err)
	}
	// Forward delete at the leading fence is refused.
	if err := buf.DeleteForward(99); !errors.Is(err, buffer.ErrProtectedRegion) {
		t.Errorf("DeleteForward(99) = %v, want ErrProtectedRegion", err)
	}
	if buf.Text() != text {
		t.Error("rejected edits must leave the document unchanged")
	}

	// Everywhere else stays editable.
	if err := buf.DeleteBackward(50); err != nil {
		t.Errorf("DeleteBackward(50) = %v, want nil", err)
	}

	// After Untidy the fences are editable again.
	s.Untidy()
	if err := buf.DeleteBackward(129); err != nil {
		t.Errorf("DeleteBackward after Untidy = %v, want nil", err)
	}
}

func TestTidyNeverMutatesText(t *testing.T) {
	text := ":PROPERTIES:\n:ID: abc\n:END:\n* H\n:PROPERTIES:\n:END:\nbody\n"
	tree := document.Parse(text)

	surface := annotate.NewSurface()
	buf := buffer.New(buffer.WithContent(text), buffer.WithGuard(surface.Blocks))
	s := NewSession(surface)

	s.Tidy(tree, DefaultStyleConfig())
	if buf.Text() != text {
		t.Error("Tidy must not mutate document text")
	}
	s.Untidy()
	if buf.Text() != text {
		t.Error("Untidy must not mutate document text")
	}
}
