// Package renderer builds the decorated view of a document: the text with
// its visual annotations applied, and a terminal backend to display it.
//
// Composition is pure. Hidden spans collapse, glyph replacements render in
// place of the spanned text, and side markers land in the gutter of the
// line on which their span begins. Input-intercept annotations have no
// visual effect and are ignored here.
package renderer

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/drawertidy/internal/annotate"
)

// Style classifies a cell for the backend's color mapping.
type Style uint8

const (
	// StyleText is ordinary document text.
	StyleText Style = iota

	// StyleGlyph is a replacement glyph standing in for hidden text.
	StyleGlyph

	// StyleMarker is a gutter marker.
	StyleMarker
)

// Cell is one display cell of composed output.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// Line is one composed display line.
type Line struct {
	Cells []Cell

	// Marker is the gutter marker id for this line, empty for none.
	Marker string
}

// Compose applies the surface's visual annotations to text and returns the
// display lines. Annotations are matched by their span's start offset;
// creation order breaks ties.
func Compose(text string, anns []annotate.Annotation) []Line {
	var visuals []annotate.Annotation
	for _, a := range anns {
		if a.Spec.Kind != annotate.RenderInputIntercept && a.End > a.Start {
			visuals = append(visuals, a)
		}
	}

	var lines []Line
	var cur Line
	flush := func() {
		lines = append(lines, cur)
		cur = Line{}
	}

	i := 0
	for i < len(text) {
		if a, ok := visualStartingAt(visuals, i); ok {
			switch a.Spec.Kind {
			case annotate.RenderReplaceWithGlyph:
				for _, r := range a.Spec.Glyph {
					cur.Cells = append(cur.Cells, Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: StyleGlyph})
				}
			case annotate.RenderSideMarker:
				cur.Marker = a.Spec.Marker
			}
			end := min(a.End, len(text))
			if end <= i {
				end = i + 1
			}
			i = end
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			flush()
		} else {
			cur.Cells = append(cur.Cells, Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: StyleText})
		}
		i += size
	}

	if len(cur.Cells) > 0 || cur.Marker != "" {
		flush()
	}
	return lines
}

// visualStartingAt returns the first visual annotation whose span starts at
// the given offset.
func visualStartingAt(visuals []annotate.Annotation, offset int) (annotate.Annotation, bool) {
	for _, a := range visuals {
		if a.Start == offset {
			return a, true
		}
	}
	return annotate.Annotation{}, false
}
