package renderer

import (
	"unicode/utf8"

	"github.com/dshills/drawertidy/internal/annotate"
)

// Position maps a byte offset in the source text to a (line, column) in
// the composed view. Offsets inside a hidden or replaced span map to the
// position where that span's rendering begins.
func Position(text string, anns []annotate.Annotation, offset int) (line, col int) {
	var visuals []annotate.Annotation
	for _, a := range anns {
		if a.Spec.Kind != annotate.RenderInputIntercept && a.End > a.Start {
			visuals = append(visuals, a)
		}
	}

	i := 0
	for i < len(text) && i < offset {
		if a, ok := visualStartingAt(visuals, i); ok {
			if a.Spec.Kind == annotate.RenderReplaceWithGlyph && a.End > offset {
				return line, col
			}
			if a.Spec.Kind == annotate.RenderReplaceWithGlyph {
				col += utf8.RuneCountInString(a.Spec.Glyph)
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
			line++
			col = 0
		} else {
			col++
		}
		i += size
	}
	return line, col
}
