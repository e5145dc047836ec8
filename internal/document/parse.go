package document

import "strings"

const (
	drawerOpen  = ":PROPERTIES:"
	drawerClose = ":END:"
)

// Parse scans document text and builds a tree of headline and
// property-drawer nodes under a single document root.
//
// A property drawer is a ":PROPERTIES:" line followed by arbitrary lines up
// to a ":END:" line. The drawer's span runs from the start of the opening
// line through the newline that terminates the closing line (or end of text
// when the closing line is the last line). An unterminated drawer produces
// no node. Matching of the delimiter keywords is case-insensitive and
// tolerates leading and trailing whitespace, which is how indented drawers
// under headlines appear in practice.
func Parse(text string) *Tree {
	root := &Node{
		Kind: KindDocument,
		Span: Span{Start: 0, End: len(text)},
	}

	offset := 0
	for offset < len(text) {
		lineEnd := lineEndAfter(text, offset)
		line := strings.TrimSpace(text[offset:lineEnd])

		switch {
		case isHeadline(line):
			root.Children = append(root.Children, &Node{
				Kind: KindHeadline,
				Span: Span{Start: offset, End: lineEnd},
			})
			offset = lineEnd

		case strings.EqualFold(line, drawerOpen):
			end, ok := scanDrawerEnd(text, lineEnd)
			if !ok {
				// Unterminated drawer: not a drawer at all.
				offset = lineEnd
				continue
			}
			root.Children = append(root.Children, &Node{
				Kind: KindPropertyDrawer,
				Span: Span{Start: offset, End: end},
			})
			offset = end

		default:
			offset = lineEnd
		}
	}

	return &Tree{Root: root}
}

// lineEndAfter returns the offset just past the line containing start,
// including the terminating newline when present.
func lineEndAfter(text string, start int) int {
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		return start + i + 1
	}
	return len(text)
}

// isHeadline reports whether a trimmed line is an org headline:
// one or more '*' followed by a space.
func isHeadline(line string) bool {
	i := 0
	for i < len(line) && line[i] == '*' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == ' '
}

// scanDrawerEnd finds the ":END:" line starting the scan at offset and
// returns the offset just past it. Returns false if the drawer never closes.
func scanDrawerEnd(text string, offset int) (int, bool) {
	for offset < len(text) {
		lineEnd := lineEndAfter(text, offset)
		if strings.EqualFold(strings.TrimSpace(text[offset:lineEnd]), drawerClose) {
			return lineEnd, true
		}
		offset = lineEnd
	}
	return 0, false
}
