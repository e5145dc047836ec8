package tidy

import (
	"iter"

	"github.com/dshills/drawertidy/internal/document"
)

// Region identifies one property drawer found in a parsed document.
type Region struct {
	// Start is the inclusive byte offset of the drawer.
	Start int

	// End is the exclusive byte offset of the drawer.
	End int

	// IsTopmost is true when the drawer begins at the very start of the
	// document: the document-level metadata block, as opposed to a drawer
	// attached to a later headline.
	IsTopmost bool
}

// Locate yields every property drawer in the tree as a Region, in document
// order. Offsets are taken verbatim from the parsed node spans. The
// returned sequence is restartable; each range re-walks the tree.
func Locate(tree *document.Tree) iter.Seq[Region] {
	return func(yield func(Region) bool) {
		for _, n := range document.MapNodes(tree, document.KindPropertyDrawer) {
			r := Region{
				Start:     n.Span.Start,
				End:       n.Span.End,
				IsTopmost: n.Span.Start == 0,
			}
			if !yield(r) {
				return
			}
		}
	}
}
