package document

// NodeKind identifies the type of a document node.
type NodeKind uint8

const (
	// KindDocument is the root node covering the entire document.
	KindDocument NodeKind = iota

	// KindHeadline is a headline line ("* Heading").
	KindHeadline

	// KindPropertyDrawer is a ":PROPERTIES:" ... ":END:" metadata block.
	KindPropertyDrawer
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindHeadline:
		return "headline"
	case KindPropertyDrawer:
		return "property-drawer"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) in the document text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the byte offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Overlaps returns true if the two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Node is a single node in the parsed document tree.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
}

// Tree is a parsed document.
type Tree struct {
	Root *Node
}

// MapNodes walks the tree depth-first and returns every node of the given
// kind in document order. The root itself is included when it matches.
func MapNodes(t *Tree, kind NodeKind) []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == kind {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}
