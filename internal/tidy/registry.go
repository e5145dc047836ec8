package tidy

import (
	"github.com/dshills/drawertidy/internal/annotate"
	"github.com/dshills/drawertidy/internal/document"
)

// RecordKind categorizes decoration records.
type RecordKind uint8

const (
	// RecordVisual is a rendering override over a drawer's span.
	RecordVisual RecordKind = iota

	// RecordBoundaryGuard is an input-interception annotation over one
	// fence byte of a drawer.
	RecordBoundaryGuard
)

// String returns the string representation of the record kind.
func (k RecordKind) String() string {
	switch k {
	case RecordVisual:
		return "visual"
	case RecordBoundaryGuard:
		return "boundary-guard"
	default:
		return "unknown"
	}
}

// Record is one annotation the engine has created. The engine is the sole
// owner of the handle: nothing else may remove the underlying annotation.
type Record struct {
	Kind   RecordKind
	Span   document.Span
	Handle annotate.Handle
}

// Registry is the insertion-ordered collection of decoration records for
// one document session. It is created empty on activation, emptied by
// DrainAll on deactivation, and never otherwise truncated. It is
// unsynchronized; see the package documentation for the threading model.
type Registry struct {
	records []Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Exists reports whether a visual record already covers the candidate span.
// The candidate matches when its start equals a recorded start and its end
// does not exceed the recorded end. The inequality is directional on
// purpose: an already-applied zero-width decoration can shrink the span a
// later pass computes for the same drawer, and that must not trigger a
// duplicate decoration. A span that shrank because of outside edits is
// absorbed the same way, keeping the stale larger annotation.
func (r *Registry) Exists(span document.Span) bool {
	for _, rec := range r.records {
		if rec.Kind != RecordVisual {
			continue
		}
		if rec.Span.Start == span.Start && span.End <= rec.Span.End {
			return true
		}
	}
	return false
}

// Add appends a record. Uniqueness is not enforced here; callers check
// Exists first.
func (r *Registry) Add(rec Record) {
	r.records = append(r.records, rec)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns a copy of all records in insertion order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// DrainAll removes and returns every record, leaving the registry empty.
func (r *Registry) DrainAll() []Record {
	recs := r.records
	r.records = nil
	return recs
}
