package annotate

import (
	"sync"

	"github.com/google/uuid"
)

// Surface owns all live annotations for one open document.
// All methods are safe for concurrent use; the renderer reads the surface
// while the editing thread creates and removes annotations.
type Surface struct {
	mu sync.RWMutex

	// annotations contains all live annotations, keyed by handle.
	annotations map[Handle]Annotation

	// order preserves creation order for deterministic iteration.
	order []Handle
}

// NewSurface creates an empty annotation surface.
func NewSurface() *Surface {
	return &Surface{
		annotations: make(map[Handle]Annotation),
	}
}

// Create attaches a new annotation over [start, end) and returns its handle.
func (s *Surface) Create(start, end int, spec RenderSpec) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := Handle(uuid.NewString())
	s.annotations[h] = Annotation{
		Handle: h,
		Start:  start,
		End:    end,
		Spec:   spec,
	}
	s.order = append(s.order, h)
	return h
}

// Remove detaches the annotation with the given handle.
// Returns false if no such annotation exists.
func (s *Surface) Remove(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.annotations[h]; !ok {
		return false
	}
	delete(s.annotations, h)
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the annotation with the given handle.
func (s *Surface) Get(h Handle) (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.annotations[h]
	return a, ok
}

// Count returns the number of live annotations.
func (s *Surface) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.annotations)
}

// All returns every live annotation in creation order.
func (s *Surface) All() []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Annotation, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, s.annotations[h])
	}
	return out
}

// Blocks returns true if any input-intercept annotation overlaps the edit
// span [start, end). The buffer calls this before applying a destructive
// edit; a true result means the edit must be refused.
func (s *Surface) Blocks(start, end int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.annotations {
		if a.Spec.Kind == RenderInputIntercept && a.Overlaps(start, end) {
			return true
		}
	}
	return false
}
