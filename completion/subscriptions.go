package completion

import "sync"

// Subscriptions collects disposables owned by one activation scope and
// releases them together.
type Subscriptions struct {
	mu       sync.Mutex
	items    []Disposable
	disposed bool
}

// Add takes ownership of ds. Once the scope is disposed, anything added is
// released immediately.
func (s *Subscriptions) Add(ds ...Disposable) {
	s.mu.Lock()
	if !s.disposed {
		s.items = append(s.items, ds...)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	for _, d := range ds {
		d.Dispose()
	}
}

// Len returns the number of held disposables.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Dispose releases every held disposable, newest first.
func (s *Subscriptions) Dispose() {
	s.mu.Lock()
	items := s.items
	s.items = nil
	s.disposed = true
	s.mu.Unlock()

	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}
