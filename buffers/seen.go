package buffers

// Seen is a membership set of keys observed so far. It only grows: memory use is
// proportional to the number of distinct keys added.
type Seen[K comparable] struct {
	keys map[K]struct{}
}

func NewSeen[K comparable]() *Seen[K] {
	return &Seen[K]{keys: make(map[K]struct{})}
}

// Add records key and reports whether it was new.
func (s *Seen[K]) Add(key K) bool {
	if _, found := s.keys[key]; found {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}
