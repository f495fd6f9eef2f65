package searchbar

// suppressor counts pending programmatic events that must not reach
// listeners. Each Add covers exactly one upcoming event.
type suppressor struct {
	pending int
}

func (s *suppressor) Add() { s.pending++ }

// Consume reports whether the current event is programmatic and uses up
// one pending slot if so.
func (s *suppressor) Consume() bool {
	if s.pending == 0 {
		return false
	}
	s.pending--
	return true
}

func (s *suppressor) Pending() int { return s.pending }

func (s *suppressor) Reset() { s.pending = 0 }
