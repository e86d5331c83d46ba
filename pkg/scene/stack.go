// Package scene holds the structural part of the top-level mode handling:
// a stack of active interaction contexts where the topmost one is authoritative.
package scene

// Kind identifies a top-level application mode.
type Kind int

const (
	KindStart Kind = iota
	KindPlaying
	KindPaused
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindPlaying:
		return "playing"
	case KindPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Stack is an ordered sequence of scenes. It is never empty once created.
type Stack[S any] struct {
	items []S
}

// NewStack creates a stack holding only root.
func NewStack[S any](root S) *Stack[S] {
	return &Stack[S]{items: []S{root}}
}

// Current returns the topmost scene.
func (s *Stack[S]) Current() S {
	return s.items[len(s.items)-1]
}

// Below returns the scene directly under the topmost one.
func (s *Stack[S]) Below() (S, bool) {
	var zero S
	if len(s.items) < 2 {
		return zero, false
	}
	return s.items[len(s.items)-2], true
}

// Push puts sc on top of the stack.
func (s *Stack[S]) Push(sc S) {
	s.items = append(s.items, sc)
}

// Pop removes the topmost scene and returns it. The last scene is never
// removed; in that case ok is false.
func (s *Stack[S]) Pop() (S, bool) {
	var zero S
	if len(s.items) < 2 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Replace swaps the topmost scene for sc and returns the replaced scene.
func (s *Stack[S]) Replace(sc S) S {
	old := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = sc
	return old
}

// Len returns the number of scenes on the stack.
func (s *Stack[S]) Len() int {
	return len(s.items)
}
