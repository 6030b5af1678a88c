package banda

// Stack manages a stack of components for navigation (push/pop). The gallery
// uses it for screen navigation; embedders can use it for any drill-down flow.
type Stack struct {
	Items []Component
}

// Push adds a component to the top of the stack.
func (s *Stack) Push(c Component) {
	s.Items = append(s.Items, c)
}

// Pop removes and returns the top component.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Component {
	if len(s.Items) == 0 {
		return nil
	}
	top := s.Items[len(s.Items)-1]
	s.Items = s.Items[:len(s.Items)-1]
	return top
}

// Peek returns the top component without removing it.
func (s *Stack) Peek() Component {
	if len(s.Items) == 0 {
		return nil
	}
	return s.Items[len(s.Items)-1]
}

// Replace swaps the top component. Pushes when the stack is empty.
func (s *Stack) Replace(c Component) {
	if len(s.Items) == 0 {
		s.Push(c)
		return
	}
	s.Items[len(s.Items)-1] = c
}

// Len returns the number of components on the stack.
func (s *Stack) Len() int {
	return len(s.Items)
}
