package ward

import "iter"

// SupplyStack is a LIFO stack of supply batches with one extra operation:
// removing the most recently pushed batch of a chosen type, which may sit
// below the top. Removal compacts the array and preserves the relative order
// of the remaining batches.
type SupplyStack struct {
	data [MaxSupplies]SupplyBatch
	top  int // index of the top element, -1 when empty
}

// NewSupplyStack creates an empty supply stack.
func NewSupplyStack() *SupplyStack {
	return &SupplyStack{top: -1}
}

// CanPush checks if the stack can accept another batch.
func (s *SupplyStack) CanPush() bool {
	return s.top < MaxSupplies-1
}

// Push records a batch on top of the stack. It reports false if the stack is
// full.
func (s *SupplyStack) Push(b SupplyBatch) bool {
	if !s.CanPush() {
		return false
	}

	s.top++
	s.data[s.top] = b

	return true
}

// Pop removes and returns the batch at the top. The second return value is
// false if the stack is empty.
func (s *SupplyStack) Pop() (SupplyBatch, bool) {
	if s.top < 0 {
		return SupplyBatch{}, false
	}

	b := s.data[s.top]
	s.top--

	return b, true
}

// DistinctTypes returns each supply type currently on the stack once, in the
// order first encountered scanning from the bottom up.
func (s *SupplyStack) DistinctTypes() []string {
	var types []string

	for i := 0; i <= s.top; i++ {
		seen := false
		for _, t := range types {
			if t == s.data[i].Type {
				seen = true
				break
			}
		}
		if !seen {
			types = append(types, s.data[i].Type)
		}
	}

	return types
}

// RemoveLatestByType removes the most recently pushed batch whose type equals
// supplyType, searching from the top down. Batches above the removed one
// shift down one slot, so everything else keeps its relative push order. The
// second return value is false if no batch of that type is on the stack.
func (s *SupplyStack) RemoveLatestByType(supplyType string) (SupplyBatch, bool) {
	index := -1
	for i := s.top; i >= 0; i-- {
		if s.data[i].Type == supplyType {
			index = i
			break
		}
	}

	if index < 0 {
		return SupplyBatch{}, false
	}

	removed := s.data[index]
	for i := index; i < s.top; i++ {
		s.data[i] = s.data[i+1]
	}
	s.top--

	return removed, true
}

// All yields the batches from the top down, most recently added first. The
// sequence does not mutate the stack and can be ranged over repeatedly.
func (s *SupplyStack) All() iter.Seq[SupplyBatch] {
	return func(yield func(SupplyBatch) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// BottomUp yields the batches in array order, bottom to top. This is the
// order the stack is persisted in.
func (s *SupplyStack) BottomUp() iter.Seq[SupplyBatch] {
	return func(yield func(SupplyBatch) bool) {
		for i := 0; i <= s.top; i++ {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// Size returns the number of batches on the stack.
func (s *SupplyStack) Size() int {
	return s.top + 1
}

// Capacity returns the maximum number of batches the stack can hold.
func (s *SupplyStack) Capacity() int {
	return MaxSupplies
}

// Clear discards all batches by resetting the top cursor.
func (s *SupplyStack) Clear() {
	s.top = -1
}
