package ward

import "iter"

// TriageHeap is a binary max-heap of emergency cases keyed on priority. The
// backing array is 1-based: the children of node i are 2i and 2i+1, and index
// 1 always holds a case with the highest priority.
//
// The sift rules are deliberate about ties. Sifting up uses a strict greater
// comparison, so a case never moves past an equal-priority parent. Sifting
// down keeps the parent in place unless a child is strictly larger, and the
// left child is considered before the right.
type TriageHeap struct {
	data [MaxEmergencies + 1]EmergencyCase
	size int
}

// NewTriageHeap creates an empty triage heap.
func NewTriageHeap() *TriageHeap {
	return &TriageHeap{}
}

// CanPush checks if the heap can accept another case.
func (h *TriageHeap) CanPush() bool {
	return h.size < MaxEmergencies
}

// Push adds a case and restores the heap invariant by sifting it up. It
// reports false, leaving the heap unchanged, if the heap is full.
func (h *TriageHeap) Push(e EmergencyCase) bool {
	if !h.CanPush() {
		return false
	}

	h.size++
	h.data[h.size] = e

	i := h.size
	for i > 1 && h.data[i].Priority > h.data[i/2].Priority {
		h.data[i], h.data[i/2] = h.data[i/2], h.data[i]
		i /= 2
	}

	return true
}

// Peek returns the most critical case without removing it. The second return
// value is false if the heap is empty.
func (h *TriageHeap) Peek() (EmergencyCase, bool) {
	if h.size == 0 {
		return EmergencyCase{}, false
	}

	return h.data[1], true
}

// Pop removes and returns the most critical case. The last element moves to
// the root and sifts down until neither child exceeds it. The second return
// value is false if the heap is empty.
func (h *TriageHeap) Pop() (EmergencyCase, bool) {
	if h.size == 0 {
		return EmergencyCase{}, false
	}

	max := h.data[1]
	h.data[1] = h.data[h.size]
	h.size--

	i := 1
	for {
		left := 2 * i
		right := 2*i + 1
		largest := i

		if left <= h.size && h.data[left].Priority > h.data[largest].Priority {
			largest = left
		}
		if right <= h.size && h.data[right].Priority > h.data[largest].Priority {
			largest = right
		}
		if largest == i {
			break
		}

		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}

	return max, true
}

// All yields the pending cases in raw array order, index 1 through size. This
// is heap-shape order, not priority order; only the first case yielded is
// guaranteed to be the maximum. The sequence does not mutate the heap and can
// be ranged over repeatedly.
func (h *TriageHeap) All() iter.Seq[EmergencyCase] {
	return func(yield func(EmergencyCase) bool) {
		for i := 1; i <= h.size; i++ {
			if !yield(h.data[i]) {
				return
			}
		}
	}
}

// Size returns the number of pending cases.
func (h *TriageHeap) Size() int {
	return h.size
}

// Capacity returns the maximum number of cases the heap can hold.
func (h *TriageHeap) Capacity() int {
	return MaxEmergencies
}

// Clear discards all cases by resetting the size.
func (h *TriageHeap) Clear() {
	h.size = 0
}
