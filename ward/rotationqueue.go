package ward

import "iter"

// RotationQueue schedules ambulances round-robin. It is a circular queue with
// the same head/tail/count mechanics as AdmissionQueue, plus a rotation that
// moves the logical head to the tail without changing the set of elements.
type RotationQueue struct {
	data  [MaxAmbulances]Ambulance
	head  int
	tail  int
	count int
}

// NewRotationQueue creates an empty rotation queue.
func NewRotationQueue() *RotationQueue {
	return &RotationQueue{}
}

// CanPush checks if the roster has room for another ambulance.
func (q *RotationQueue) CanPush() bool {
	return q.count < MaxAmbulances
}

// Push registers an ambulance at the tail of the rotation. It reports false,
// leaving the queue unchanged, if the roster is full or the plate is empty.
func (q *RotationQueue) Push(a Ambulance) bool {
	if !q.CanPush() {
		return false
	}
	if a.Plate == "" {
		return false
	}

	q.data[q.tail] = a
	q.tail = (q.tail + 1) % MaxAmbulances
	q.count++

	return true
}

// Pop removes and returns the ambulance at the head of the rotation. The
// second return value is false if the roster is empty.
func (q *RotationQueue) Pop() (Ambulance, bool) {
	if q.count == 0 {
		return Ambulance{}, false
	}

	a := q.data[q.head]
	q.head = (q.head + 1) % MaxAmbulances
	q.count--

	return a, true
}

// RotateOnce moves the current head to the tail, advancing which ambulance is
// next up. Rotating a roster of zero or one ambulances changes nothing.
func (q *RotationQueue) RotateOnce() {
	if q.count <= 1 {
		return
	}

	first, _ := q.Pop()
	q.Push(first)
}

// All yields the roster in rotation order, head to tail. The sequence does
// not mutate the queue and can be ranged over repeatedly.
func (q *RotationQueue) All() iter.Seq[Ambulance] {
	return func(yield func(Ambulance) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.data[(q.head+i)%MaxAmbulances]) {
				return
			}
		}
	}
}

// Size returns the number of registered ambulances.
func (q *RotationQueue) Size() int {
	return q.count
}

// Capacity returns the maximum roster size.
func (q *RotationQueue) Capacity() int {
	return MaxAmbulances
}

// Clear discards the roster by resetting the cursors.
func (q *RotationQueue) Clear() {
	q.head = 0
	q.tail = 0
	q.count = 0
}
