package ward

import "iter"

// AdmissionQueue is a FIFO queue for patients. It uses a fixed backing array
// circularly, tracked by head and tail cursors plus a count.
type AdmissionQueue struct {
	data  [MaxPatients]Patient
	head  int
	tail  int
	count int
}

// NewAdmissionQueue creates an empty admission queue.
func NewAdmissionQueue() *AdmissionQueue {
	return &AdmissionQueue{}
}

// CanPush checks if the queue can accept another patient.
func (q *AdmissionQueue) CanPush() bool {
	return q.count < MaxPatients
}

// Push admits a patient at the tail. It reports false, leaving the queue
// unchanged, if the queue is full or the patient has an empty ID or name.
func (q *AdmissionQueue) Push(p Patient) bool {
	if !q.CanPush() {
		return false
	}
	if p.ID == "" || p.Name == "" {
		return false
	}

	q.data[q.tail] = p
	q.tail = (q.tail + 1) % MaxPatients
	q.count++

	return true
}

// Pop removes and returns the earliest admitted patient. The second return
// value is false if the queue is empty.
func (q *AdmissionQueue) Pop() (Patient, bool) {
	if q.count == 0 {
		return Patient{}, false
	}

	p := q.data[q.head]
	q.head = (q.head + 1) % MaxPatients
	q.count--

	return p, true
}

// All yields the waiting patients in admission order, head to tail. The
// sequence does not mutate the queue and can be ranged over repeatedly.
func (q *AdmissionQueue) All() iter.Seq[Patient] {
	return func(yield func(Patient) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.data[(q.head+i)%MaxPatients]) {
				return
			}
		}
	}
}

// Size returns the number of waiting patients.
func (q *AdmissionQueue) Size() int {
	return q.count
}

// Capacity returns the maximum number of patients the queue can hold.
func (q *AdmissionQueue) Capacity() int {
	return MaxPatients
}

// Clear discards all patients by resetting the cursors. Slots beyond the
// count are never read, so the array is not zeroed.
func (q *AdmissionQueue) Clear() {
	q.head = 0
	q.tail = 0
	q.count = 0
}
