package ward

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func collect[T any](seq func(yield func(T) bool)) []T {
	var out []T
	seq(func(e T) bool {
		out = append(out, e)
		return true
	})
	return out
}

var _ = Describe("AdmissionQueue", func() {
	var queue *AdmissionQueue

	BeforeEach(func() {
		queue = NewAdmissionQueue()
	})

	Context("when newly created", func() {
		It("should be empty", func() {
			Expect(queue.Size()).To(Equal(0))
		})

		It("should have the patient capacity", func() {
			Expect(queue.Capacity()).To(Equal(MaxPatients))
		})

		It("should be able to push", func() {
			Expect(queue.CanPush()).To(BeTrue())
		})

		It("should fail to pop", func() {
			_, ok := queue.Pop()
			Expect(ok).To(BeFalse())
		})
	})

	Context("when patients are admitted", func() {
		BeforeEach(func() {
			queue.Push(NewPatient("A01", "Alice", "Flu"))
			queue.Push(NewPatient("A02", "Bob", "Cut"))
		})

		It("should count the waiting patients", func() {
			Expect(queue.Size()).To(Equal(2))
		})

		It("should discharge the earliest admitted patient first", func() {
			p, ok := queue.Pop()
			Expect(ok).To(BeTrue())
			Expect(p.ID).To(Equal("A01"))
			Expect(p.Name).To(Equal("Alice"))
			Expect(p.Condition).To(Equal("Flu"))
		})

		It("should leave only the later patient after one discharge", func() {
			queue.Pop()
			patients := collect(queue.All())
			Expect(patients).To(HaveLen(1))
			Expect(patients[0].ID).To(Equal("A02"))
		})
	})

	It("should preserve strict FIFO order", func() {
		for i := 0; i < 10; i++ {
			ok := queue.Push(NewPatient(
				fmt.Sprintf("P%02d", i), fmt.Sprintf("Patient %d", i), "Checkup"))
			Expect(ok).To(BeTrue())
		}

		for i := 0; i < 10; i++ {
			p, ok := queue.Pop()
			Expect(ok).To(BeTrue())
			Expect(p.ID).To(Equal(fmt.Sprintf("P%02d", i)))
		}
	})

	It("should wrap the cursors around the backing array", func() {
		for round := 0; round < 3; round++ {
			for i := 0; i < MaxPatients; i++ {
				Expect(queue.Push(NewPatient("X", "Y", ""))).To(BeTrue())
			}
			Expect(queue.CanPush()).To(BeFalse())
			for i := 0; i < MaxPatients; i++ {
				_, ok := queue.Pop()
				Expect(ok).To(BeTrue())
			}
			Expect(queue.Size()).To(Equal(0))
		}
	})

	Context("when the queue is full", func() {
		BeforeEach(func() {
			for i := 0; i < MaxPatients; i++ {
				queue.Push(NewPatient(fmt.Sprintf("P%03d", i), "Name", ""))
			}
		})

		It("should reject further admissions without side effects", func() {
			Expect(queue.Push(NewPatient("Z", "Zoe", ""))).To(BeFalse())
			Expect(queue.Size()).To(Equal(MaxPatients))

			p, _ := queue.Pop()
			Expect(p.ID).To(Equal("P000"))
		})
	})

	It("should reject a patient with an empty ID or name", func() {
		Expect(queue.Push(Patient{Name: "NoID"})).To(BeFalse())
		Expect(queue.Push(Patient{ID: "P01"})).To(BeFalse())
		Expect(queue.Size()).To(Equal(0))
	})

	It("should allow repeated traversal without mutation", func() {
		queue.Push(NewPatient("A01", "Alice", "Flu"))
		queue.Push(NewPatient("A02", "Bob", "Cut"))

		first := collect(queue.All())
		second := collect(queue.All())
		Expect(second).To(Equal(first))
		Expect(queue.Size()).To(Equal(2))
	})

	It("should be empty after clearing", func() {
		queue.Push(NewPatient("A01", "Alice", "Flu"))
		queue.Clear()
		Expect(queue.Size()).To(Equal(0))
		Expect(collect(queue.All())).To(BeEmpty())
	})

	It("should truncate overlong fields on ingestion", func() {
		longName := ""
		for i := 0; i < 100; i++ {
			longName += "n"
		}

		p := NewPatient("P0123456789ABCDEFGH", longName, "c")
		Expect(len(p.ID)).To(Equal(MaxPatientIDLen))
		Expect(len(p.Name)).To(Equal(MaxNameLen))
	})
})
