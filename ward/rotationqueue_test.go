package ward

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RotationQueue", func() {
	var queue *RotationQueue

	BeforeEach(func() {
		queue = NewRotationQueue()
	})

	plates := func() []string {
		var out []string
		for a := range queue.All() {
			out = append(out, a.Plate)
		}
		return out
	}

	Context("when newly created", func() {
		It("should be empty", func() {
			Expect(queue.Size()).To(Equal(0))
		})

		It("should have the ambulance capacity", func() {
			Expect(queue.Capacity()).To(Equal(MaxAmbulances))
		})
	})

	It("should keep registration order, head to tail", func() {
		queue.Push(NewAmbulance("WXY 1001"))
		queue.Push(NewAmbulance("WXY 1002"))
		queue.Push(NewAmbulance("WXY 1003"))

		Expect(plates()).To(Equal([]string{"WXY 1001", "WXY 1002", "WXY 1003"}))
	})

	Describe("rotation", func() {
		BeforeEach(func() {
			queue.Push(NewAmbulance("A"))
			queue.Push(NewAmbulance("B"))
			queue.Push(NewAmbulance("C"))
		})

		It("should move the head to the tail", func() {
			queue.RotateOnce()
			Expect(plates()).To(Equal([]string{"B", "C", "A"}))
		})

		It("should return to the original order after a full cycle", func() {
			before := plates()
			for i := 0; i < queue.Size(); i++ {
				queue.RotateOnce()
			}
			Expect(plates()).To(Equal(before))
		})

		It("should keep the set of ambulances unchanged", func() {
			queue.RotateOnce()
			queue.RotateOnce()
			Expect(plates()).To(ConsistOf("A", "B", "C"))
			Expect(queue.Size()).To(Equal(3))
		})
	})

	It("should not change order when rotating zero or one elements", func() {
		queue.RotateOnce()
		Expect(queue.Size()).To(Equal(0))

		queue.Push(NewAmbulance("SOLO"))
		queue.RotateOnce()
		Expect(plates()).To(Equal([]string{"SOLO"}))
	})

	Context("when the roster is full", func() {
		BeforeEach(func() {
			for i := 0; i < MaxAmbulances; i++ {
				queue.Push(NewAmbulance(fmt.Sprintf("AMB %02d", i)))
			}
		})

		It("should reject further registrations", func() {
			Expect(queue.CanPush()).To(BeFalse())
			Expect(queue.Push(NewAmbulance("EXTRA"))).To(BeFalse())
			Expect(queue.Size()).To(Equal(MaxAmbulances))
		})

		It("should still rotate through the full roster", func() {
			before := plates()
			for i := 0; i < MaxAmbulances; i++ {
				queue.RotateOnce()
			}
			Expect(plates()).To(Equal(before))
		})
	})

	It("should reject an empty plate", func() {
		Expect(queue.Push(Ambulance{})).To(BeFalse())
		Expect(queue.Size()).To(Equal(0))
	})
})
