package ward

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SupplyStack", func() {
	var stack *SupplyStack

	BeforeEach(func() {
		stack = NewSupplyStack()
	})

	Context("when newly created", func() {
		It("should be empty", func() {
			Expect(stack.Size()).To(Equal(0))
		})

		It("should fail to pop", func() {
			_, ok := stack.Pop()
			Expect(ok).To(BeFalse())
		})

		It("should have no distinct types", func() {
			Expect(stack.DistinctTypes()).To(BeEmpty())
		})
	})

	It("should pop what was just pushed", func() {
		stack.Push(NewSupplyBatch("Gauze", 40, "B-771"))
		b, ok := stack.Pop()
		Expect(ok).To(BeTrue())
		Expect(b).To(Equal(NewSupplyBatch("Gauze", 40, "B-771")))
	})

	It("should pop in LIFO order", func() {
		stack.Push(NewSupplyBatch("Gauze", 40, "B-1"))
		stack.Push(NewSupplyBatch("Saline", 12, "B-2"))
		stack.Push(NewSupplyBatch("Gloves", 200, "B-3"))

		b, _ := stack.Pop()
		Expect(b.Type).To(Equal("Gloves"))
		b, _ = stack.Pop()
		Expect(b.Type).To(Equal("Saline"))
		b, _ = stack.Pop()
		Expect(b.Type).To(Equal("Gauze"))
	})

	Context("when the stack is full", func() {
		BeforeEach(func() {
			for i := 0; i < MaxSupplies; i++ {
				stack.Push(NewSupplyBatch("Gauze", i, fmt.Sprintf("B-%d", i)))
			}
		})

		It("should reject further batches", func() {
			Expect(stack.CanPush()).To(BeFalse())
			Expect(stack.Push(NewSupplyBatch("Saline", 1, "B-X"))).To(BeFalse())
			Expect(stack.Size()).To(Equal(MaxSupplies))
		})
	})

	Describe("distinct types", func() {
		It("should list each type once in bottom-up first-encounter order", func() {
			stack.Push(NewSupplyBatch("Gauze", 40, "B-1"))
			stack.Push(NewSupplyBatch("Saline", 12, "B-2"))
			stack.Push(NewSupplyBatch("Gauze", 10, "B-3"))
			stack.Push(NewSupplyBatch("Gloves", 200, "B-4"))
			stack.Push(NewSupplyBatch("Saline", 6, "B-5"))

			Expect(stack.DistinctTypes()).To(Equal(
				[]string{"Gauze", "Saline", "Gloves"}))
		})
	})

	Describe("removal by type", func() {
		BeforeEach(func() {
			stack.Push(NewSupplyBatch("Gauze", 40, "B-1"))
			stack.Push(NewSupplyBatch("Saline", 12, "B-2"))
			stack.Push(NewSupplyBatch("Gauze", 10, "B-3"))
			stack.Push(NewSupplyBatch("Gloves", 200, "B-4"))
		})

		It("should remove the most recent batch of the chosen type", func() {
			b, ok := stack.RemoveLatestByType("Gauze")
			Expect(ok).To(BeTrue())
			Expect(b.Batch).To(Equal("B-3"))
		})

		It("should preserve the relative order of the remaining batches", func() {
			stack.RemoveLatestByType("Gauze")

			var batches []string
			for b := range stack.BottomUp() {
				batches = append(batches, b.Batch)
			}
			Expect(batches).To(Equal([]string{"B-1", "B-2", "B-4"}))
		})

		It("should remove the top when the chosen type is on top", func() {
			b, ok := stack.RemoveLatestByType("Gloves")
			Expect(ok).To(BeTrue())
			Expect(b.Batch).To(Equal("B-4"))
			Expect(stack.Size()).To(Equal(3))
		})

		It("should fail when no batch of the type is present", func() {
			_, ok := stack.RemoveLatestByType("Morphine")
			Expect(ok).To(BeFalse())
			Expect(stack.Size()).To(Equal(4))
		})
	})

	It("should traverse from the top down", func() {
		stack.Push(NewSupplyBatch("Gauze", 40, "B-1"))
		stack.Push(NewSupplyBatch("Saline", 12, "B-2"))

		batches := collect(stack.All())
		Expect(batches).To(HaveLen(2))
		Expect(batches[0].Batch).To(Equal("B-2"))
		Expect(batches[1].Batch).To(Equal("B-1"))
	})

	It("should keep negative and huge quantities as given", func() {
		b := NewSupplyBatch("Gauze", 1<<30, "B-1")
		Expect(b.Quantity).To(Equal(1 << 30))
	})
})
