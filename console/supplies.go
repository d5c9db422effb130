package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/triagehall/wardkeeper/ward"
)

func (c *Console) menuSupplies() {
	for {
		c.banner("MEDICAL SUPPLY MANAGER (Stack)")
		fmt.Fprintln(c.out, "1) Add Supply Stock (push)")
		fmt.Fprintln(c.out, "2) Use Supply by Type (last batch of that type)")
		fmt.Fprintln(c.out, "3) View Current Supplies")
		fmt.Fprintln(c.out, "0) Back")

		ch, ok := c.promptInt("> ")
		if !ok {
			return
		}

		switch ch {
		case 0:
			return
		case 1:
			c.addSupply()
		case 2:
			c.useSupplyByType()
		case 3:
			c.viewSupplies()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) addSupply() {
	if !c.supplies.CanPush() {
		fmt.Fprintln(c.out, "Supply store is full.")
		return
	}

	supplyType := c.promptLine("Enter Supply Type: ")

	var quantity int
	for {
		n, ok := c.promptInt("Enter Quantity (>= 1): ")
		if !ok {
			return
		}
		if n < 1 {
			fmt.Fprintln(c.out, "Quantity must be at least 1. Please try again.")
			continue
		}
		quantity = n
		break
	}

	batch := c.promptLine("Enter Batch: ")

	b := ward.NewSupplyBatch(supplyType, quantity, batch)
	if c.supplies.Push(b) {
		fmt.Fprintln(c.out, "Recorded (stack top).")
		c.saveSupplies()
		c.record("supplies", "push",
			fmt.Sprintf("%s x%d (Batch: %s)", b.Type, b.Quantity, b.Batch))
	} else {
		fmt.Fprintln(c.out, "Failed to add supply.")
	}
}

func (c *Console) useSupplyByType() {
	if c.supplies.Size() == 0 {
		fmt.Fprintln(c.out, "No supplies to use.")
		return
	}

	types := c.supplies.DistinctTypes()

	fmt.Fprintln(c.out, "Available supply types:")
	for i, t := range types {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, t)
	}

	var choice int
	for {
		n, ok := c.promptInt(fmt.Sprintf("Choose a type (1-%d): ", len(types)))
		if !ok {
			return
		}
		if n < 1 || n > len(types) {
			fmt.Fprintln(c.out, "Choice out of range. Try again.")
			continue
		}
		choice = n
		break
	}

	used, ok := c.supplies.RemoveLatestByType(types[choice-1])
	if !ok {
		fmt.Fprintln(c.out, "Unexpected error: type not found.")
		return
	}

	fmt.Fprintf(c.out, "Using supply: %s x%d (Batch: %s)\n",
		used.Type, used.Quantity, used.Batch)
	c.saveSupplies()
	c.record("supplies", "use",
		fmt.Sprintf("%s x%d (Batch: %s)", used.Type, used.Quantity, used.Batch))
}

func (c *Console) viewSupplies() {
	if c.supplies.Size() == 0 {
		fmt.Fprintln(c.out, "No supplies available.")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Type\tQty\tBatch")
	for b := range c.supplies.All() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", b.Type, b.Quantity, b.Batch)
	}
	tw.Flush()

	fmt.Fprintf(c.out, "Total batches: %d\n", c.supplies.Size())
}
