package console

import (
	"fmt"

	"github.com/triagehall/wardkeeper/ward"
)

func (c *Console) menuAmbulances() {
	for {
		c.banner("AMBULANCE DISPATCHER (Circular Queue)")
		fmt.Fprintln(c.out, "1) Register Ambulance (enqueue)")
		fmt.Fprintln(c.out, "2) Rotate Ambulance Shift")
		fmt.Fprintln(c.out, "3) Display Ambulance Schedule")
		fmt.Fprintln(c.out, "0) Back")

		ch, ok := c.promptInt("> ")
		if !ok {
			return
		}

		switch ch {
		case 0:
			return
		case 1:
			c.registerAmbulance()
		case 2:
			c.rotateShift()
		case 3:
			c.viewAmbulances()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) registerAmbulance() {
	if !c.roster.CanPush() {
		fmt.Fprintln(c.out, "Ambulance roster full.")
		return
	}

	plate := c.promptLine("Enter Ambulance Plate/ID: ")

	a := ward.NewAmbulance(plate)
	if c.roster.Push(a) {
		fmt.Fprintln(c.out, "Ambulance added to active-duty list.")
		c.saveAmbulances()
		c.record("ambulances", "register", a.Plate)
	} else {
		fmt.Fprintln(c.out, "Failed to register.")
	}
}

func (c *Console) rotateShift() {
	if c.roster.Size() == 0 {
		fmt.Fprintln(c.out, "No ambulances to rotate.")
		return
	}

	c.roster.RotateOnce()
	fmt.Fprintln(c.out, "Shift rotated. Next up is now at head.")
	c.saveAmbulances()

	if next, ok := c.rosterHead(); ok {
		c.record("ambulances", "rotate", "next up: "+next.Plate)
	}
}

func (c *Console) rosterHead() (ward.Ambulance, bool) {
	for a := range c.roster.All() {
		return a, true
	}
	return ward.Ambulance{}, false
}

func (c *Console) viewAmbulances() {
	if c.roster.Size() == 0 {
		fmt.Fprintln(c.out, "No ambulances registered.")
		return
	}

	fmt.Fprintln(c.out, "Rotation Order (head -> tail):")
	c.line('-')
	i := 0
	for a := range c.roster.All() {
		i++
		fmt.Fprintf(c.out, "%d. %s\n", i, a.Plate)
	}
	fmt.Fprintf(c.out, "Total ambulances: %d\n", c.roster.Size())
}
