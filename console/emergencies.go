package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/triagehall/wardkeeper/ward"
)

func (c *Console) menuEmergencies() {
	for {
		c.banner("EMERGENCY DEPT OFFICER (Priority Queue - Max Heap)")
		fmt.Fprintln(c.out, "1) Log Emergency Case (push)")
		fmt.Fprintln(c.out, "2) Process Most Critical Case (pop-max)")
		fmt.Fprintln(c.out, "3) View Pending Emergency Cases")
		fmt.Fprintln(c.out, "0) Back")

		ch, ok := c.promptInt("> ")
		if !ok {
			return
		}

		switch ch {
		case 0:
			return
		case 1:
			c.logEmergency()
		case 2:
			c.processMostCritical()
		case 3:
			c.viewEmergencies()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) logEmergency() {
	if !c.triage.CanPush() {
		fmt.Fprintln(c.out, "Emergency list full.")
		return
	}

	patient := c.promptLine("Patient Name: ")
	emergencyType := c.promptLine("Type of Emergency: ")

	priority, ok := c.promptInt(
		fmt.Sprintf("Priority Level (%d-%d, higher is more critical): ",
			ward.MinPriority, ward.MaxPriority))
	if !ok {
		return
	}

	e := ward.NewEmergencyCase(patient, emergencyType, priority)
	if c.triage.Push(e) {
		fmt.Fprintln(c.out, "Emergency logged.")
		c.saveEmergencies()
		c.record("emergencies", "push",
			fmt.Sprintf("%s (%s) priority %d", e.Patient, e.Type, e.Priority))
	} else {
		fmt.Fprintln(c.out, "Emergency queue is full.")
	}
}

func (c *Console) processMostCritical() {
	e, ok := c.triage.Pop()
	if !ok {
		fmt.Fprintln(c.out, "No emergencies in queue.")
		return
	}

	fmt.Fprintf(c.out, "ATTEND MOST CRITICAL => %s (%s) with priority %d\n",
		e.Patient, e.Type, e.Priority)
	c.saveEmergencies()
	c.record("emergencies", "pop",
		fmt.Sprintf("%s (%s) priority %d", e.Patient, e.Type, e.Priority))
}

func (c *Console) viewEmergencies() {
	if c.triage.Size() == 0 {
		fmt.Fprintln(c.out, "No emergency cases pending.")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Patient\tEmergency\tPriority")
	for e := range c.triage.All() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.Patient, e.Type, e.Priority)
	}
	tw.Flush()

	fmt.Fprintln(c.out, "(Highest priority case is always processed first.)")
}
