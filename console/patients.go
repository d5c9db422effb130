package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/triagehall/wardkeeper/ward"
)

func (c *Console) menuPatients() {
	for {
		c.banner("PATIENT ADMISSION CLERK (Queue)")
		fmt.Fprintln(c.out, "1) Admit Patient")
		fmt.Fprintln(c.out, "2) Discharge Patient (earliest)")
		fmt.Fprintln(c.out, "3) View Patient Queue")
		fmt.Fprintln(c.out, "0) Back")

		ch, ok := c.promptInt("> ")
		if !ok {
			return
		}

		switch ch {
		case 0:
			return
		case 1:
			c.admitPatient()
		case 2:
			c.dischargePatient()
		case 3:
			c.viewPatients()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) admitPatient() {
	if !c.patients.CanPush() {
		fmt.Fprintln(c.out, "Patient queue is full.")
		return
	}

	id := c.promptLine("Enter Patient ID (e.g., P0028): ")
	name := c.promptLine("Enter Patient Name: ")
	condition := c.promptLine("Enter Condition Type (e.g., Flu/Checkup): ")

	patient := ward.NewPatient(id, name, condition)
	if c.patients.Push(patient) {
		fmt.Fprintln(c.out, "Admitted to queue.")
		c.savePatients()
		c.record("patients", "admit",
			fmt.Sprintf("[%s] %s (%s)", patient.ID, patient.Name, patient.Condition))
	} else {
		fmt.Fprintln(c.out,
			"Failed to admit (ensure ID/Name not empty and queue not full).")
	}
}

func (c *Console) dischargePatient() {
	patient, ok := c.patients.Pop()
	if !ok {
		fmt.Fprintln(c.out, "No patients to discharge.")
		return
	}

	fmt.Fprintf(c.out, "Discharged earliest admitted patient: [%s] %s (%s)\n",
		patient.ID, patient.Name, patient.Condition)
	c.savePatients()
	c.record("patients", "discharge",
		fmt.Sprintf("[%s] %s (%s)", patient.ID, patient.Name, patient.Condition))
}

func (c *Console) viewPatients() {
	if c.patients.Size() == 0 {
		fmt.Fprintln(c.out, "No patients waiting.")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tCondition")
	for p := range c.patients.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Condition)
	}
	tw.Flush()

	fmt.Fprintf(c.out, "Total waiting: %d\n", c.patients.Size())
}
