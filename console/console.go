// Package console implements the interactive menu that drives the ward
// containers. Every mutating operation saves the affected container and,
// when an audit recorder is attached, logs one operation row.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/triagehall/wardkeeper/datarecording"
	"github.com/triagehall/wardkeeper/storage"
	"github.com/triagehall/wardkeeper/ward"
)

// Console owns the four containers and dispatches menu selections to them.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	patients *ward.AdmissionQueue
	supplies *ward.SupplyStack
	triage   *ward.TriageHeap
	roster   *ward.RotationQueue

	store *storage.Store
	audit *datarecording.OpRecorder
}

// New creates a console reading operator input from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,

		patients: ward.NewAdmissionQueue(),
		supplies: ward.NewSupplyStack(),
		triage:   ward.NewTriageHeap(),
		roster:   ward.NewRotationQueue(),
	}
}

// WithStore attaches the persistence store.
func (c *Console) WithStore(s *storage.Store) *Console {
	c.store = s
	return c
}

// WithAudit attaches the operation audit recorder.
func (c *Console) WithAudit(r *datarecording.OpRecorder) *Console {
	c.audit = r
	return c
}

// Patients returns the admission queue.
func (c *Console) Patients() *ward.AdmissionQueue { return c.patients }

// Supplies returns the supply stack.
func (c *Console) Supplies() *ward.SupplyStack { return c.supplies }

// Emergencies returns the triage heap.
func (c *Console) Emergencies() *ward.TriageHeap { return c.triage }

// Ambulances returns the rotation queue.
func (c *Console) Ambulances() *ward.RotationQueue { return c.roster }

// LoadAll fills all four containers from the store, reporting per-file
// results to the operator.
func (c *Console) LoadAll() {
	if c.store == nil {
		return
	}

	n, _ := c.store.LoadPatients(c.patients)
	fmt.Fprintf(c.out, "[OK] Loaded patients from %s (count=%d)\n",
		storage.PatientFile, n)

	n, _ = c.store.LoadSupplies(c.supplies)
	fmt.Fprintf(c.out, "[OK] Loaded supplies from %s (count=%d)\n",
		storage.SupplyFile, n)

	n, _ = c.store.LoadEmergencies(c.triage)
	fmt.Fprintf(c.out, "[OK] Loaded emergencies from %s (count=%d)\n",
		storage.EmergencyFile, n)

	n, _ = c.store.LoadAmbulances(c.roster)
	fmt.Fprintf(c.out, "[OK] Loaded ambulances from %s (count=%d)\n",
		storage.AmbulanceFile, n)
}

// Run drives the top-level menu until the operator exits or input ends.
func (c *Console) Run() {
	if c.audit != nil {
		c.audit.Start()
		defer c.audit.End()
	}

	for {
		c.banner("HOSPITAL PATIENT CARE MANAGEMENT SYSTEM")
		fmt.Fprintln(c.out, "1) Patient Admission Clerk (Queue)")
		fmt.Fprintln(c.out, "2) Medical Supply Manager (Stack)")
		fmt.Fprintln(c.out, "3) Emergency Dept Officer (Priority Queue)")
		fmt.Fprintln(c.out, "4) Ambulance Dispatcher (Circular Queue)")
		fmt.Fprintln(c.out, "0) Exit")

		ch, ok := c.promptInt("> ")
		if !ok {
			return
		}

		switch ch {
		case 0:
			fmt.Fprintln(c.out, "Goodbye!")
			return
		case 1:
			c.menuPatients()
		case 2:
			c.menuSupplies()
		case 3:
			c.menuEmergencies()
		case 4:
			c.menuAmbulances()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) banner(title string) {
	c.line('=')
	fmt.Fprintln(c.out, title)
	c.line('=')
}

func (c *Console) line(ch byte) {
	fmt.Fprintln(c.out, strings.Repeat(string(ch), 60))
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *Console) promptLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, _ := c.readLine()
	return line
}

// promptInt asks until the operator enters a number. It reports false only
// when the input stream ends.
func (c *Console) promptInt(prompt string) (int, bool) {
	for {
		fmt.Fprint(c.out, prompt)

		line, ok := c.readLine()
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}

		return n, true
	}
}

func (c *Console) record(role, op, detail string) {
	if c.audit != nil {
		c.audit.Record(role, op, detail)
	}
}

func (c *Console) reportSaveErr(file string, err error) {
	if err != nil {
		fmt.Fprintf(c.out, "[Error] Cannot write %s: %v\n", file, err)
	}
}

func (c *Console) savePatients() {
	if c.store != nil {
		c.reportSaveErr(storage.PatientFile, c.store.SavePatients(c.patients))
	}
}

func (c *Console) saveSupplies() {
	if c.store != nil {
		c.reportSaveErr(storage.SupplyFile, c.store.SaveSupplies(c.supplies))
	}
}

func (c *Console) saveEmergencies() {
	if c.store != nil {
		c.reportSaveErr(storage.EmergencyFile, c.store.SaveEmergencies(c.triage))
	}
}

func (c *Console) saveAmbulances() {
	if c.store != nil {
		c.reportSaveErr(storage.AmbulanceFile, c.store.SaveAmbulances(c.roster))
	}
}
