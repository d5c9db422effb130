// Package storage persists the ward containers as plain text files, one file
// per container. Every save rewrites the whole file; every load rebuilds the
// container from scratch and tolerates truncated or partially corrupt files
// by stopping at the first incomplete record.
package storage

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/triagehall/wardkeeper/ward"
)

// File names within the store directory.
const (
	PatientFile   = "patients.txt"
	SupplyFile    = "supplies.txt"
	EmergencyFile = "emergencies.txt"
	AmbulanceFile = "ambulances.txt"
)

// A Store reads and writes the four container files under one directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// SavePatients rewrites the patient file in queue order, three lines per
// record: id, name, condition.
func (s *Store) SavePatients(q *ward.AdmissionQueue) error {
	f, err := os.Create(s.path(PatientFile))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for p := range q.All() {
		writeLine(w, p.ID)
		writeLine(w, p.Name)
		writeLine(w, p.Condition)
	}

	return closeFlushed(w, f)
}

// LoadPatients replaces the queue contents with the records in the patient
// file and returns how many were loaded. A missing file leaves the queue
// cleared and is not an error.
func (s *Store) LoadPatients(q *ward.AdmissionQueue) (int, error) {
	q.Clear()

	lines, err := openLines(s.path(PatientFile))
	if err != nil {
		return 0, nil
	}
	defer lines.Close()

	loaded := 0
	for {
		id, ok := lines.NextRecordLine()
		if !ok {
			break
		}
		name, ok := lines.NextLine()
		if !ok {
			break
		}
		condition, ok := lines.NextLine()
		if !ok {
			break
		}

		if !q.Push(ward.NewPatient(id, name, condition)) {
			break
		}
		loaded++
	}

	return loaded, nil
}

// SaveSupplies rewrites the supply file bottom to top, three lines per
// record: type, quantity, batch.
func (s *Store) SaveSupplies(st *ward.SupplyStack) error {
	f, err := os.Create(s.path(SupplyFile))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for b := range st.BottomUp() {
		writeLine(w, b.Type)
		writeLine(w, strconv.Itoa(b.Quantity))
		writeLine(w, b.Batch)
	}

	return closeFlushed(w, f)
}

// LoadSupplies replaces the stack contents with the records in the supply
// file, pushed bottom to top, and returns how many were loaded.
func (s *Store) LoadSupplies(st *ward.SupplyStack) (int, error) {
	st.Clear()

	lines, err := openLines(s.path(SupplyFile))
	if err != nil {
		return 0, nil
	}
	defer lines.Close()

	loaded := 0
	for {
		supplyType, ok := lines.NextRecordLine()
		if !ok {
			break
		}
		quantity, ok := lines.NextInt()
		if !ok {
			break
		}
		batch, ok := lines.NextLine()
		if !ok {
			break
		}

		if !st.Push(ward.NewSupplyBatch(supplyType, quantity, batch)) {
			break
		}
		loaded++
	}

	return loaded, nil
}

// SaveEmergencies rewrites the emergency file in raw heap array order, three
// lines per record: patient, type, priority.
func (s *Store) SaveEmergencies(h *ward.TriageHeap) error {
	f, err := os.Create(s.path(EmergencyFile))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for e := range h.All() {
		writeLine(w, e.Patient)
		writeLine(w, e.Type)
		writeLine(w, strconv.Itoa(e.Priority))
	}

	return closeFlushed(w, f)
}

// LoadEmergencies replaces the heap contents with the records in the
// emergency file and returns how many were loaded. Records go through the
// heap's own Push, so the in-memory invariant holds whatever order the file
// is in.
func (s *Store) LoadEmergencies(h *ward.TriageHeap) (int, error) {
	h.Clear()

	lines, err := openLines(s.path(EmergencyFile))
	if err != nil {
		return 0, nil
	}
	defer lines.Close()

	loaded := 0
	for {
		patient, ok := lines.NextRecordLine()
		if !ok {
			break
		}
		emergencyType, ok := lines.NextLine()
		if !ok {
			break
		}
		priority, ok := lines.NextInt()
		if !ok {
			break
		}

		if !h.Push(ward.NewEmergencyCase(patient, emergencyType, priority)) {
			break
		}
		loaded++
	}

	return loaded, nil
}

// SaveAmbulances rewrites the ambulance file in rotation order, one plate per
// line.
func (s *Store) SaveAmbulances(q *ward.RotationQueue) error {
	f, err := os.Create(s.path(AmbulanceFile))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for a := range q.All() {
		writeLine(w, a.Plate)
	}

	return closeFlushed(w, f)
}

// LoadAmbulances replaces the roster with the plates in the ambulance file
// and returns how many were loaded.
func (s *Store) LoadAmbulances(q *ward.RotationQueue) (int, error) {
	q.Clear()

	lines, err := openLines(s.path(AmbulanceFile))
	if err != nil {
		return 0, nil
	}
	defer lines.Close()

	loaded := 0
	for {
		plate, ok := lines.NextRecordLine()
		if !ok {
			break
		}
		if !q.Push(ward.NewAmbulance(plate)) {
			break
		}
		loaded++
	}

	return loaded, nil
}

func writeLine(w *bufio.Writer, s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

func closeFlushed(w *bufio.Writer, f *os.File) error {
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// lineReader walks a container file line by line.
type lineReader struct {
	f  *os.File
	sc *bufio.Scanner
}

func openLines(path string) (*lineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &lineReader{f: f, sc: bufio.NewScanner(f)}, nil
}

func (r *lineReader) Close() {
	r.f.Close()
}

// NextLine returns the next line, stripped of a trailing CR. It reports false
// at EOF.
func (r *lineReader) NextLine() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	return strings.TrimRight(r.sc.Text(), "\r"), true
}

// NextRecordLine is NextLine but skips blank lines, so stray empty lines
// between records do not start a bogus record.
func (r *lineReader) NextRecordLine() (string, bool) {
	for {
		line, ok := r.NextLine()
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
	}
}

// NextInt parses the next line as a decimal integer. A line that is not an
// integer reports false, which truncates the load at this record.
func (r *lineReader) NextInt() (int, bool) {
	line, ok := r.NextLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return n, true
}
