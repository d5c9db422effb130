package datarecording

import (
	"os"
	"strings"
	"time"
)

const timeFormat = "2006-01-02 15:04:05.000000000"

// An OpEntry is one audit row for a mutating ward operation.
type OpEntry struct {
	Time   string
	Role   string
	Op     string
	Detail string
}

type sessionInfo struct {
	Property string
	Value    string
}

// OpRecorder logs ward operations and session boundaries through a
// DataRecorder.
type OpRecorder struct {
	opTable      string
	sessionTable string
	recorder     DataRecorder
}

// NewOpRecorder creates an OpRecorder and its tables on the given backend.
func NewOpRecorder(recorder DataRecorder) *OpRecorder {
	r := &OpRecorder{
		opTable:      "operations",
		sessionTable: "session_info",
		recorder:     recorder,
	}

	recorder.CreateTable(r.opTable, OpEntry{})
	recorder.CreateTable(r.sessionTable, sessionInfo{})

	return r
}

// Start records the session start time and the launching command.
func (r *OpRecorder) Start() {
	now := time.Now().Format(timeFormat)
	r.recorder.InsertData(r.sessionTable, sessionInfo{"Start Time", now})

	cmd := strings.Join(os.Args, " ")
	r.recorder.InsertData(r.sessionTable, sessionInfo{"Command", cmd})
}

// Record logs one mutating operation. Role names the menu the operator was
// in, op the action, and detail a short record summary.
func (r *OpRecorder) Record(role, op, detail string) {
	r.recorder.InsertData(r.opTable, OpEntry{
		Time:   time.Now().Format(timeFormat),
		Role:   role,
		Op:     op,
		Detail: detail,
	})
}

// End records the session end time and flushes everything buffered.
func (r *OpRecorder) End() {
	now := time.Now().Format(timeFormat)
	r.recorder.InsertData(r.sessionTable, sessionInfo{"End Time", now})

	r.recorder.Flush()
}
