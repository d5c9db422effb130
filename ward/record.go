// Package ward provides the four record containers used by the facility:
// the patient admission queue, the supply stack, the emergency triage heap,
// and the ambulance rotation queue. Containers are direct structs with
// fixed-capacity backing arrays and explicit cursor fields.
package ward

// Container capacities.
const (
	MaxPatients    = 100
	MaxSupplies    = 100
	MaxEmergencies = 100
	MaxAmbulances  = 20
)

// Field byte budgets. Longer values are truncated on ingestion.
const (
	MaxPatientIDLen     = 15
	MaxNameLen          = 49
	MaxConditionLen     = 29
	MaxSupplyTypeLen    = 29
	MaxBatchLen         = 19
	MaxEmergencyTypeLen = 39
	MaxPlateLen         = 15
)

// Priority bounds for emergency cases.
const (
	MinPriority = 0
	MaxPriority = 100
)

// A Patient waits in the admission queue.
type Patient struct {
	ID        string
	Name      string
	Condition string
}

// NewPatient creates a patient record, truncating fields to their budgets.
func NewPatient(id, name, condition string) Patient {
	return Patient{
		ID:        truncate(id, MaxPatientIDLen),
		Name:      truncate(name, MaxNameLen),
		Condition: truncate(condition, MaxConditionLen),
	}
}

// A SupplyBatch is one received batch of a supply type.
type SupplyBatch struct {
	Type     string
	Quantity int
	Batch    string
}

// NewSupplyBatch creates a supply record. Quantity is stored as given; the
// interactive prompt is the only place that enforces a lower bound.
func NewSupplyBatch(supplyType string, quantity int, batch string) SupplyBatch {
	return SupplyBatch{
		Type:     truncate(supplyType, MaxSupplyTypeLen),
		Quantity: quantity,
		Batch:    truncate(batch, MaxBatchLen),
	}
}

// An EmergencyCase is a pending case ordered by priority. Higher is more
// critical.
type EmergencyCase struct {
	Patient  string
	Type     string
	Priority int
}

// NewEmergencyCase creates an emergency record. The priority is clamped into
// [MinPriority, MaxPriority] on ingestion.
func NewEmergencyCase(patient, emergencyType string, priority int) EmergencyCase {
	return EmergencyCase{
		Patient:  truncate(patient, MaxNameLen),
		Type:     truncate(emergencyType, MaxEmergencyTypeLen),
		Priority: ClampPriority(priority),
	}
}

// An Ambulance is identified by its plate only.
type Ambulance struct {
	Plate string
}

// NewAmbulance creates an ambulance record.
func NewAmbulance(plate string) Ambulance {
	return Ambulance{Plate: truncate(plate, MaxPlateLen)}
}

// ClampPriority forces p into the legal priority range.
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
