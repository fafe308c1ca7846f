package types

// ShiftStatus is a state a shift moves through during its lifecycle. The
// status history is append-only; a shift is billable once it has recorded a
// completed entry.
type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
	ShiftStatusStarted   ShiftStatus = "started"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
	ShiftStatusNoShow    ShiftStatus = "no_show"
)

func (s ShiftStatus) Validate() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusStarted, ShiftStatusCompleted,
		ShiftStatusCancelled, ShiftStatusNoShow:
		return true
	}
	return false
}
