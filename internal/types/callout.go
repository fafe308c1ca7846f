package types

// CalloutStatus is a state a callout response moves through. Only completed
// entries with both a start and end timestamp are billable.
type CalloutStatus string

const (
	CalloutStatusReported   CalloutStatus = "reported"
	CalloutStatusDispatched CalloutStatus = "dispatched"
	CalloutStatusOnSite     CalloutStatus = "on_site"
	CalloutStatusCompleted  CalloutStatus = "completed"
	CalloutStatusCancelled  CalloutStatus = "cancelled"
)

func (s CalloutStatus) Validate() bool {
	switch s {
	case CalloutStatusReported, CalloutStatusDispatched, CalloutStatusOnSite,
		CalloutStatusCompleted, CalloutStatusCancelled:
		return true
	}
	return false
}
