package models

// Pending confirmation kinds.
const (
	ConfirmSmartMatch = "smart_match"
	ConfirmFallback   = "fallback"
)

// PendingConfirmation records that the receptionist proposed a specific
// employee and is waiting for the visitor's yes/no.
type PendingConfirmation struct {
	EmployeeID string `json:"employeeId"`
	Kind       string `json:"kind"`
}

// ConversationContext is the per-session state carried across turns. It is
// set or cleared on every routed turn and expires with the session TTL.
type ConversationContext struct {
	VisitorName         string               `json:"visitorName,omitempty"`
	PurposeOfVisit      string               `json:"purposeOfVisit,omitempty"`
	PendingConfirmation *PendingConfirmation `json:"pendingConfirmation,omitempty"`
}
