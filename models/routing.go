package models

// Routing decision kinds.
const (
	DecisionNeedInfo     = "need_info"
	DecisionClarify      = "clarify"
	DecisionConfirmMatch = "confirm_match"
	DecisionProceed      = "proceed"
	DecisionEscalate     = "escalate"
)

// Fields the router may still need from the visitor.
const (
	FieldName    = "name"
	FieldPurpose = "purpose"
)

// RoutingDecision is the router's output for one turn. Constructed and
// consumed within a single request/response cycle.
type RoutingDecision struct {
	Kind string `json:"kind"`

	// need_info
	Field string `json:"field,omitempty"`

	// clarify
	Reason string `json:"reason,omitempty"`

	// confirm_match / proceed / escalate
	EmployeeID         string  `json:"employeeId,omitempty"`
	FallbackEmployeeID string  `json:"fallbackEmployeeId,omitempty"`
	ViaFallback        bool    `json:"viaFallback,omitempty"`
	Confidence         float64 `json:"confidence,omitempty"`
	Urgent             bool    `json:"urgent,omitempty"`
	Context            string  `json:"context,omitempty"`
}
