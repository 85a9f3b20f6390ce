package models

// Intent tags recognized by the extractor.
const (
	IntentCollectName    = "collect_name"
	IntentCollectPurpose = "collect_purpose"
	IntentMakeCall       = "make_call"
	IntentHumanHandoff   = "human_handoff"
	IntentConfirmYes     = "confirm_yes"
	IntentConfirmNo      = "confirm_no"
	IntentAskQuestion    = "ask_question"
	IntentLeaveMessage   = "leave_message"
	IntentUnknown        = "unknown"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation history the client resubmits
// with every request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Intent is the structured interpretation of a single visitor utterance,
// produced by the LLM extractor. Ephemeral, one per turn.
type Intent struct {
	Intent         string  `json:"intent"`
	VisitorName    string  `json:"visitorName,omitempty"`
	PurposeOfVisit string  `json:"purposeOfVisit,omitempty"`
	Employee       string  `json:"employee,omitempty"`
	Department     string  `json:"department,omitempty"`
	Confidence     float64 `json:"confidence"`

	// Policy-sensitive signals surfaced by the extractor.
	HasRestrictedRequest bool   `json:"hasRestrictedRequest,omitempty"`
	ThirdPartyReference  string `json:"thirdPartyReference,omitempty"`
	RequiresHumanDesk    bool   `json:"requiresHumanDesk,omitempty"`

	// Response is the natural-language text to speak to the visitor.
	Response string `json:"response"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message             string    `json:"message"`
	ConversationHistory []Message `json:"conversationHistory"`
	SessionID           string    `json:"sessionId,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Intent     string  `json:"intent"`
	Employee   string  `json:"employee,omitempty"`
	Department string  `json:"department,omitempty"`
	Confidence float64 `json:"confidence"`
	Response   string  `json:"response"`

	EmployeeID         string `json:"employeeId,omitempty"`
	FallbackEmployee   string `json:"fallbackEmployee,omitempty"`
	FallbackEmployeeID string `json:"fallbackEmployeeId,omitempty"`

	RequiresConfirmation bool `json:"requiresConfirmation,omitempty"`
	CanProceedWithCall   bool `json:"canProceedWithCall,omitempty"`
	ShowDirectory        bool `json:"showDirectory,omitempty"`
	IsUrgent             bool `json:"isUrgent,omitempty"`

	SessionID string           `json:"sessionId,omitempty"`
	Decision  *RoutingDecision `json:"decision,omitempty"`
}
