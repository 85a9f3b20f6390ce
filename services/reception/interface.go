package reception

import (
	"context"

	"frontdesk/directory"
	"frontdesk/models"
	ai "frontdesk/services/intelligence"
)

// ReceptionService routes one visitor turn to a response and a routing
// decision. It never fails a turn: internal errors degrade to an apology.
type ReceptionService interface {
	HandleTurn(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}

// DefaultReceptionService is the production implementation.
type DefaultReceptionService struct {
	Extractor ai.IntentExtractor
	Matcher   ai.NameMatcher
	Directory directory.Directory

	// Sessions carries pendingConfirmation and visitor identity across
	// turns. Optional; without it the router falls back to scanning the
	// conversation history for the pending-confirmation marker.
	Sessions ContextStore

	// SupervisorID is the fixed human-handoff target.
	SupervisorID string

	// MinMatchConfidence is the smart-match acceptance floor (exclusive).
	MinMatchConfidence float64
}
