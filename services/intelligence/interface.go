// File: services/intelligence/interface.go
package ai

import (
	"context"

	"frontdesk/models"
)

// Client is a minimal text-in/text-out LLM surface. Both the Gemini and
// OpenAI clients implement it.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// IntentExtractor turns a visitor utterance plus history into a structured
// Intent.
type IntentExtractor interface {
	ExtractIntent(ctx context.Context, message string, history []models.Message) (*models.Intent, error)
}

// MatchResult is the outcome of a probabilistic name-ranking call.
type MatchResult struct {
	MatchedName string  `json:"matchedName"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

// NameMatcher ranks directory candidates against a visitor's phrase when
// deterministic lookup fails. A nil result means no confident match.
type NameMatcher interface {
	MatchName(ctx context.Context, phrase string, candidates []models.Employee) (*MatchResult, error)
}
