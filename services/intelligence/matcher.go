// File: services/intelligence/matcher.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"frontdesk/models"
)

// candidate is the projection of a directory entry shared with the
// matcher. No fields beyond what the public directory already exposes.
type candidate struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// MatchName asks the model to rank the directory against the visitor's
// phrase. Returns nil when the model proposes no match; the caller applies
// its own confidence floor.
func (e *DefaultExtractor) MatchName(ctx context.Context, phrase string, candidates []models.Employee) (*MatchResult, error) {
	projected := make([]candidate, 0, len(candidates))
	for _, emp := range candidates {
		projected = append(projected, candidate{
			Name:       emp.Name,
			Department: emp.Department,
			Title:      emp.Title,
		})
	}
	list, err := json.Marshal(projected)
	if err != nil {
		return nil, fmt.Errorf("match name: %w", err)
	}

	prompt := fmt.Sprintf(`A visitor at a corporate reception desk is looking for an employee but the name was not an exact directory match.

Visitor's phrase: %q

Employee directory:
%s

Pick the single most likely employee the visitor means, if any. Consider misheard names, partial names, and department hints.

Respond in JSON format only:
{
  "matchedName": "full employee name from the directory or null",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}`, phrase, string(list))

	raw, err := e.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("match name: %w", err)
	}

	var result MatchResult
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("match name: malformed response: %w", err)
	}
	if result.MatchedName == "" {
		return nil, nil
	}
	return &result, nil
}
