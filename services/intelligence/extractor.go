// File: services/intelligence/extractor.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"frontdesk/models"
)

const intentSystemPrompt = `You are an AI receptionist for a corporate office. Your job is to:
1. Greet visitors and collect their name and purpose of visit
2. Understand visitor intent
3. Extract employee name and department when the visitor asks for someone
4. Detect requests for restricted material (documents, plans, confidential files) and references to third parties who told the visitor to come
5. Provide helpful, professional responses

Rules:
- Be polite and professional
- Keep responses concise (1-2 sentences)
- Ask for the visitor's name first if you don't have it yet (intent "collect_name")
- Ask for the purpose of the visit once you have the name (intent "collect_purpose")
- If the employee name is unclear, ask for clarification
- Always confirm before taking action
- If the visitor requests restricted material, references an unauthorized third party, or explicitly asks for a human, set "requiresHumanDesk" to true

Respond in JSON format:
{
  "intent": "collect_name" | "collect_purpose" | "make_call" | "human_handoff" | "confirm_yes" | "confirm_no" | "ask_question" | "leave_message" | "unknown",
  "visitorName": "visitor's name or null",
  "purposeOfVisit": "purpose of the visit or null",
  "employee": "extracted employee name or null",
  "department": "extracted department or null",
  "confidence": 0.0-1.0,
  "hasRestrictedRequest": true | false,
  "thirdPartyReference": "name of the referring third party or null",
  "requiresHumanDesk": true | false,
  "response": "what to say to the visitor"
}`

var codeFenceRe = regexp.MustCompile("```(?:json)?\n?")

// DefaultExtractor implements IntentExtractor and NameMatcher on top of a
// text LLM client.
type DefaultExtractor struct {
	LLM Client
}

func NewDefaultExtractor(llm Client) *DefaultExtractor {
	return &DefaultExtractor{LLM: llm}
}

// ExtractIntent runs the intent-extraction prompt. Malformed model output
// degrades to an unknown intent carrying the raw text; only transport
// failures surface as errors.
func (e *DefaultExtractor) ExtractIntent(ctx context.Context, message string, history []models.Message) (*models.Intent, error) {
	prompt := buildIntentPrompt(message, history)

	raw, err := e.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract intent: %w", err)
	}

	text := StripCodeFences(raw)

	var intent models.Intent
	if err := json.Unmarshal([]byte(text), &intent); err != nil {
		// Unstructured model output must never abort the conversation.
		return &models.Intent{
			Intent:     models.IntentUnknown,
			Confidence: 0.5,
			Response:   text,
		}, nil
	}
	if intent.Intent == "" {
		intent.Intent = models.IntentUnknown
	}
	return &intent, nil
}

func buildIntentPrompt(message string, history []models.Message) string {
	var ctxLines []string
	for _, msg := range history {
		ctxLines = append(ctxLines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}

	return fmt.Sprintf(`%s

Conversation history:
%s

Visitor says: %q

Provide your response in JSON format only.`, intentSystemPrompt, strings.Join(ctxLines, "\n"), message)
}

// StripCodeFences removes markdown code-block artifacts models like to wrap
// JSON in.
func StripCodeFences(text string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
}
