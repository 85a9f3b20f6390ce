// File: services/reception/router.go
package reception

import (
	"context"
	"fmt"
	"regexp"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

const apologyResponse = "I apologize, but I'm having trouble processing your request. Could you please repeat that?"

var (
	yesRe = regexp.MustCompile(`(?i)\b(yes|yeah|yep|sure|correct|right|exactly|that's right)\b`)
	noRe  = regexp.MustCompile(`(?i)\b(no|nope|not|wrong|different|someone else)\b`)

	// confirmMarkerRe matches the phrase a smart-match offer embeds in the
	// assistant response, so a pending confirmation can be recovered from
	// plain history when no session state is available.
	confirmMarkerRe = regexp.MustCompile(`I found (.+?) in `)
)

// HandleTurn routes one visitor utterance. Any internal failure degrades to
// a generic apology with a retry invitation; the conversation stays alive.
func (s *DefaultReceptionService) HandleTurn(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	resp, err := s.route(ctx, req)
	if err != nil {
		utils.GetLogger().Warn("reception: turn degraded to apology", zap.Error(err))
		return &models.ChatResponse{
			Intent:    models.IntentUnknown,
			Response:  apologyResponse,
			SessionID: req.SessionID,
		}
	}
	return resp
}

func (s *DefaultReceptionService) route(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sess := s.loadSession(ctx, req.SessionID)

	intent, err := s.Extractor.ExtractIntent(ctx, req.Message, req.ConversationHistory)
	if err != nil {
		return nil, err
	}

	if intent.VisitorName != "" {
		sess.VisitorName = intent.VisitorName
	}
	if intent.PurposeOfVisit != "" {
		sess.PurposeOfVisit = intent.PurposeOfVisit
	}

	pending := sess.PendingConfirmation
	if pending == nil {
		pending = s.pendingFromHistory(req.ConversationHistory)
	}
	// An offer survives exactly one turn, whatever the visitor says next.
	sess.PendingConfirmation = nil

	var resp *models.ChatResponse
	switch {
	case intent.Intent == models.IntentCollectName:
		resp = s.collectName(intent)
	case intent.Intent == models.IntentCollectPurpose:
		resp = s.collectPurpose(intent)
	case intent.Intent == models.IntentHumanHandoff || intent.RequiresHumanDesk || intent.HasRestrictedRequest:
		resp = s.humanHandoff(intent, sess)
	case pending != nil && isAffirmation(req.Message, intent):
		resp = s.confirmPending(pending, intent, sess)
	case pending != nil && isRejection(req.Message, intent):
		resp = s.rejectPending(intent)
	case intent.Intent == models.IntentMakeCall && intent.Employee != "":
		resp = s.makeCall(ctx, intent, sess)
	default:
		// Pass the extractor's own response through untouched.
		resp = &models.ChatResponse{
			Intent:     intent.Intent,
			Employee:   intent.Employee,
			Department: intent.Department,
			Confidence: intent.Confidence,
			Response:   intent.Response,
		}
	}

	s.saveSession(ctx, req.SessionID, sess)
	resp.SessionID = req.SessionID
	return resp, nil
}

func (s *DefaultReceptionService) collectName(intent *models.Intent) *models.ChatResponse {
	response := intent.Response
	if response == "" {
		response = "Welcome! May I get your name, please?"
	}
	return &models.ChatResponse{
		Intent:     models.IntentCollectName,
		Confidence: intent.Confidence,
		Response:   response,
		Decision:   &models.RoutingDecision{Kind: models.DecisionNeedInfo, Field: models.FieldName},
	}
}

func (s *DefaultReceptionService) collectPurpose(intent *models.Intent) *models.ChatResponse {
	response := intent.Response
	if response == "" {
		response = "May I know the purpose of your visit today?"
	}
	return &models.ChatResponse{
		Intent:     models.IntentCollectPurpose,
		Confidence: intent.Confidence,
		Response:   response,
		Decision:   &models.RoutingDecision{Kind: models.DecisionNeedInfo, Field: models.FieldPurpose},
	}
}

// humanHandoff routes to the fixed reception supervisor, urgent, bypassing
// availability. A human must always be reachable for policy escalations.
func (s *DefaultReceptionService) humanHandoff(intent *models.Intent, sess *models.ConversationContext) *models.ChatResponse {
	supervisorID := s.SupervisorID
	supervisorName := ""
	if sup := s.Directory.FindByID(supervisorID); sup != nil {
		supervisorName = sup.Name
	}

	response := intent.Response
	if response == "" {
		response = "Let me urgently connect you with our Reception Supervisor who can assist you personally. Please wait a moment."
	}

	return &models.ChatResponse{
		Intent:             models.IntentHumanHandoff,
		Employee:           supervisorName,
		EmployeeID:         supervisorID,
		Confidence:         intent.Confidence,
		Response:           response,
		IsUrgent:           true,
		CanProceedWithCall: true,
		Decision: &models.RoutingDecision{
			Kind:       models.DecisionEscalate,
			EmployeeID: supervisorID,
			Urgent:     true,
			Context:    handoffContext(intent, sess),
		},
	}
}

func handoffContext(intent *models.Intent, sess *models.ConversationContext) string {
	switch {
	case intent.HasRestrictedRequest && intent.ThirdPartyReference != "":
		return fmt.Sprintf("restricted material request, visitor referred by %s", intent.ThirdPartyReference)
	case intent.HasRestrictedRequest:
		return "restricted material request"
	case intent.ThirdPartyReference != "":
		return fmt.Sprintf("visitor referred by %s", intent.ThirdPartyReference)
	case sess.PurposeOfVisit != "":
		return sess.PurposeOfVisit
	default:
		return "visitor requires human assistance"
	}
}

// confirmPending handles a "yes" to a previously offered match. A confirmed
// fallback connects directly; a confirmed smart match re-enters the normal
// availability flow, as if make_call had been issued for that employee.
func (s *DefaultReceptionService) confirmPending(pending *models.PendingConfirmation, intent *models.Intent, sess *models.ConversationContext) *models.ChatResponse {
	emp := s.Directory.FindByID(pending.EmployeeID)
	if emp == nil {
		return s.clarifyUnknown(intent, "")
	}

	if pending.Kind == models.ConfirmFallback {
		return &models.ChatResponse{
			Intent:             models.IntentMakeCall,
			Employee:           emp.Name,
			EmployeeID:         emp.ID,
			Department:         emp.Department,
			Confidence:         intent.Confidence,
			Response:           fmt.Sprintf("Excellent! I'll notify %s right away. Please wait while I connect you.", emp.Name),
			CanProceedWithCall: true,
			Decision: &models.RoutingDecision{
				Kind:        models.DecisionProceed,
				EmployeeID:  emp.ID,
				ViaFallback: true,
			},
		}
	}

	return s.connectOrOffer(emp, intent, sess)
}

// rejectPending handles a "no" to a previously offered match: reset to a
// question and surface the directory so the visitor can point.
func (s *DefaultReceptionService) rejectPending(intent *models.Intent) *models.ChatResponse {
	return &models.ChatResponse{
		Intent:        models.IntentAskQuestion,
		Confidence:    intent.Confidence,
		Response:      "No problem. Could you tell me the full name of the person you're here to see? Here is our employee directory.",
		ShowDirectory: true,
		Decision:      &models.RoutingDecision{Kind: models.DecisionClarify, Reason: "match rejected"},
	}
}

func (s *DefaultReceptionService) makeCall(ctx context.Context, intent *models.Intent, sess *models.ConversationContext) *models.ChatResponse {
	// Deterministic matching first; probabilistic matching only as fallback.
	if emp := s.Directory.FindByName(intent.Employee); emp != nil {
		return s.connectOrOffer(emp, intent, sess)
	}

	emp, confidence := s.smartMatch(ctx, intent.Employee)
	if emp == nil {
		return s.clarifyUnknown(intent, intent.Employee)
	}

	// Proposing a different person than the visitor asked for requires
	// assent. The response embeds the marker phrase the next turn's
	// confirmation check looks for.
	sess.PendingConfirmation = &models.PendingConfirmation{EmployeeID: emp.ID, Kind: models.ConfirmSmartMatch}
	return &models.ChatResponse{
		Intent:               models.IntentMakeCall,
		Employee:             emp.Name,
		EmployeeID:           emp.ID,
		Department:           emp.Department,
		Confidence:           confidence,
		Response:             fmt.Sprintf("I found %s in %s. Did you mean %s, our %s?", emp.Name, emp.Department, emp.Name, emp.Title),
		RequiresConfirmation: true,
		Decision: &models.RoutingDecision{
			Kind:       models.DecisionConfirmMatch,
			EmployeeID: emp.ID,
			Confidence: confidence,
		},
	}
}

// connectOrOffer runs the availability policy for a resolved employee:
// connect when free, offer the fallback for assent when busy, otherwise
// report the expected return time.
func (s *DefaultReceptionService) connectOrOffer(emp *models.Employee, intent *models.Intent, sess *models.ConversationContext) *models.ChatResponse {
	avail := s.Directory.CheckAvailability(emp)

	if avail.IsAvailable {
		return &models.ChatResponse{
			Intent:             models.IntentMakeCall,
			Employee:           emp.Name,
			EmployeeID:         emp.ID,
			Department:         emp.Department,
			Confidence:         intent.Confidence,
			Response:           fmt.Sprintf("Perfect! I'll connect you with %s from %s. Please wait for a moment while I notify them.", emp.Name, emp.Department),
			CanProceedWithCall: true,
			Decision: &models.RoutingDecision{
				Kind:       models.DecisionProceed,
				EmployeeID: emp.ID,
			},
		}
	}

	status := "unavailable"
	if avail.Reason != "" {
		status = fmt.Sprintf("in a %s", avail.Reason)
	}

	if fallback := s.Directory.GetFallback(emp.ID); fallback != nil {
		// Silently swapping to a different person requires assent.
		sess.PendingConfirmation = &models.PendingConfirmation{EmployeeID: fallback.ID, Kind: models.ConfirmFallback}
		return &models.ChatResponse{
			Intent:               models.IntentMakeCall,
			Employee:             emp.Name,
			EmployeeID:           emp.ID,
			Department:           emp.Department,
			FallbackEmployee:     fallback.Name,
			FallbackEmployeeID:   fallback.ID,
			Confidence:           intent.Confidence,
			Response:             fmt.Sprintf("%s is currently %s. I can connect you with %s from the same team instead. Would that work for you?", emp.Name, status, fallback.Name),
			RequiresConfirmation: true,
			Decision: &models.RoutingDecision{
				Kind:               models.DecisionConfirmMatch,
				EmployeeID:         emp.ID,
				FallbackEmployeeID: fallback.ID,
				ViaFallback:        true,
			},
		}
	}

	nextAvailable := avail.NextAvailable
	if nextAvailable == "" {
		nextAvailable = "later today"
	}
	return &models.ChatResponse{
		Intent:     models.IntentMakeCall,
		Employee:   emp.Name,
		EmployeeID: emp.ID,
		Department: emp.Department,
		Confidence: intent.Confidence,
		Response:   fmt.Sprintf("%s is currently %s and will be free at %s. Would you like to leave a message?", emp.Name, status, nextAvailable),
		Decision: &models.RoutingDecision{
			Kind:       models.DecisionClarify,
			EmployeeID: emp.ID,
			Reason:     "employee unavailable",
		},
	}
}

func (s *DefaultReceptionService) clarifyUnknown(intent *models.Intent, name string) *models.ChatResponse {
	response := "Could you please provide the full name or department of the person you're looking for?"
	if name != "" {
		response = fmt.Sprintf("I couldn't find %s in our directory. Could you please provide their full name or department?", name)
	}
	return &models.ChatResponse{
		Intent:        intent.Intent,
		Confidence:    intent.Confidence,
		Response:      response,
		ShowDirectory: true,
		Decision:      &models.RoutingDecision{Kind: models.DecisionClarify, Reason: "employee not found"},
	}
}

// smartMatch runs the secondary ranking call. Best-effort: any error or a
// confidence at or below the floor counts as unresolved.
func (s *DefaultReceptionService) smartMatch(ctx context.Context, name string) (*models.Employee, float64) {
	if s.Matcher == nil {
		return nil, 0
	}
	result, err := s.Matcher.MatchName(ctx, name, s.Directory.All())
	if err != nil {
		utils.GetLogger().Debug("reception: smart match failed", zap.Error(err))
		return nil, 0
	}
	if result == nil || result.Confidence <= s.minConfidence() {
		return nil, 0
	}
	emp := s.Directory.FindByName(result.MatchedName)
	if emp == nil {
		return nil, 0
	}
	return emp, result.Confidence
}

func (s *DefaultReceptionService) minConfidence() float64 {
	if s.MinMatchConfidence > 0 {
		return s.MinMatchConfidence
	}
	return 0.70
}

// pendingFromHistory recovers a pending smart-match confirmation from the
// previous assistant message when no session state is available.
func (s *DefaultReceptionService) pendingFromHistory(history []models.Message) *models.PendingConfirmation {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != models.RoleAssistant {
			continue
		}
		m := confirmMarkerRe.FindStringSubmatch(history[i].Content)
		if m == nil {
			return nil
		}
		emp := s.Directory.FindByName(m[1])
		if emp == nil {
			return nil
		}
		return &models.PendingConfirmation{EmployeeID: emp.ID, Kind: models.ConfirmSmartMatch}
	}
	return nil
}

func isAffirmation(message string, intent *models.Intent) bool {
	return intent.Intent == models.IntentConfirmYes || yesRe.MatchString(message)
}

func isRejection(message string, intent *models.Intent) bool {
	return intent.Intent == models.IntentConfirmNo || noRe.MatchString(message)
}

func (s *DefaultReceptionService) loadSession(ctx context.Context, sessionID string) *models.ConversationContext {
	if s.Sessions == nil || sessionID == "" {
		return &models.ConversationContext{}
	}
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Warn("reception: failed to load session context", zap.Error(err))
		return &models.ConversationContext{}
	}
	return sess
}

func (s *DefaultReceptionService) saveSession(ctx context.Context, sessionID string, sess *models.ConversationContext) {
	if s.Sessions == nil || sessionID == "" {
		return
	}
	if err := s.Sessions.Set(ctx, sessionID, sess); err != nil {
		utils.GetLogger().Warn("reception: failed to save session context", zap.Error(err))
	}
}
