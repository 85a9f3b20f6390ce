package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/directory"
	"frontdesk/models"
	"frontdesk/services/reception"

	"github.com/gin-gonic/gin"
)

type fakeReception struct {
	lastReq models.ChatRequest
}

func (f *fakeReception) HandleTurn(_ context.Context, req models.ChatRequest) *models.ChatResponse {
	f.lastReq = req
	return &models.ChatResponse{
		Intent:    models.IntentCollectName,
		Response:  "Welcome! May I get your name, please?",
		SessionID: req.SessionID,
	}
}

var _ reception.ReceptionService = (*fakeReception)(nil)

func newChatRouter(svc reception.ReceptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", ChatHandler(svc))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandlerRejectsEmptyMessage(t *testing.T) {
	r := newChatRouter(&fakeReception{})

	w := postJSON(t, r, "/api/chat", models.ChatRequest{Message: "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatHandlerRejectsMalformedBody(t *testing.T) {
	r := newChatRouter(&fakeReception{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatHandlerAssignsSessionID(t *testing.T) {
	svc := &fakeReception{}
	r := newChatRouter(svc)

	w := postJSON(t, r, "/api/chat", models.ChatRequest{Message: "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if svc.lastReq.SessionID == "" {
		t.Fatal("handler should assign a session id when missing")
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SessionID != svc.lastReq.SessionID {
		t.Fatalf("response session id %q does not match assigned %q", resp.SessionID, svc.lastReq.SessionID)
	}
}

func TestChatHandlerKeepsClientSessionID(t *testing.T) {
	svc := &fakeReception{}
	r := newChatRouter(svc)

	postJSON(t, r, "/api/chat", models.ChatRequest{Message: "hello", SessionID: "visitor-42"})
	if svc.lastReq.SessionID != "visitor-42" {
		t.Fatalf("client session id should be kept, got %q", svc.lastReq.SessionID)
	}
}

func TestListEmployeesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := directory.NewStore(directory.Seed())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r := gin.New()
	r.GET("/api/employees", ListEmployeesHandler(store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Employees []models.Employee `json:"employees"`
		Success   bool              `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Success || len(body.Employees) != 11 {
		t.Fatalf("unexpected body: success=%v employees=%d", body.Success, len(body.Employees))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees?department=Sales", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Employees) != 2 {
		t.Fatalf("expected 2 sales employees, got %d", len(body.Employees))
	}
}
