package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"frontdesk/directory"
	"frontdesk/models"
	"frontdesk/services/notification"

	"github.com/gin-gonic/gin"
)

func newCallRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := directory.NewStore(directory.Seed())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r := gin.New()
	r.POST("/api/call/notify", CallNotifyHandler(store, notification.NewNotificationService(nil), nil))
	return r
}

func TestCallNotifyHandlerUnknownEmployee(t *testing.T) {
	r := newCallRouter(t)

	w := postJSON(t, r, "/api/call/notify", CallNotifyRequest{EmployeeID: "emp999"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCallNotifyHandlerMissingEmployeeID(t *testing.T) {
	r := newCallRouter(t)

	w := postJSON(t, r, "/api/call/notify", CallNotifyRequest{VisitorName: "John"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCallNotifyHandlerReturnsScript(t *testing.T) {
	r := newCallRouter(t)

	w := postJSON(t, r, "/api/call/notify", CallNotifyRequest{
		EmployeeID:  "emp001",
		VisitorName: "John Smith",
		Purpose:     "project discussion",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Script  *models.CallScript `json:"script"`
		Success bool               `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Success || body.Script == nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body.Script.EmployeeID != "emp001" {
		t.Fatalf("unexpected employee %q", body.Script.EmployeeID)
	}
	if len(body.Script.Steps) == 0 {
		t.Fatal("script should contain timed steps")
	}
}
