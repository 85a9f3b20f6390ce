package reception

import (
	"context"
	"testing"

	"frontdesk/models"
)

func TestMemoryContextStoreRoundTrip(t *testing.T) {
	store := NewMemoryContextStore()
	ctx := context.Background()

	sess, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.VisitorName != "" || sess.PendingConfirmation != nil {
		t.Fatalf("expected empty context for unknown session, got %+v", sess)
	}

	want := &models.ConversationContext{
		VisitorName:    "John Smith",
		PurposeOfVisit: "project discussion",
		PendingConfirmation: &models.PendingConfirmation{
			EmployeeID: "emp001",
			Kind:       models.ConfirmSmartMatch,
		},
	}
	if err := store.Set(ctx, "s1", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.VisitorName != want.VisitorName || got.PurposeOfVisit != want.PurposeOfVisit {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.PendingConfirmation == nil || got.PendingConfirmation.EmployeeID != "emp001" {
		t.Fatalf("round trip lost pending confirmation: %+v", got.PendingConfirmation)
	}
}

func TestMemoryContextStoreClear(t *testing.T) {
	store := NewMemoryContextStore()
	ctx := context.Background()

	if err := store.Set(ctx, "s1", &models.ConversationContext{VisitorName: "John"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	sess, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.VisitorName != "" {
		t.Fatalf("expected cleared session, got %+v", sess)
	}
}

func TestMemoryContextStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryContextStore()
	ctx := context.Background()

	if err := store.Set(ctx, "s1", &models.ConversationContext{VisitorName: "John"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sess, err := store.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.VisitorName != "" {
		t.Fatal("sessions must not leak into each other")
	}
}
