package directory

import (
	"testing"
	"time"

	"frontdesk/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(Seed())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}
}

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore([]models.Employee{
		{ID: "emp001", Name: "A"},
		{ID: "emp001", Name: "B"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestNewStoreRejectsDanglingFallback(t *testing.T) {
	_, err := NewStore([]models.Employee{
		{ID: "emp001", Name: "A", FallbackEmployee: "emp999"},
	})
	if err == nil {
		t.Fatal("expected error for dangling fallback reference")
	}
}

func TestFindByNameExactMatch(t *testing.T) {
	s := newTestStore(t)

	emp := s.FindByName("Ahmed Al Mansoori")
	if emp == nil || emp.ID != "emp001" {
		t.Fatalf("expected emp001, got %+v", emp)
	}
}

func TestFindByNameCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	lower := s.FindByName("ahmed al mansoori")
	upper := s.FindByName("AHMED AL MANSOORI")
	if lower == nil || upper == nil || lower.ID != upper.ID {
		t.Fatalf("case variants resolved differently: %+v vs %+v", lower, upper)
	}
}

func TestFindByNameFirstName(t *testing.T) {
	s := newTestStore(t)

	emp := s.FindByName("Fatima")
	if emp == nil || emp.ID != "emp002" {
		t.Fatalf("expected emp002, got %+v", emp)
	}
}

func TestFindByNameFirstNameTableOrder(t *testing.T) {
	s := newTestStore(t)

	// Two employees share the surname Al Mansoori; "Ahmed" must resolve to
	// the first one in table order.
	emp := s.FindByName("Ahmed")
	if emp == nil || emp.ID != "emp001" {
		t.Fatalf("expected emp001, got %+v", emp)
	}
}

func TestFindByNameSubstring(t *testing.T) {
	s := newTestStore(t)

	emp := s.FindByName("Maktoum")
	if emp == nil || emp.ID != "emp010" {
		t.Fatalf("expected emp010, got %+v", emp)
	}
}

func TestFindByNameUnknown(t *testing.T) {
	s := newTestStore(t)

	if emp := s.FindByName("NonexistentPerson"); emp != nil {
		t.Fatalf("expected nil, got %+v", emp)
	}
	if emp := s.FindByName("   "); emp != nil {
		t.Fatalf("expected nil for blank query, got %+v", emp)
	}
}

func TestCheckAvailabilityDuringMeeting(t *testing.T) {
	s := newTestStore(t)
	s.now = fixedClock(9, 30)

	emp := s.FindByID("emp001")
	avail := s.CheckAvailability(emp)
	if avail.IsAvailable {
		t.Fatal("expected unavailable during standup")
	}
	if avail.Reason != "Team Standup" {
		t.Fatalf("unexpected reason %q", avail.Reason)
	}
	if avail.NextAvailable != "10:00" {
		t.Fatalf("unexpected next available %q", avail.NextAvailable)
	}
}

func TestCheckAvailabilityMeetingWindowIsHalfOpen(t *testing.T) {
	s := newTestStore(t)
	emp := s.FindByID("emp001")

	s.now = fixedClock(9, 0)
	if s.CheckAvailability(emp).IsAvailable {
		t.Fatal("meeting start minute should block")
	}

	s.now = fixedClock(10, 0)
	if !s.CheckAvailability(emp).IsAvailable {
		t.Fatal("meeting end minute should not block")
	}
}

func TestCheckAvailabilityOutsideMeetingUsesStaticFlag(t *testing.T) {
	s := newTestStore(t)
	s.now = fixedClock(14, 0)

	// emp004 is flagged unavailable even outside her workshop window.
	avail := s.CheckAvailability(s.FindByID("emp004"))
	if avail.IsAvailable {
		t.Fatal("expected static unavailable flag to apply")
	}
	if avail.Reason != "" {
		t.Fatalf("expected no meeting reason, got %q", avail.Reason)
	}

	avail = s.CheckAvailability(s.FindByID("emp003"))
	if !avail.IsAvailable {
		t.Fatal("expected emp003 available with no meetings")
	}
}

func TestCheckAvailabilityFirstMeetingInListOrderWins(t *testing.T) {
	s, err := NewStore([]models.Employee{
		{
			ID:          "emp001",
			Name:        "Overlap Test",
			IsAvailable: true,
			Meetings: []models.Meeting{
				{Start: "09:00", End: "11:00", Title: "First"},
				{Start: "10:00", End: "12:00", Title: "Second"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.now = fixedClock(10, 30)

	avail := s.CheckAvailability(s.FindByID("emp001"))
	if avail.Reason != "First" {
		t.Fatalf("expected first meeting to govern, got %q", avail.Reason)
	}
	if avail.NextAvailable != "11:00" {
		t.Fatalf("unexpected next available %q", avail.NextAvailable)
	}
}

func TestCheckAvailabilitySkipsMalformedMeetings(t *testing.T) {
	s, err := NewStore([]models.Employee{
		{
			ID:          "emp001",
			Name:        "Malformed Test",
			IsAvailable: true,
			Meetings: []models.Meeting{
				{Start: "not-a-time", End: "also-bad", Title: "Broken"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.now = fixedClock(10, 0)

	if !s.CheckAvailability(s.FindByID("emp001")).IsAvailable {
		t.Fatal("malformed meeting should be skipped, not block")
	}
}

func TestGetFallback(t *testing.T) {
	s := newTestStore(t)

	fb := s.GetFallback("emp001")
	if fb == nil || fb.ID != "emp002" {
		t.Fatalf("expected emp002, got %+v", fb)
	}

	if fb := s.GetFallback("emp009"); fb != nil {
		t.Fatalf("expected nil for employee without fallback, got %+v", fb)
	}
	if fb := s.GetFallback("emp999"); fb != nil {
		t.Fatalf("expected nil for unknown employee, got %+v", fb)
	}
}

func TestGetFallbackIsOneHop(t *testing.T) {
	s := newTestStore(t)

	// emp004's fallback emp005 is itself configured with a fallback; the
	// resolver must not chase the chain.
	fb := s.GetFallback("emp004")
	if fb == nil || fb.ID != "emp005" {
		t.Fatalf("expected emp005, got %+v", fb)
	}
}

func TestListByDepartment(t *testing.T) {
	s := newTestStore(t)

	engineering := s.ListByDepartment("engineering")
	if len(engineering) != 3 {
		t.Fatalf("expected 3 engineering employees, got %d", len(engineering))
	}
	if engineering[0].ID != "emp001" {
		t.Fatalf("expected table order preserved, got %s first", engineering[0].ID)
	}

	if got := s.ListByDepartment("Unknown Dept"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}

func TestFindByIDReturnsCopy(t *testing.T) {
	s := newTestStore(t)

	emp := s.FindByID("emp001")
	emp.Name = "Tampered"

	if s.FindByID("emp001").Name != "Ahmed Al Mansoori" {
		t.Fatal("FindByID must not expose internal state")
	}
}
