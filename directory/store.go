package directory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"frontdesk/models"
)

// Store is the in-memory Directory implementation. The employee table is
// immutable for the process lifetime, so lookups need no locking.
type Store struct {
	employees []models.Employee
	byID      map[string]int

	// now is injected so availability checks are testable.
	now func() time.Time
}

// NewStore builds a Store from the given table. Every fallback reference
// must resolve to an existing employee; a dangling reference fails fast
// here rather than silently at lookup time.
func NewStore(employees []models.Employee) (*Store, error) {
	byID := make(map[string]int, len(employees))
	for i, emp := range employees {
		if _, dup := byID[emp.ID]; dup {
			return nil, fmt.Errorf("directory: duplicate employee id %q", emp.ID)
		}
		byID[emp.ID] = i
	}
	for _, emp := range employees {
		if emp.FallbackEmployee == "" {
			continue
		}
		if _, ok := byID[emp.FallbackEmployee]; !ok {
			return nil, fmt.Errorf("directory: employee %q has dangling fallback reference %q", emp.ID, emp.FallbackEmployee)
		}
	}
	return &Store{
		employees: employees,
		byID:      byID,
		now:       time.Now,
	}, nil
}

// All returns the full table in load order.
func (s *Store) All() []models.Employee {
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// FindByID returns the employee with the given id, or nil.
func (s *Store) FindByID(id string) *models.Employee {
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	emp := s.employees[i]
	return &emp
}

// FindByName resolves a free-text name in three tiers: exact full-name
// match, first-name match, then substring containment. The first employee
// in table order wins at each tier. Matching is case-insensitive.
func (s *Store) FindByName(query string) *models.Employee {
	searchName := strings.ToLower(strings.TrimSpace(query))
	if searchName == "" {
		return nil
	}

	// Exact match.
	for i := range s.employees {
		if strings.ToLower(s.employees[i].Name) == searchName {
			emp := s.employees[i]
			return &emp
		}
	}

	// First name match.
	for i := range s.employees {
		first := strings.ToLower(strings.Fields(s.employees[i].Name)[0])
		if first == searchName {
			emp := s.employees[i]
			return &emp
		}
	}

	// Partial match.
	for i := range s.employees {
		if strings.Contains(strings.ToLower(s.employees[i].Name), searchName) {
			emp := s.employees[i]
			return &emp
		}
	}

	return nil
}

// CheckAvailability reports whether the employee is free right now. A
// meeting blocks the half-open window [start, end); the first matching
// meeting in list order governs, overlapping entries are not deduplicated.
// With no meeting in progress the static availability flag is returned.
func (s *Store) CheckAvailability(emp *models.Employee) models.Availability {
	now := s.now()
	currentMinutes := now.Hour()*60 + now.Minute()

	for _, meeting := range emp.Meetings {
		start, err := parseClock(meeting.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(meeting.End)
		if err != nil {
			continue
		}
		if currentMinutes >= start && currentMinutes < end {
			return models.Availability{
				IsAvailable:   false,
				Reason:        meeting.Title,
				NextAvailable: meeting.End,
			}
		}
	}

	return models.Availability{IsAvailable: emp.IsAvailable}
}

// GetFallback resolves the one-hop fallback reference for an employee.
// Returns nil when the employee is unknown, has no fallback configured, or
// the reference is somehow dangling.
func (s *Store) GetFallback(employeeID string) *models.Employee {
	emp := s.FindByID(employeeID)
	if emp == nil || emp.FallbackEmployee == "" {
		return nil
	}
	return s.FindByID(emp.FallbackEmployee)
}

// ListByDepartment returns employees whose department matches exactly,
// case-insensitive, preserving table order.
func (s *Store) ListByDepartment(department string) []models.Employee {
	var out []models.Employee
	for _, emp := range s.employees {
		if strings.EqualFold(emp.Department, department) {
			out = append(out, emp)
		}
	}
	return out
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", v, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", v, err)
	}
	return h*60 + m, nil
}
