package models

// Meeting is a calendar block on an employee's day, local wall-clock "HH:MM".
type Meeting struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}

// Employee is a directory entry. The table is loaded once at startup and
// never mutated by requests.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Title       string    `json:"title"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	Meetings    []Meeting `json:"meetings"`

	// FallbackEmployee references another Employee's ID. Validated at load.
	FallbackEmployee string `json:"fallbackEmployee,omitempty"`

	// FCMToken, when set, lets the notification worker push a real alert to
	// the employee's device. Never serialized to visitors.
	FCMToken string `json:"-"`
}

// Availability is the result of a point-in-time schedule check.
type Availability struct {
	IsAvailable   bool   `json:"isAvailable"`
	Reason        string `json:"reason,omitempty"`
	NextAvailable string `json:"nextAvailable,omitempty"`
}
