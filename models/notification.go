package models

// Senders in the scripted notification exchange.
const (
	SenderAI       = "ai"
	SenderEmployee = "employee"
)

// NotificationStep is one message of the simulated chat between the
// receptionist and the employee being called.
type NotificationStep struct {
	Seq     int    `json:"id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
	DelayMs int    `json:"delay"`
	Status  string `json:"status,omitempty"`
}

// CallScript is the full notification sequence the frontend plays before
// connecting a call.
type CallScript struct {
	EmployeeID       string             `json:"employeeId"`
	EmployeeName     string             `json:"employeeName"`
	Steps            []NotificationStep `json:"steps"`
	CloseAfterMs     int                `json:"closeAfterMs"`
	CountdownSeconds int                `json:"countdownSeconds"`
	IsUrgent         bool               `json:"isUrgent,omitempty"`
}

// CallNotificationPayload is the queued task payload for a delayed
// employee push notification.
type CallNotificationPayload struct {
	EmployeeID string            `json:"employeeId"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}
