// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// NotificationService builds the scripted call exchange shown to the
// visitor and delivers push notifications to employees.
type NotificationService interface {
	BuildCallScript(employee *models.Employee, visitorName, purpose string, urgent bool) *models.CallScript
	NotifyEmployee(ctx context.Context, employee *models.Employee, payload models.CallNotificationPayload) error
}

type DefaultNotificationService struct {
	// FCM may be nil when Firebase is not configured; pushes are then
	// logged and skipped.
	FCM *messaging.Client
}

func NewNotificationService(fcm *messaging.Client) *DefaultNotificationService {
	return &DefaultNotificationService{FCM: fcm}
}

// BuildCallScript produces the timed message exchange the frontend plays
// while the employee is being contacted.
func (s *DefaultNotificationService) BuildCallScript(employee *models.Employee, visitorName, purpose string, urgent bool) *models.CallScript {
	visitor := visitorName
	if visitor == "" {
		visitor = "A visitor"
	}

	var opening string
	if urgent {
		opening = fmt.Sprintf(
			"This is an urgent request. %s is in the lobby and needs to speak with you immediately regarding %s.",
			visitor, purposeOr(purpose, "a pressing matter"))
	} else {
		opening = fmt.Sprintf(
			"Hi %s, there's a visitor at reception who would like to speak with you regarding %s matters. Are you available to come down?",
			employee.Name, purposeOr(purpose, employee.Department))
	}

	steps := []models.NotificationStep{
		{Seq: 1, Sender: models.SenderAI, Content: opening, DelayMs: 1000},
		{Seq: 2, Sender: models.SenderEmployee, Content: "Oh, I wasn't expecting anyone. Who is it?", DelayMs: 4000},
		{Seq: 3, Sender: models.SenderAI, Content: fmt.Sprintf("It's %s. They mentioned it's about %s.", visitor, purposeOr(purpose, "a quick discussion")), DelayMs: 8000},
		{Seq: 4, Sender: models.SenderEmployee, Content: "Alright, I'll be down in a few minutes. Please ask them to wait at reception.", DelayMs: 11000},
	}

	return &models.CallScript{
		EmployeeID:       employee.ID,
		EmployeeName:     employee.Name,
		Steps:            steps,
		CloseAfterMs:     14000,
		CountdownSeconds: 5,
		IsUrgent:         urgent,
	}
}

// NotifyEmployee sends a high-priority push to the employee's device.
func (s *DefaultNotificationService) NotifyEmployee(ctx context.Context, employee *models.Employee, payload models.CallNotificationPayload) error {
	logger := utils.GetLogger()

	if s.FCM == nil {
		logger.Info("push skipped: messaging not configured",
			zap.String("employeeID", employee.ID))
		return nil
	}
	if employee.FCMToken == "" {
		logger.Info("push skipped: employee has no device token",
			zap.String("employeeID", employee.ID))
		return nil
	}

	msg := &messaging.Message{
		Token: employee.FCMToken,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	id, err := s.FCM.Send(ctx, msg)
	if err != nil {
		logger.Error("push send failed",
			zap.String("employeeID", employee.ID), zap.Error(err))
		return fmt.Errorf("failed to notify %s: %w", employee.Name, err)
	}
	logger.Info("push delivered",
		zap.String("employeeID", employee.ID), zap.String("messageID", id))
	return nil
}

func purposeOr(purpose, fallback string) string {
	if purpose != "" {
		return purpose
	}
	return fallback
}
