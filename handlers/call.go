// File: frontdesk/handlers/call.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"frontdesk/directory"
	"frontdesk/models"
	"frontdesk/services/notification"
	"frontdesk/services/tasks"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CallNotifyRequest asks the desk to contact an employee about a waiting
// visitor.
type CallNotifyRequest struct {
	EmployeeID  string `json:"employeeId"`
	VisitorName string `json:"visitorName"`
	Purpose     string `json:"purpose"`
	Urgent      bool   `json:"urgent"`
}

// CallNotifyHandler builds the call exchange script and schedules a push
// notification to the employee's device.
func CallNotifyHandler(dir directory.Directory, svc notification.NotificationService, queue *asynq.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req CallNotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == "" {
			utils.JSONError(c, http.StatusBadRequest, "employeeId is required", "")
			return
		}

		emp := dir.FindByID(req.EmployeeID)
		if emp == nil {
			utils.JSONError(c, http.StatusNotFound, "Employee not found", req.EmployeeID)
			return
		}

		script := svc.BuildCallScript(emp, req.VisitorName, req.Purpose, req.Urgent)

		if queue != nil {
			payload := models.CallNotificationPayload{
				EmployeeID: emp.ID,
				Title:      "Visitor at reception",
				Body:       fmt.Sprintf("%s is waiting for you at the front desk.", visitorOr(req.VisitorName)),
				Data: map[string]string{
					"employeeId":  emp.ID,
					"visitorName": req.VisitorName,
					"purpose":     req.Purpose,
				},
			}
			task, opts, err := tasks.NewCallNotificationTask(payload, time.Now().Add(time.Second))
			if err != nil {
				logger.Error("failed to build notification task", zap.Error(err))
			} else if _, err := queue.Enqueue(task, opts...); err != nil {
				logger.Error("failed to enqueue notification task", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"script":  script,
			"success": true,
		})
	}
}

func visitorOr(name string) string {
	if name != "" {
		return name
	}
	return "A visitor"
}
