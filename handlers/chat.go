// File: frontdesk/handlers/chat.go
package handlers

import (
	"net/http"
	"strings"

	"frontdesk/models"
	"frontdesk/services/reception"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler processes one visitor turn and returns the routing outcome.
func ChatHandler(svc reception.ReceptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			utils.JSONError(c, http.StatusBadRequest, "Message is required", "")
			return
		}

		// New visitors get a session so follow-up turns can share context.
		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
		}

		resp := svc.HandleTurn(c.Request.Context(), req)

		logger.Info("chat turn handled",
			zap.String("sessionID", req.SessionID),
			zap.String("intent", resp.Intent))

		c.JSON(http.StatusOK, resp)
	}
}
