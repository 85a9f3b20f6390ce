// File: frontdesk/handlers/avatar.go
package handlers

import (
	"net/http"

	"frontdesk/services/avatar"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvatarTokenRequest requests a new avatar session.
type AvatarTokenRequest struct {
	Sandbox bool `json:"sandbox"`
}

// AvatarSessionRequest operates on an existing avatar session.
type AvatarSessionRequest struct {
	SessionToken string `json:"sessionToken"`
}

// AvatarTokenHandler provisions a streaming avatar session.
func AvatarTokenHandler(svc *avatar.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvatarTokenRequest
		// Body is optional; default is the production avatar.
		_ = c.ShouldBindJSON(&req)

		token, err := svc.CreateSessionToken(c.Request.Context(), req.Sandbox)
		if err != nil {
			utils.GetLogger().Error("avatar token failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to create avatar session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionId":    token.SessionID,
			"sessionToken": token.SessionToken,
			"success":      true,
		})
	}
}

// AvatarStartHandler starts a provisioned session.
func AvatarStartHandler(svc *avatar.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvatarSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.SessionToken == "" {
			utils.JSONError(c, http.StatusBadRequest, "sessionToken is required", "")
			return
		}

		info, err := svc.StartSession(c.Request.Context(), req.SessionToken)
		if err != nil {
			utils.GetLogger().Error("avatar start failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to start avatar session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionId":    info.SessionID,
			"websocketUrl": info.WebsocketURL,
			"livekitUrl":   info.LiveKitURL,
			"livekitToken": info.LiveKitToken,
			"success":      true,
		})
	}
}

// AvatarStopHandler stops a session.
func AvatarStopHandler(svc *avatar.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvatarSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.SessionToken == "" {
			utils.JSONError(c, http.StatusBadRequest, "sessionToken is required", "")
			return
		}

		if err := svc.StopSession(c.Request.Context(), req.SessionToken); err != nil {
			utils.GetLogger().Error("avatar stop failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to stop avatar session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
