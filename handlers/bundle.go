// File: frontdesk/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Conversation endpoints
	ChatHandler gin.HandlerFunc

	// Directory endpoints
	ListEmployeesHandler gin.HandlerFunc

	// Speech endpoints
	SpeechToTextHandler gin.HandlerFunc
	TextToSpeechHandler gin.HandlerFunc

	// Avatar endpoints
	AvatarTokenHandler gin.HandlerFunc
	AvatarStartHandler gin.HandlerFunc
	AvatarStopHandler  gin.HandlerFunc

	// Call endpoints
	CallNotifyHandler gin.HandlerFunc
}
