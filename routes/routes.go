package routes

import (
	"frontdesk/handlers"
	"frontdesk/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
	}
}

// RegisterDirectoryRoutes registers employee directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/employees", hb.ListEmployeesHandler)
	}
}

// RegisterSpeechRoutes registers speech recognition and synthesis endpoints.
func RegisterSpeechRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/speech-to-text", hb.SpeechToTextHandler)
		api.POST("/text-to-speech", hb.TextToSpeechHandler)
	}
}

// RegisterAvatarRoutes registers streaming avatar session endpoints.
func RegisterAvatarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/avatar")
	{
		api.POST("/token", hb.AvatarTokenHandler)
		api.POST("/start", hb.AvatarStartHandler)
		api.POST("/stop", hb.AvatarStopHandler)
	}
}

// RegisterCallRoutes registers the employee call endpoint.
func RegisterCallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/call")
	{
		api.POST("/notify", hb.CallNotifyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Front desk is open",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterSpeechRoutes(r, hb)
	RegisterAvatarRoutes(r, hb)
	RegisterCallRoutes(r, hb)
	RegisterHealthRoute(r)
}
