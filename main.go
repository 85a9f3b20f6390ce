// File: frontdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/cron"
	"frontdesk/directory"
	"frontdesk/handlers"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/avatar"
	ai "frontdesk/services/intelligence"
	"frontdesk/services/notification"
	"frontdesk/services/reception"
	"frontdesk/services/speech"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Employee directory.
	store, err := directory.NewStore(directory.Seed())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load employee directory: %v", err)
	}

	// LLM client.
	var llm ai.Client
	switch config.AppConfig.AIProvider {
	case "openai":
		llm = ai.NewOpenAIClient(config.AppConfig.OpenAIAPIKey, config.AppConfig.OpenAIModel)
	default:
		gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		llm = gemini
	}
	extractor := ai.NewDefaultExtractor(llm)

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	ctxStore := reception.NewRedisContextStore(utils.GetSessionCacheClient(), sessionTTL)

	receptionService := &reception.DefaultReceptionService{
		Extractor:          extractor,
		Matcher:            extractor,
		Directory:          store,
		Sessions:           ctxStore,
		SupervisorID:       config.AppConfig.SupervisorEmployeeID,
		MinMatchConfidence: config.AppConfig.SmartMatchMinConfidence,
	}

	sttService := speech.NewDefaultSTTService(
		config.AppConfig.ElevenLabsAPIKey,
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.OpenAIAPIKey,
	)
	ttsService := speech.NewDefaultTTSService(
		config.AppConfig.ElevenLabsAPIKey,
		config.AppConfig.ElevenLabsFemaleVoice,
		config.AppConfig.ElevenLabsMaleVoice,
		config.AppConfig.GoogleCloudAPIKey,
	)

	avatarService := avatar.NewService(
		config.AppConfig.HeyGenAPIKey,
		config.AppConfig.HeyGenAvatarID,
		config.AppConfig.HeyGenSandboxAvatarID,
	)

	notificationService := notification.NewNotificationService(utils.FCMClient)

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitNotifyWorker(notificationService, store)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:          handlers.ChatHandler(receptionService),
		ListEmployeesHandler: handlers.ListEmployeesHandler(store),
		SpeechToTextHandler:  handlers.SpeechToTextHandler(sttService),
		TextToSpeechHandler:  handlers.TextToSpeechHandler(ttsService),
		AvatarTokenHandler:   handlers.AvatarTokenHandler(avatarService),
		AvatarStartHandler:   handlers.AvatarStartHandler(avatarService),
		AvatarStopHandler:    handlers.AvatarStopHandler(avatarService),
		CallNotifyHandler:    handlers.CallNotifyHandler(store, notificationService, queueClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
