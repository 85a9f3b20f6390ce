// File: frontdesk/handlers/speech.go
package handlers

import (
	"io"
	"net/http"
	"strings"

	"frontdesk/services/speech"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpeechToTextHandler accepts a multipart audio upload and returns the
// transcript.
func SpeechToTextHandler(svc speech.STTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "No audio file provided", err.Error())
			return
		}
		defer file.Close()

		if header.Size > speech.MaxAudioSize {
			utils.JSONError(c, http.StatusBadRequest, "Audio file too large", "")
			return
		}

		audio, err := io.ReadAll(io.LimitReader(file, speech.MaxAudioSize+1))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read audio file", err.Error())
			return
		}
		if len(audio) > speech.MaxAudioSize {
			utils.JSONError(c, http.StatusBadRequest, "Audio file too large", "")
			return
		}

		text, provider, err := svc.Transcribe(c.Request.Context(), audio)
		if err != nil {
			logger.Error("transcription failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Speech recognition failed", "")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"text":     text,
			"provider": provider,
			"success":  true,
		})
	}
}

// TextToSpeechRequest is the expected input for speech synthesis.
type TextToSpeechRequest struct {
	Text      string `json:"text"`
	VoiceType string `json:"voiceType"`
}

// TextToSpeechHandler synthesizes speech and streams the audio back.
func TextToSpeechHandler(svc speech.TTSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req TextToSpeechRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			utils.JSONError(c, http.StatusBadRequest, "Text is required", "")
			return
		}

		audio, provider, err := svc.Synthesize(c.Request.Context(), req.Text, req.VoiceType)
		if err != nil {
			logger.Error("synthesis failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Speech synthesis failed", "")
			return
		}

		c.Header("X-TTS-Provider", provider)
		c.Data(http.StatusOK, "audio/mpeg", audio)
	}
}
