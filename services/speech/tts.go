// File: services/speech/tts.go
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"frontdesk/utils"

	"go.uber.org/zap"
)

const (
	elevenLabsTTSURL = "https://api.elevenlabs.io/v1/text-to-speech/%s"
	googleTTSURL     = "https://texttospeech.googleapis.com/v1/text:synthesize?key=%s"
)

// Voice types the frontend may request.
const (
	VoiceFemale = "female"
	VoiceMale   = "male"
)

// TTSService synthesizes spoken replies. Output is always MP3.
type TTSService interface {
	Synthesize(ctx context.Context, text, voiceType string) (audio []byte, provider string, err error)
}

// DefaultTTSService tries ElevenLabs first and falls back to the Google
// Cloud TTS REST API.
type DefaultTTSService struct {
	ElevenLabsAPIKey  string
	FemaleVoiceID     string
	MaleVoiceID       string
	GoogleCloudAPIKey string

	HTTPClient *http.Client
}

func NewDefaultTTSService(elevenLabsKey, femaleVoice, maleVoice, googleKey string) *DefaultTTSService {
	return &DefaultTTSService{
		ElevenLabsAPIKey:  elevenLabsKey,
		FemaleVoiceID:     femaleVoice,
		MaleVoiceID:       maleVoice,
		GoogleCloudAPIKey: googleKey,
		HTTPClient:        &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *DefaultTTSService) Synthesize(ctx context.Context, text, voiceType string) ([]byte, string, error) {
	logger := utils.GetLogger()

	if text == "" {
		return nil, "", fmt.Errorf("tts: no text provided")
	}

	if s.ElevenLabsAPIKey != "" {
		audio, err := s.synthesizeElevenLabs(ctx, text, voiceType)
		if err == nil {
			return audio, "elevenlabs", nil
		}
		logger.Warn("tts: elevenlabs failed, trying google", zap.Error(err))
	}

	if s.GoogleCloudAPIKey != "" {
		audio, err := s.synthesizeGoogle(ctx, text)
		if err == nil {
			return audio, "google", nil
		}
		logger.Warn("tts: google failed", zap.Error(err))
	}

	return nil, "", fmt.Errorf("tts: all providers failed or none configured")
}

func (s *DefaultTTSService) voiceID(voiceType string) string {
	if voiceType == VoiceMale {
		return s.MaleVoiceID
	}
	return s.FemaleVoiceID
}

func (s *DefaultTTSService) synthesizeElevenLabs(ctx context.Context, text, voiceType string) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
		"voice_settings": map[string]interface{}{
			"stability":        0.5,
			"similarity_boost": 0.75,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf(elevenLabsTTSURL, s.voiceID(voiceType))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", s.ElevenLabsAPIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("elevenlabs tts returned %d: %s", resp.StatusCode, raw)
	}

	return io.ReadAll(resp.Body)
}

func (s *DefaultTTSService) synthesizeGoogle(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"input": map[string]string{"text": text},
		"voice": map[string]string{
			"languageCode": "en-US",
			"name":         "en-US-Neural2-F",
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]interface{}{
			"audioEncoding": "MP3",
			"pitch":         0,
			"speakingRate":  0.95,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf(googleTTSURL, s.GoogleCloudAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("google tts returned %d: %s", resp.StatusCode, raw)
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.AudioContent == "" {
		return nil, fmt.Errorf("google tts returned no audio content")
	}
	return base64.StdEncoding.DecodeString(result.AudioContent)
}
