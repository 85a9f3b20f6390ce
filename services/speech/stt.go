// File: services/speech/stt.go
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"frontdesk/utils"

	speech "cloud.google.com/go/speech/apiv1"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	MaxAudioSize     = 5 * 1024 * 1024 // conservative buffer
	elevenLabsSTTURL = "https://api.elevenlabs.io/v1/speech-to-text"
)

// STTService transcribes visitor audio. Providers are tried in order:
// ElevenLabs, Google Cloud Speech, Whisper. An empty transcript is a valid
// result ("didn't catch that"), not an error.
type STTService interface {
	Transcribe(ctx context.Context, audio []byte) (text string, provider string, err error)
}

// DefaultSTTService is the production provider chain. Providers without
// credentials configured are skipped.
type DefaultSTTService struct {
	ElevenLabsAPIKey         string
	GoogleServiceAccountFile string
	OpenAI                   *openai.Client

	// HTTPClient is shared by the HTTP-based providers.
	HTTPClient *http.Client
}

func NewDefaultSTTService(elevenLabsKey, googleServiceAccountFile, openAIKey string) *DefaultSTTService {
	svc := &DefaultSTTService{
		ElevenLabsAPIKey:         elevenLabsKey,
		GoogleServiceAccountFile: googleServiceAccountFile,
		HTTPClient:               &http.Client{Timeout: 30 * time.Second},
	}
	if openAIKey != "" {
		svc.OpenAI = openai.NewClient(openAIKey)
	}
	return svc
}

func (s *DefaultSTTService) Transcribe(ctx context.Context, audio []byte) (string, string, error) {
	logger := utils.GetLogger()

	if len(audio) == 0 {
		return "", "", fmt.Errorf("stt: no audio data")
	}
	if len(audio) > MaxAudioSize {
		return "", "", fmt.Errorf("stt: audio exceeds %d bytes", MaxAudioSize)
	}

	if s.ElevenLabsAPIKey != "" {
		text, err := s.transcribeElevenLabs(ctx, audio)
		if err == nil {
			return text, "elevenlabs", nil
		}
		logger.Warn("stt: elevenlabs failed, trying google", zap.Error(err))
	}

	if s.GoogleServiceAccountFile != "" {
		text, err := s.transcribeGoogle(ctx, audio)
		if err == nil {
			return text, "google", nil
		}
		logger.Warn("stt: google failed, trying whisper", zap.Error(err))
	}

	if s.OpenAI != nil {
		text, err := s.transcribeWhisper(ctx, audio)
		if err == nil {
			return text, "whisper", nil
		}
		logger.Warn("stt: whisper failed", zap.Error(err))
	}

	return "", "", fmt.Errorf("stt: all providers failed or none configured")
}

func (s *DefaultSTTService) transcribeElevenLabs(ctx context.Context, audio []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", "visitor.webm")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := writer.WriteField("model_id", "eleven_multilingual_v2"); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, elevenLabsSTTURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("xi-api-key", s.ElevenLabsAPIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("elevenlabs stt returned %d: %s", resp.StatusCode, raw)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

func (s *DefaultSTTService) transcribeGoogle(ctx context.Context, audio []byte) (string, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(s.GoogleServiceAccountFile))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_WEBM_OPUS,
			SampleRateHertz:            48000,
			LanguageCode:               "en-US",
			Model:                      "latest_long",
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audio,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}

func (s *DefaultSTTService) transcribeWhisper(ctx context.Context, audio []byte) (string, error) {
	resp, err := s.OpenAI.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "visitor.webm",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
