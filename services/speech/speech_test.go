package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"testing"
)

// scriptedTransport answers requests by URL substring, in lieu of the real
// provider endpoints.
type scriptedTransport struct {
	responses map[string]*http.Response
	requests  []*http.Request
}

func (t *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.requests = append(t.requests, req)
	for substr, resp := range t.responses {
		if strings.Contains(req.URL.String(), substr) {
			return resp, nil
		}
	}
	return &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader("no scripted response")),
	}, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestTranscribeRejectsEmptyAudio(t *testing.T) {
	svc := NewDefaultSTTService("key", "", "")

	if _, _, err := svc.Transcribe(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty audio")
	}
}

func TestTranscribeRejectsOversizedAudio(t *testing.T) {
	svc := NewDefaultSTTService("key", "", "")

	if _, _, err := svc.Transcribe(context.Background(), make([]byte, MaxAudioSize+1)); err == nil {
		t.Fatal("expected error for oversized audio")
	}
}

func TestTranscribeNoProvidersConfigured(t *testing.T) {
	svc := NewDefaultSTTService("", "", "")

	if _, _, err := svc.Transcribe(context.Background(), []byte("audio")); err == nil {
		t.Fatal("expected error with no providers configured")
	}
}

func TestTranscribeElevenLabsSuccess(t *testing.T) {
	transport := &scriptedTransport{responses: map[string]*http.Response{
		"elevenlabs": jsonResponse(http.StatusOK, `{"text":" Hello, I'm here to see Ahmed. "}`),
	}}
	svc := NewDefaultSTTService("key", "", "")
	svc.HTTPClient = &http.Client{Transport: transport}

	text, provider, err := svc.Transcribe(context.Background(), []byte("audio"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if provider != "elevenlabs" {
		t.Fatalf("unexpected provider %q", provider)
	}
	if text != "Hello, I'm here to see Ahmed." {
		t.Fatalf("unexpected transcript %q", text)
	}

	req := transport.requests[0]
	if req.Header.Get("xi-api-key") != "key" {
		t.Error("api key header not set")
	}
}

func TestTranscribeElevenLabsFailureFallsThrough(t *testing.T) {
	transport := &scriptedTransport{responses: map[string]*http.Response{
		"elevenlabs": jsonResponse(http.StatusTooManyRequests, `{"detail":"rate limited"}`),
	}}
	// Only ElevenLabs configured, so exhaustion is an error.
	svc := NewDefaultSTTService("key", "", "")
	svc.HTTPClient = &http.Client{Transport: transport}

	if _, _, err := svc.Transcribe(context.Background(), []byte("audio")); err == nil {
		t.Fatal("expected error when the only provider fails")
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	svc := NewDefaultTTSService("key", "f", "m", "")

	if _, _, err := svc.Synthesize(context.Background(), "", VoiceFemale); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestSynthesizeNoProvidersConfigured(t *testing.T) {
	svc := NewDefaultTTSService("", "", "", "")

	if _, _, err := svc.Synthesize(context.Background(), "Hello", VoiceFemale); err == nil {
		t.Fatal("expected error with no providers configured")
	}
}

func TestSynthesizeElevenLabsSuccess(t *testing.T) {
	transport := &scriptedTransport{responses: map[string]*http.Response{
		"elevenlabs": {
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte("mp3-bytes"))),
		},
	}}
	svc := NewDefaultTTSService("key", "voice-f", "voice-m", "")
	svc.HTTPClient = &http.Client{Transport: transport}

	audio, provider, err := svc.Synthesize(context.Background(), "Welcome!", VoiceMale)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if provider != "elevenlabs" {
		t.Fatalf("unexpected provider %q", provider)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio %q", audio)
	}
	if !strings.Contains(transport.requests[0].URL.Path, "voice-m") {
		t.Errorf("male voice id not used: %s", transport.requests[0].URL.Path)
	}
}

func TestSynthesizeFallsBackToGoogle(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("google-mp3"))
	transport := &scriptedTransport{responses: map[string]*http.Response{
		"elevenlabs":   jsonResponse(http.StatusUnauthorized, `{"detail":"bad key"}`),
		"texttospeech": jsonResponse(http.StatusOK, `{"audioContent":"`+encoded+`"}`),
	}}
	svc := NewDefaultTTSService("key", "voice-f", "voice-m", "google-key")
	svc.HTTPClient = &http.Client{Transport: transport}

	audio, provider, err := svc.Synthesize(context.Background(), "Welcome!", VoiceFemale)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if provider != "google" {
		t.Fatalf("unexpected provider %q", provider)
	}
	if string(audio) != "google-mp3" {
		t.Fatalf("unexpected audio %q", audio)
	}
}

func TestVoiceIDSelection(t *testing.T) {
	svc := NewDefaultTTSService("key", "voice-f", "voice-m", "")

	if svc.voiceID(VoiceMale) != "voice-m" {
		t.Error("male voice not selected")
	}
	if svc.voiceID(VoiceFemale) != "voice-f" {
		t.Error("female voice not selected")
	}
	if svc.voiceID("") != "voice-f" {
		t.Error("default voice should be female")
	}
}
