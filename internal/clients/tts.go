package clients

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/raolabs/raobot/internal/apperrors"
)

const (
	ttsVoicesTimeout = 30 * time.Second
	ttsSynthTimeout  = 60 * time.Second
)

// TTSClient talks to the text-to-speech service. The same endpoint lists
// voices when called without text and synthesizes audio otherwise.
type TTSClient struct {
	baseURL string
	voices  httpDoer
	synth   httpDoer
	breaker *apperrors.CircuitBreaker
	log     *slog.Logger
}

// NewTTSClient constructs a TTSClient for the given endpoint.
func NewTTSClient(baseURL string, log *slog.Logger) *TTSClient {
	if log == nil {
		log = slog.Default()
	}

	return &TTSClient{
		baseURL: baseURL,
		voices:  &http.Client{Timeout: ttsVoicesTimeout},
		synth:   &http.Client{Timeout: ttsSynthTimeout},
		breaker: apperrors.NewCircuitBreaker("tts", log),
		log:     log,
	}
}

// Voices returns the available voice names. The service answers either with
// a bare JSON array or an object keyed by one of several field names.
func (c *TTSClient) Voices(ctx context.Context) ([]string, error) {
	start := time.Now()

	var names []string
	err := c.breaker.Call(func() error {
		body, err := getBytes(ctx, c.voices, c.baseURL)
		if err != nil {
			return err
		}

		names = parseVoices(body)
		return nil
	})

	observe("tts", start, err)

	if err != nil {
		return nil, apperrors.NewExternalAPIError("TTS API", err)
	}

	return names, nil
}

// Synthesize converts text to speech and returns the audio bytes. When the
// service answers with JSON instead of audio, the payload carries a URL that
// must be fetched separately.
func (c *TTSClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("text", text)
	if voice != "" {
		q.Set("voice", voice)
	}
	reqURL := c.baseURL + "?" + q.Encode()

	var audio []byte
	err := c.breaker.Call(func() error {
		resp, err := get(ctx, c.synth, reqURL)
		if err != nil {
			return err
		}

		ctype := strings.ToLower(resp.Header.Get("Content-Type"))
		if !strings.Contains(ctype, "application/json") {
			audio, err = readAll(resp)
			return err
		}

		body, err := readAll(resp)
		if err != nil {
			return err
		}

		audioURL, err := parseAudioURL(body)
		if err != nil {
			return err
		}

		audio, err = getBytes(ctx, c.synth, audioURL)
		return err
	})

	observe("tts", start, err)

	if err != nil {
		return nil, apperrors.NewExternalAPIError("TTS API", err)
	}

	return audio, nil
}

func parseVoices(body []byte) []string {
	var list []string
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil
	}

	for _, key := range []string{"voices", "voice_names", "data"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}

	return nil
}

func parseAudioURL(body []byte) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}

	for _, key := range []string{"url", "audio", "result"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s, nil
		}
	}

	return "", errors.New("tts response carried no audio url")
}
