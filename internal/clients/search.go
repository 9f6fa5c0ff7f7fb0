package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/raolabs/raobot/internal/apperrors"
)

const (
	searchTimeout = 60 * time.Second
	// searchAnswerLimit caps the answer so it always fits in one Telegram
	// message.
	searchAnswerLimit = 3500
)

// SearchClient queries the web-search AI service.
type SearchClient struct {
	baseURL string
	doer    httpDoer
	breaker *apperrors.CircuitBreaker
	log     *slog.Logger
}

// NewSearchClient constructs a SearchClient for the given endpoint.
func NewSearchClient(baseURL string, log *slog.Logger) *SearchClient {
	if log == nil {
		log = slog.Default()
	}

	return &SearchClient{
		baseURL: baseURL,
		doer:    &http.Client{Timeout: searchTimeout},
		breaker: apperrors.NewCircuitBreaker("search", log),
		log:     log,
	}
}

// Ask sends query and returns the answer text, capped at searchAnswerLimit
// characters. JSON responses are probed for the first known string field;
// anything else is returned verbatim.
func (c *SearchClient) Ask(ctx context.Context, query string) (string, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("chat", query)
	reqURL := c.baseURL + "?" + q.Encode()

	var answer string
	err := c.breaker.Call(func() error {
		resp, err := get(ctx, c.doer, reqURL)
		if err != nil {
			return err
		}

		ctype := strings.ToLower(resp.Header.Get("Content-Type"))

		body, err := readAll(resp)
		if err != nil {
			return err
		}

		if strings.Contains(ctype, "application/json") {
			answer = parseSearchAnswer(body)
		} else {
			answer = string(body)
		}

		answer = capRunes(answer, searchAnswerLimit)
		return nil
	})

	observe("search", start, err)

	if err != nil {
		return "", apperrors.NewExternalAPIError("Search AI", err)
	}

	return answer, nil
}

func parseSearchAnswer(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}

	for _, key := range []string{"answer", "result", "message", "text", "data"} {
		if s, ok := payload[key].(string); ok {
			return s
		}
	}

	return fmt.Sprintf("%v", payload)
}

func capRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
