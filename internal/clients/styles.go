package clients

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/raolabs/raobot/internal/apperrors"
)

const stylesTimeout = 25 * time.Second

// StylesClient fetches the style catalog from the image service.
type StylesClient struct {
	url  string
	doer httpDoer
	log  *slog.Logger
}

// NewStylesClient constructs a StylesClient for the given catalog URL.
func NewStylesClient(url string, log *slog.Logger) *StylesClient {
	if log == nil {
		log = slog.Default()
	}

	return &StylesClient{
		url:  url,
		doer: &http.Client{Timeout: stylesTimeout},
		log:  log,
	}
}

// FetchStyles returns the raw style names and the server's catalog
// timestamp, if it sent one.
func (c *StylesClient) FetchStyles(ctx context.Context) ([]string, int64, error) {
	start := time.Now()

	body, err := getBytes(ctx, c.doer, c.url)
	observe("styles", start, err)
	if err != nil {
		return nil, 0, apperrors.NewExternalAPIError("Style API", err)
	}

	var payload struct {
		Styles []string `json:"styles"`
		TS     int64    `json:"ts"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, apperrors.NewExternalAPIError("Style API", err)
	}

	return payload.Styles, payload.TS, nil
}
