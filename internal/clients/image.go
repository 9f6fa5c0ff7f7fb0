package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/raolabs/raobot/internal/apperrors"
	"github.com/raolabs/raobot/internal/styles"
)

const (
	imageTimeout = 120 * time.Second
	imageRetries = 2
)

// ImageClient fetches generated images. Image generation can run for up to
// two minutes, so the client uses a long timeout and retries transient
// failures with a widening pause between attempts.
type ImageClient struct {
	baseURL string
	doer    httpDoer
	breaker *apperrors.CircuitBreaker
	log     *slog.Logger
	sleep   func(time.Duration)
}

// NewImageClient constructs an ImageClient for the given endpoint.
func NewImageClient(baseURL string, log *slog.Logger) *ImageClient {
	if log == nil {
		log = slog.Default()
	}

	return &ImageClient{
		baseURL: baseURL,
		doer:    &http.Client{Timeout: imageTimeout},
		breaker: apperrors.NewCircuitBreaker("image", log),
		log:     log,
		sleep:   time.Sleep,
	}
}

// Generate renders prompt with the given model and display-form style and
// returns the raw image bytes.
func (c *ImageClient) Generate(ctx context.Context, prompt, model, style string) ([]byte, error) {
	start := time.Now()

	reqURL := c.buildURL(prompt, model, style)

	var body []byte
	attempt := 0
	err := c.breaker.Call(func() error {
		return apperrors.WithRetry(ctx, imageRetries, c.sleep, func() error {
			attempt++

			data, err := getBytes(ctx, c.doer, reqURL)
			if err != nil {
				c.log.Warn("image request failed",
					slog.Int("attempt", attempt),
					slog.Any("error", err),
				)

				return apperrors.NewExternalAPIError("Image API", err)
			}

			body = data
			return nil
		})
	})

	observe("image", start, err)

	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, apperrors.NewExternalAPIError("Image API", err)
	}

	return body, nil
}

func (c *ImageClient) buildURL(prompt, model, style string) string {
	q := url.Values{}
	q.Set("prompt", prompt)
	q.Set("model", model)
	q.Set("style", styles.Slug(style))

	return c.baseURL + "?" + q.Encode()
}
