// Package clients holds the HTTP clients for the external AI services the
// bot fronts: image generation, text-to-speech, and web search.
package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raolabs/raobot/pkg/metrics"
)

// maxBodyBytes bounds response reads so a misbehaving service cannot make
// the bot buffer arbitrary amounts of data.
const maxBodyBytes = 20 << 20

// httpDoer is satisfied by *http.Client. Tests swap in stubs.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// get issues a GET and returns the response on any 2xx status. The caller
// owns the body.
func get(ctx context.Context, doer httpDoer, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return resp, nil
}

// getBytes issues a GET and drains the body.
func getBytes(ctx context.Context, doer httpDoer, url string) ([]byte, error) {
	resp, err := get(ctx, doer, url)
	if err != nil {
		return nil, err
	}

	return readAll(resp)
}

// readAll drains and closes the response body.
func readAll(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

// observe records the outcome of one external call.
func observe(service string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	metrics.RecordExternalCall(service, status, time.Since(start))
}
