package clients

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/apperrors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImageClient_Generate(t *testing.T) {
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(srv.Close)

	client := NewImageClient(srv.URL, testLogger())

	data, err := client.Generate(context.Background(), "a red fox", "flux", "Pixel Art")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	assert.Equal(t, "a red fox", gotQuery.Get("prompt"))
	assert.Equal(t, "flux", gotQuery.Get("model"))
	assert.Equal(t, "pixel_art", gotQuery.Get("style"))
}

func TestImageClient_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	client := NewImageClient(srv.URL, testLogger())
	var slept []time.Duration
	client.sleep = func(d time.Duration) { slept = append(slept, d) }

	data, err := client.Generate(context.Background(), "p", "flux", "Manga")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestImageClient_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewImageClient(srv.URL, testLogger())
	client.sleep = func(time.Duration) {}

	_, err := client.Generate(context.Background(), "p", "flux", "Manga")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "E300", appErr.Code)
}

func TestTTSClient_VoicesShapes(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want []string
	}{
		{name: "bare array", body: `["alice","bob"]`, want: []string{"alice", "bob"}},
		{name: "voices field", body: `{"voices":["alice"]}`, want: []string{"alice"}},
		{name: "voice_names field", body: `{"voice_names":["bob"]}`, want: []string{"bob"}},
		{name: "data field", body: `{"data":["carol"]}`, want: []string{"carol"}},
		{name: "unknown shape", body: `{"other":1}`, want: nil},
		{name: "not json", body: `oops`, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			client := NewTTSClient(srv.URL, testLogger())
			voices, err := client.Voices(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, voices)
		})
	}
}

func TestTTSClient_SynthesizeDirectAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hello", r.URL.Query().Get("text"))
		assert.Equal(t, "alice", r.URL.Query().Get("voice"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	t.Cleanup(srv.Close)

	client := NewTTSClient(srv.URL, testLogger())

	audio, err := client.Synthesize(context.Background(), "hello", "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestTTSClient_SynthesizeViaJSONURL(t *testing.T) {
	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("indirect-audio"))
	}))
	t.Cleanup(audioSrv.Close)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"` + audioSrv.URL + `"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewTTSClient(srv.URL, testLogger())

	audio, err := client.Synthesize(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("indirect-audio"), audio)
}

func TestTTSClient_SynthesizeJSONWithoutURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewTTSClient(srv.URL, testLogger())

	_, err := client.Synthesize(context.Background(), "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTS")
}

func TestSearchClient_AskJSONShapes(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{name: "answer field", body: `{"answer":"42"}`, want: "42"},
		{name: "result field", body: `{"result":"r"}`, want: "r"},
		{name: "message field", body: `{"message":"m"}`, want: "m"},
		{name: "text field", body: `{"text":"t"}`, want: "t"},
		{name: "data field", body: `{"data":"d"}`, want: "d"},
		{name: "answer wins over result", body: `{"result":"no","answer":"yes"}`, want: "yes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "why is the sky blue", r.URL.Query().Get("chat"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			client := NewSearchClient(srv.URL, testLogger())
			answer, err := client.Ask(context.Background(), "why is the sky blue")
			require.NoError(t, err)
			assert.Equal(t, tc.want, answer)
		})
	}
}

func TestSearchClient_AskPlainTextCapped(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(long)
	}))
	t.Cleanup(srv.Close)

	client := NewSearchClient(srv.URL, testLogger())

	answer, err := client.Ask(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, answer, searchAnswerLimit)
}

func TestStylesClient_FetchStyles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"styles":["pixel_art","manga"],"ts":123}`))
	}))
	t.Cleanup(srv.Close)

	client := NewStylesClient(srv.URL, testLogger())

	names, ts, err := client.FetchStyles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"pixel_art", "manga"}, names)
	assert.Equal(t, int64(123), ts)
}

func TestStylesClient_FetchStylesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewStylesClient(srv.URL, testLogger())

	_, _, err := client.FetchStyles(context.Background())
	require.Error(t, err)
}
