package middleware

import (
	"strings"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/bot/handlers"
	"github.com/raolabs/raobot/pkg/metrics"
)

// Metrics measures execution time and status for bot handlers, reporting
// them to Prometheus.
func Metrics(next handlers.Handler) handlers.Handler {
	if next == nil {
		return nil
	}

	return func(c telebot.Context) error {
		start := time.Now()
		err := next(c)

		command := extractCommandName(c)
		status := "ok"
		if err != nil {
			status = "error"
		}

		metrics.RecordCommand(command, status, time.Since(start))

		return err
	}
}

// extractCommandName reduces an update to a low-cardinality label: the bare
// command for messages, the action prefix for callbacks.
func extractCommandName(c telebot.Context) string {
	if c == nil {
		return "unknown"
	}

	if cb := c.Callback(); cb != nil && cb.Data != "" {
		data := strings.TrimPrefix(cb.Data, "\f")
		if i := strings.IndexAny(data, ":|"); i > 0 {
			return "cb:" + data[:i]
		}
		return "cb:" + data
	}

	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		command := strings.Fields(text)[0]
		if i := strings.Index(command, "@"); i > 0 {
			command = command[:i]
		}
		return command
	}

	if text != "" {
		return "text"
	}

	return "unknown"
}
