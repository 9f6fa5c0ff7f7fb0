// Package metrics defines the Prometheus collectors for the bot.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	botCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of bot commands received labeled by command and status",
		},
		[]string{"command", "status"},
	)
	commandDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "command_duration_seconds",
			Help:    "Duration of bot commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
	accessDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_denials_total",
			Help: "Access-control denials split by reason (ban, disabled, gate, quota, cooldown)",
		},
		[]string{"reason"},
	)
	ownerFlowTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "owner_flow_steps_total",
			Help: "Owner console staged inputs consumed, split by step and outcome",
		},
		[]string{"step", "outcome"},
	)
	externalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_api_requests_total",
			Help: "Calls to external AI services split by service and status",
		},
		[]string{"service", "status"},
	)
	externalRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_api_request_duration_seconds",
			Help:    "External AI service call latency in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"service"},
	)
	broadcastMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_messages_total",
			Help: "Broadcast deliveries split by status",
		},
		[]string{"status"},
	)
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors split by type and severity",
		},
		[]string{"type", "severity"},
	)
	knownUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "known_users",
			Help: "Number of user profiles on record",
		},
	)
	bannedUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "banned_users",
			Help: "Number of banned user ids",
		},
	)
)

// RecordCommand increments command counters and records duration.
func RecordCommand(command, status string, duration time.Duration) {
	if command == "" {
		command = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	botCommandsTotal.WithLabelValues(command, status).Inc()
	commandDurationSeconds.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordDenial tracks an access-control denial by reason.
func RecordDenial(reason string) {
	if reason == "" {
		reason = "unknown"
	}

	accessDenialsTotal.WithLabelValues(reason).Inc()
}

// RecordOwnerFlow tracks a consumed owner-console staged input.
func RecordOwnerFlow(step, outcome string) {
	if step == "" {
		step = "unknown"
	}
	if outcome == "" {
		outcome = "unknown"
	}

	ownerFlowTotal.WithLabelValues(step, outcome).Inc()
}

// RecordExternalCall tracks one call to an external AI service.
func RecordExternalCall(service, status string, duration time.Duration) {
	if service == "" {
		service = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	externalRequestsTotal.WithLabelValues(service, status).Inc()
	externalRequestDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// RecordBroadcast tracks one broadcast delivery attempt.
func RecordBroadcast(status string) {
	if status == "" {
		status = "unknown"
	}

	broadcastMessagesTotal.WithLabelValues(status).Inc()
}

// RecordError increments error counters with metadata.
func RecordError(errType, severity string) {
	if errType == "" {
		errType = "unknown"
	}
	if severity == "" {
		severity = "unknown"
	}

	errorsTotal.WithLabelValues(errType, severity).Inc()
}

// UserCounts abstracts the repositories polled by the gauge collector.
type UserCounts interface {
	Count() int
}

// GaugeCollector periodically refreshes the user and ban gauges.
type GaugeCollector struct {
	users UserCounts
	bans  UserCounts
}

// NewGaugeCollector builds a collector bound to the user and ban stores.
func NewGaugeCollector(users, bans UserCounts) *GaugeCollector {
	return &GaugeCollector{users: users, bans: bans}
}

// Run refreshes the gauges every 10 seconds until ctx is cancelled.
func (c *GaugeCollector) Run(ctx context.Context) {
	if c == nil || c.users == nil || c.bans == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		knownUsers.Set(float64(c.users.Count()))
		bannedUsers.Set(float64(c.bans.Count()))

		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Second):
		}
	}
}
