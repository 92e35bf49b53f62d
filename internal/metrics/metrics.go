// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/projeli/wiki-service/internal/event"
)

// Metrics holds all collectors. It satisfies service.Metrics and sync.Metrics.
type Metrics struct {
	EventsAppended *prometheus.CounterVec
	AppendFailures *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
	SyncMessages   *prometheus.CounterVec
	RPCDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EventsAppended: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wiki_events_appended_total",
			Help: "Events appended to wiki history, by kind",
		}, []string{"kind"}),
		AppendFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wiki_event_append_failures_total",
			Help: "Committed mutations whose history event could not be appended, by kind",
		}, []string{"kind"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wiki_operation_rejections_total",
			Help: "Guarded operations that returned an error, by operation and reason",
		}, []string{"op", "reason"}),
		SyncMessages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wiki_sync_messages_total",
			Help: "Project messages processed, by type and outcome",
		}, []string{"type", "outcome"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wiki_rpc_duration_seconds",
			Help:    "gRPC call latency, by method and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
}

func (m *Metrics) EventAppended(kind event.Kind) {
	m.EventsAppended.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) AppendFailed(kind event.Kind) {
	m.AppendFailures.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) Rejected(op, reason string) {
	m.Rejections.WithLabelValues(op, reason).Inc()
}

func (m *Metrics) SyncOutcome(msgType, outcome string) {
	m.SyncMessages.WithLabelValues(msgType, outcome).Inc()
}

func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	m.RPCDuration.WithLabelValues(method, code).Observe(d.Seconds())
}
