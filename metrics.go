package twitchchat

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps a *prometheus.Registry with the counters and gauges this
// module emits, grounded on runZeroInc-sockstats/pkg/exporter's collector
// wrapping pattern. A nil *Metrics is valid everywhere a Metrics is accepted
// and every method becomes a no-op, so tests and callers that don't care
// about metrics never need to construct a registry.
type Metrics struct {
	messagesDispatched prometheus.Counter
	messagesSent       prometheus.Counter
	rateLimitWaits     prometheus.Counter
	channelsJoined     prometheus.Gauge
	queueDepth         *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg and returns a Metrics wrapper.
// Passing a nil registry is supported and yields a *Metrics whose methods are
// all no-ops, matching WithMetrics(nil) leaving collection disabled.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		messagesDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "twitchchat_messages_dispatched_total",
			Help: "Frames successfully decoded and fanned out by the dispatcher.",
		}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "twitchchat_messages_sent_total",
			Help: "Lines written to the connection.",
		}),
		rateLimitWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "twitchchat_rate_limit_waits_total",
			Help: "Times an outbound write was delayed by a rate limiter.",
		}),
		channelsJoined: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "twitchchat_channels_joined",
			Help: "Number of channels currently tracked by the runner.",
		}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "twitchchat_queue_depth",
			Help: "Queued outbound messages per channel.",
		}, []string{"channel"}),
	}
	reg.MustRegister(m.messagesDispatched, m.messagesSent, m.rateLimitWaits, m.channelsJoined, m.queueDepth)
	return m
}

func (m *Metrics) incDispatched() {
	if m == nil {
		return
	}
	m.messagesDispatched.Inc()
}

func (m *Metrics) incSent() {
	if m == nil {
		return
	}
	m.messagesSent.Inc()
}

func (m *Metrics) incRateLimitWait() {
	if m == nil {
		return
	}
	m.rateLimitWaits.Inc()
}

func (m *Metrics) setChannelsJoined(n int) {
	if m == nil {
		return
	}
	m.channelsJoined.Set(float64(n))
}

func (m *Metrics) setQueueDepth(channel string, n int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(channel).Set(float64(n))
}
