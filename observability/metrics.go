package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for MessagesTotal
const (
	OutcomeStored       = "stored"
	OutcomeSkipped      = "skipped"
	OutcomeMissingField = "missing_field"
	OutcomeMalformed    = "malformed"
	OutcomeWriteError   = "write_error"
)

// Stream metrics
var (
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweetlab_messages_total",
		Help: "Total number of stream messages handled, by outcome",
	}, []string{"outcome"})

	TransportErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tweetlab_transport_errors_total",
		Help: "Total number of transport errors and platform notices",
	})

	ConnectionState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tweetlab_stream_connection_state",
		Help: "Stream connection state (1=connected, 0=disconnected)",
	})
)

// Content metrics
var (
	KeywordMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweetlab_keyword_matches_total",
		Help: "Total number of stored messages matching each track keyword",
	}, []string{"keyword"})

	LanguagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweetlab_detected_languages_total",
		Help: "Total number of stored messages by detected language",
	}, []string{"lang"})

	SinkWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tweetlab_sink_write_duration_seconds",
		Help:    "Duration of one record write",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)
