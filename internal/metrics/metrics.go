package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/j0lvera/eightball/internal/eightball"
)

const (
	SourceAsk   = "ask"
	SourceShake = "shake"
)

// Metrics counts answers and keyword matches.
type Metrics struct {
	answers     *prometheus.CounterVec
	keywordHits *prometheus.CounterVec
	debounced   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eightball_answers_total",
			Help: "Answers given, by how they were requested and their sentiment.",
		}, []string{"source", "sentiment"}),
		keywordHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eightball_keyword_hits_total",
			Help: "Question tokens that matched a keyword dictionary, by group.",
		}, []string{"group"}),
		debounced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eightball_shakes_debounced_total",
			Help: "Shakes ignored because they came too soon after the previous one.",
		}),
	}
	reg.MustRegister(m.answers, m.keywordHits, m.debounced)
	return m
}

// RecordAnswer counts a response returned to a user.
func (m *Metrics) RecordAnswer(source string, r eightball.Response) {
	m.answers.WithLabelValues(source, r.Sentiment.String()).Inc()
}

// RecordWeights counts the keyword hits behind an ask.
func (m *Metrics) RecordWeights(w eightball.Weights) {
	m.keywordHits.WithLabelValues("positive").Add(float64(w.PositiveHits))
	m.keywordHits.WithLabelValues("negative").Add(float64(w.NegativeHits))
	m.keywordHits.WithLabelValues("uncertain").Add(float64(w.UncertainHits))
}

// RecordDebounced counts a suppressed shake.
func (m *Metrics) RecordDebounced() {
	m.debounced.Inc()
}
