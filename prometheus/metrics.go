package prometheus

import (
	"time"

	"github.com/erin-james/ai-query-interface/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Question pipeline metrics
	QuestionsTotal           prometheus.CounterVec
	QuestionDuration         prometheus.Histogram
	UnansweredQuestionsTotal prometheus.Counter

	// Dataset metrics
	DatasetRowsGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Questions by resolved intent
	QuestionsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_questions_total",
			Help: "Total number of questions answered, by resolved intent",
		},
		[]string{"intent"},
	)

	// End-to-end classify-and-answer duration
	QuestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_question_duration_seconds",
			Help:    "Duration of question classification and answering in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Questions that fell through to the generic apology
	UnansweredQuestionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_unanswered_questions_total",
			Help: "Total number of questions that could not be answered",
		},
	)

	// Dataset row counts, set once at startup load
	DatasetRowsGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_dataset_rows",
			Help: "Number of rows loaded per dataset",
		},
		[]string{"table"},
	)
}

// RecordQuestion increments the counter for a resolved intent
func RecordQuestion(intent string) {
	QuestionsTotal.WithLabelValues(intent).Inc()
}

// RecordUnanswered increments the counter for unanswered questions
func RecordUnanswered() {
	UnansweredQuestionsTotal.Inc()
}

// TrackQuestion returns a function that records the duration of a question
func TrackQuestion() func(startTime time.Time) {
	return func(startTime time.Time) {
		QuestionDuration.Observe(time.Since(startTime).Seconds())
	}
}

// SetDatasetRows updates the gauge for a loaded dataset
func SetDatasetRows(table string, count int) {
	DatasetRowsGauge.WithLabelValues(table).Set(float64(count))
}
