package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UploadsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "meeting_summarizer", Name: "uploads_processed_total", Help: "Number of processed uploads by outcome."},
		[]string{"outcome"},
	)
	PipelineStageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "meeting_summarizer", Name: "pipeline_stage_duration_seconds", Help: "Duration of each pipeline stage.", Buckets: prometheus.DefBuckets},
		[]string{"stage"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(UploadsProcessed)
	reg.MustRegister(PipelineStageDuration)
}
