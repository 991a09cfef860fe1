package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	framesReadTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "gmeetstamp_frames_read_total",
		Help: "Number of whole frames read from the decoder",
	})

	framesChangedTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "gmeetstamp_frames_changed_total",
		Help: "Number of frames which differed from their predecessor",
	})

	framesSavedTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "gmeetstamp_frames_saved_total",
		Help: "Number of changed frames written to the output directory",
	})

	lastSavedTimestamp = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Name: "gmeetstamp_last_saved_timestamp_seconds",
		Help: "Stream time of the most recently saved frame",
	})
)

func RecordFrameRead() {
	framesReadTotal.Inc()
}

func RecordFrameChanged() {
	framesChangedTotal.Inc()
}

func RecordFrameSaved(seconds float64) {
	framesSavedTotal.Inc()
	lastSavedTimestamp.Set(seconds)
}

// WriteTextfile dumps every metric in the text exposition format, for the
// node_exporter textfile collector to pick up after a run.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
