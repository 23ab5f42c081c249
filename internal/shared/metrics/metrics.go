package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	summaryGeneratedTotal atomic.Uint64
	summaryRejectedTotal  atomic.Uint64
	resumeSavedTotal      atomic.Uint64
	importTotal           atomic.Uint64
	importFailedTotal     atomic.Uint64

	summaryDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncSummaryGenerated increments the generated-summaries counter.
func IncSummaryGenerated() {
	summaryGeneratedTotal.Add(1)
}

// IncSummaryRejected increments the counter for summaries refused for lack of detail.
func IncSummaryRejected() {
	summaryRejectedTotal.Add(1)
}

// IncResumeSaved increments the stored-resumes counter.
func IncResumeSaved() {
	resumeSavedTotal.Add(1)
}

// IncImport increments the file-imports counter.
func IncImport() {
	importTotal.Add(1)
}

// IncImportFailed increments the failed-imports counter.
func IncImportFailed() {
	importFailedTotal.Add(1)
}

// ObserveSummaryDurationMs records a summary generation duration in milliseconds.
func ObserveSummaryDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	summaryDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "summary_generated_total", "Total summaries generated", summaryGeneratedTotal.Load())
	writeCounter(&buf, "summary_rejected_total", "Total summaries rejected for insufficient detail", summaryRejectedTotal.Load())
	writeCounter(&buf, "resume_saved_total", "Total resumes stored", resumeSavedTotal.Load())
	writeCounter(&buf, "import_total", "Total resume files imported", importTotal.Load())
	writeCounter(&buf, "import_failed_total", "Total resume file imports that failed", importFailedTotal.Load())
	writeHistogram(&buf, "summary_duration_ms", "Summary generation duration in milliseconds", summaryDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
