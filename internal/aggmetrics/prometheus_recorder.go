package aggmetrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	aggregationSeconds prom.Histogram
	fetchSeconds       *prom.HistogramVec
	fetchResults       *prom.CounterVec
	filesClassified    *prom.CounterVec
	fetchConcurrency   prom.Gauge
}

// NewPrometheusRecorder constructs a recorder and registers its metrics on
// reg. A nil registry gets a fresh one, which is not returned. Each call
// builds new metrics, so a second call with the same registry panics on
// duplicate registration.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.aggregationSeconds = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitepipe",
			Name:      "aggregation_duration_seconds",
			Help:      "Total duration of a content aggregation run",
			Buckets:   prom.DefBuckets,
		})
		pr.fetchSeconds = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitepipe",
			Name:      "repo_fetch_duration_seconds",
			Help:      "Duration of individual repository clone/fetch operations",
			Buckets:   prom.DefBuckets,
		}, []string{"repo", "result"})
		pr.fetchResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitepipe",
			Name:      "repo_fetch_results_total",
			Help:      "Repository fetch results by success/failure",
		}, []string{"result"})
		pr.filesClassified = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitepipe",
			Name:      "files_classified_total",
			Help:      "Files classified by content family",
		}, []string{"family"})
		pr.fetchConcurrency = prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitepipe",
			Name:      "repo_fetch_concurrency",
			Help:      "Observed fetch concurrency for the last aggregation run",
		})
		reg.MustRegister(pr.aggregationSeconds, pr.fetchSeconds, pr.fetchResults, pr.filesClassified, pr.fetchConcurrency)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveAggregationDuration(d time.Duration) {
	if p == nil || p.aggregationSeconds == nil {
		return
	}
	p.aggregationSeconds.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRepoFetchDuration(repo string, d time.Duration, result FetchResult) {
	if p == nil || p.fetchSeconds == nil {
		return
	}
	p.fetchSeconds.WithLabelValues(repo, string(result)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRepoFetchResult(result FetchResult) {
	if p == nil || p.fetchResults == nil {
		return
	}
	p.fetchResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncFilesClassified(family string, n int) {
	if p == nil || p.filesClassified == nil || n == 0 {
		return
	}
	p.filesClassified.WithLabelValues(family).Add(float64(n))
}

func (p *PrometheusRecorder) SetFetchConcurrency(n int) {
	if p == nil || p.fetchConcurrency == nil {
		return
	}
	p.fetchConcurrency.Set(float64(n))
}
