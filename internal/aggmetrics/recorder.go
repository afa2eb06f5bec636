package aggmetrics

import "time"

// FetchResult enumerates outcomes for a single repository clone/fetch.
type FetchResult string

const (
	FetchSuccess FetchResult = "success"
	FetchFailed  FetchResult = "failed"
)

// Recorder defines observability hooks for the aggregation pipeline.
// Implementations may forward to Prometheus, OpenTelemetry, etc. All methods
// must be safe for nil receivers when using NoopRecorder.
type Recorder interface {
	ObserveAggregationDuration(d time.Duration)
	ObserveRepoFetchDuration(repo string, d time.Duration, result FetchResult)
	IncRepoFetchResult(result FetchResult)
	IncFilesClassified(family string, n int)
	SetFetchConcurrency(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveAggregationDuration(time.Duration)                    {}
func (NoopRecorder) ObserveRepoFetchDuration(string, time.Duration, FetchResult) {}
func (NoopRecorder) IncRepoFetchResult(FetchResult)                              {}
func (NoopRecorder) IncFilesClassified(string, int)                              {}
func (NoopRecorder) SetFetchConcurrency(int)                                     {}
