package aggmetrics

import "time"

type testRecorder struct {
	aggregationRuns int
	fetchDurations  map[string]int
	fetchResults    map[FetchResult]int
	filesClassified map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		fetchDurations:  map[string]int{},
		fetchResults:    map[FetchResult]int{},
		filesClassified: map[string]int{},
	}
}

func (t *testRecorder) ObserveAggregationDuration(time.Duration) { t.aggregationRuns++ }
func (t *testRecorder) ObserveRepoFetchDuration(repo string, _ time.Duration, _ FetchResult) {
	t.fetchDurations[repo]++
}
func (t *testRecorder) IncRepoFetchResult(result FetchResult) { t.fetchResults[result]++ }
func (t *testRecorder) IncFilesClassified(family string, n int) {
	t.filesClassified[family] += n
}
func (t *testRecorder) SetFetchConcurrency(int) {}
