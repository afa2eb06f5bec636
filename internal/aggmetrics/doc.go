// Package aggmetrics provides an observability framework for aggregation
// pipeline metrics: files classified, repositories cloned/fetched, and
// aggregation stage duration.
//
// # Design
//
// The package follows the Null Object pattern: components receive a Recorder
// through dependency injection, defaulting to NoopRecorder so metrics
// collection never requires nil checks or a running Prometheus registry.
// A real implementation is opted into by constructing a PrometheusRecorder
// and injecting it in place of the default.
//
//	type Aggregator struct {
//	    recorder aggmetrics.Recorder
//	}
//
//	agg := NewAggregator(aggmetrics.NoopRecorder{}) // default: no metrics
//	agg := NewAggregator(aggmetrics.NewPrometheusRecorder(nil)) // opted in
package aggmetrics
