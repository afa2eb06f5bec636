package gitrepo

import "io"

// ProgressSink receives byte counts as a clone or fetch streams sideband
// progress data, per spec.md §4.4's "Progress" bullet. Detecting whether
// the embedding terminal is capable of rendering a progress bar is left to
// the embedder; a nil sink disables progress entirely.
type ProgressSink interface {
	Write(p []byte) (int, error)
}

// noopProgressSink discards all progress output.
type noopProgressSink struct{}

func (noopProgressSink) Write(p []byte) (int, error) { return len(p), nil }

func progressWriter(sink ProgressSink) io.Writer {
	if sink == nil {
		return noopProgressSink{}
	}
	return sink
}
