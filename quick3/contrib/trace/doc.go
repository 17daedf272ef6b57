// Package trace provides Sink implementations for quick3: a Recorder that
// keeps copies of every snapshot, a glog Logger, a terminal bar renderer
// and Prometheus metrics.
//
// Sinks compose with Multi and Only:
//
//	rec := trace.NewRecorder[float64]()
//	bars := trace.NewBars[float64](os.Stdout, trace.Identity, 8, false)
//	quick3.Sort(data, quick3.WithSink(trace.Multi[float64]{
//	    rec,
//	    trace.Only[float64](bars, quick3.StepAfter, quick3.StepTrivial),
//	}))
//
// None of the sinks are safe for concurrent use. A sort calls its sink from
// a single goroutine, so one sink per sort is the expected pattern.
package trace
