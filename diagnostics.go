package cnc25d

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// sharedTrace selects the same tracer for every key.
type sharedTrace struct {
	trace tracing.Trace
}

func (st sharedTrace) Select(string) tracing.Trace {
	return st.trace
}

// TraceTo routes the tracing of all packages to w, through the Go standard
// logger, filtered by level. With level tracing.LevelInfo, warnings pass and
// debug output is suppressed.
//
// It returns a function which switches tracing off again.
func TraceTo(w io.Writer, level tracing.TraceLevel) func() {
	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(level)
	tracing.SetTraceSelector(sharedTrace{trace: t})
	return func() {
		tracing.SetTraceSelector(nil)
	}
}
