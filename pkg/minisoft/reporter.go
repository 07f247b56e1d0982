package minisoft

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives human-readable progress markers when verbose mode is
// enabled. It never affects the compilation result, only what is
// observed on the side channel.
type Reporter interface {
	Notef(format string, args ...any)
}

type noopReporter struct{}

func (noopReporter) Notef(string, ...any) {}

// WriterReporter timestamps and writes one progress line per Notef call
// to an io.Writer.
type WriterReporter struct {
	W io.Writer
}

func (r WriterReporter) Notef(format string, args ...any) {
	if r.W == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.W, "%s %s\n", time.Now().Format("15:04:05.000"), line)
}

// CollectingReporter accumulates progress markers in memory instead of
// writing them out, so they can be spliced into a serialized
// CompilationResult as a "progress_log" field (see PatchProgressLog).
type CollectingReporter struct {
	Lines []string
}

func (r *CollectingReporter) Notef(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}
