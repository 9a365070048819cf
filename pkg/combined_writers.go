package pkg

import (
	"io"
	"sync/atomic"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers. A failing writer
// never blocks the others: the write succeeds when at least one writer took it.
type CombinedWriter struct {
	writers  []io.Writer
	failures atomic.Int64
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	accepted := 0
	for _, w := range cw.writers {
		if _, err := w.Write(p); err != nil {
			cw.failures.Add(1)
			errs = multierr.Append(errs, err)
			continue
		}
		accepted++
	}
	if accepted == 0 && len(cw.writers) > 0 {
		return 0, errs
	}
	return len(p), nil
}

// Failures is the number of rejected writes across all writers.
func (cw *CombinedWriter) Failures() int64 {
	return cw.failures.Load()
}
