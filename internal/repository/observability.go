package repository

import (
	"fmt"
	"io"
	"time"
)

// LoadFallbackEvent records a swallowed load failure: a persisted record
// that could not be read or parsed and was replaced by defaults.
type LoadFallbackEvent struct {
	Record string // "config" or "state"
	Path   string
	Reason error
}

// Observer receives events about swallowed load failures for diagnostics.
type Observer interface {
	OnLoadFallback(event LoadFallbackEvent)
}

// LogObserver writes load fallback events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnLoadFallback(event LoadFallbackEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] load_fallback record=%s path=%s reason=%v\n",
		ts, event.Record, event.Path, event.Reason)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnLoadFallback(LoadFallbackEvent) {}
