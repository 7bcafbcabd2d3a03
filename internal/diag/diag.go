// Package diag provides the diagnostics sink implementations used by the
// generation pipeline: a zap-backed sink for real runs and a collecting
// sink for tests and drivers that aggregate diagnostics across a run.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-dao-mapper/mapper"
)

// ZapSink reports validation failures through a zap logger at error
// level, with the source location attached as a field.
type ZapSink struct {
	log *zap.Logger
}

var _ mapper.Diagnostics = (*ZapSink)(nil)

// NewZapSink wraps the given logger. A nil logger falls back to a no-op
// logger so the sink is always safe to call.
func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapSink{log: log}
}

// Report implements mapper.Diagnostics.
func (s *ZapSink) Report(location string, format string, args ...any) {
	s.log.Error(fmt.Sprintf(format, args...), zap.String("location", location))
}

// Entry is one collected diagnostic.
type Entry struct {
	Location string
	Message  string
}

// CollectingSink accumulates diagnostics in memory. A generation run
// reports per-method failures here and keeps going; the driver inspects
// the entries at the end.
type CollectingSink struct {
	mu      sync.Mutex
	entries []Entry
}

var _ mapper.Diagnostics = (*CollectingSink)(nil)

// Report implements mapper.Diagnostics.
func (s *CollectingSink) Report(location string, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Entries returns a copy of the collected diagnostics in report order.
func (s *CollectingSink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of collected diagnostics.
func (s *CollectingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
