package testing

import (
	"context"
	"log/slog"
	"sync"
)

// TestSlogHandler records every log record it handles so that tests can make
// assertions about what was logged
type TestSlogHandler struct {
	records  []slog.Record
	minLevel slog.Leveler
	mu       sync.Mutex
}

func NewTestSlogHandler() *TestSlogHandler {
	var minLevel slog.LevelVar
	minLevel.Set(slog.LevelDebug)
	return &TestSlogHandler{
		minLevel: &minLevel,
	}
}

func (h *TestSlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *TestSlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *TestSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns the records handled so far
func (h *TestSlogHandler) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]slog.Record(nil), h.records...)
}

// Messages returns the messages of the records handled so far
func (h *TestSlogHandler) Messages() []string {
	recs := h.Records()
	res := make([]string, len(recs))
	for i, r := range recs {
		res[i] = r.Message
	}
	return res
}

// Attr returns the value of the named attribute of a record
func Attr(r slog.Record, key string) (slog.Value, bool) {
	var res slog.Value
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			res, found = a.Value, true
			return false
		}
		return true
	})
	return res, found
}
