package llm

import (
	"context"
	"sync"
	"time"
)

// RequestRecord describes one completed LLM call.
type RequestRecord struct {
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog is a bounded in-memory record of LLM calls made during this
// run. There is no persistence in SoalGen, so the log lives and dies with
// the process; the result screen and `soalgen llm check` read it.
type RequestLog struct {
	mu      sync.Mutex
	records []RequestRecord
	max     int
}

// NewRequestLog creates a RequestLog keeping at most max records.
func NewRequestLog(max int) *RequestLog {
	if max <= 0 {
		max = 64
	}
	return &RequestLog{max: max}
}

// Append adds a record, evicting the oldest when full.
func (l *RequestLog) Append(rec RequestRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	if len(l.records) > l.max {
		l.records = l.records[len(l.records)-l.max:]
	}
}

// Last returns the most recent record, if any.
func (l *RequestLog) Last() (RequestRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.records) == 0 {
		return RequestRecord{}, false
	}
	return l.records[len(l.records)-1], true
}

// All returns a copy of every record, oldest first.
func (l *RequestLog) All() []RequestRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RequestRecord, len(l.records))
	copy(out, l.records)
	return out
}

// TotalUsage sums token usage over every recorded call.
func (l *RequestLog) TotalUsage() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	var u Usage
	for _, r := range l.records {
		u.InputTokens += r.InputTokens
		u.OutputTokens += r.OutputTokens
	}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}

// LoggingProvider is a decorator that records every LLM request in a
// RequestLog.
type LoggingProvider struct {
	inner Provider
	log   *RequestLog
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Timestamp: start,
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	l.log.Append(rec)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
