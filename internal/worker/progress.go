package worker

import (
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Progress counts finished items and logs at most once per interval
type Progress struct {
	name      string
	total     int64
	done      atomic.Int64
	logger    *slog.Logger
	sometimes *rate.Sometimes
}

// NewProgress creates a progress reporter for total items. A nil logger
// disables reporting.
func NewProgress(logger *slog.Logger, name string, total int, interval time.Duration) *Progress {
	return &Progress{
		name:      name,
		total:     int64(total),
		logger:    logger,
		sometimes: &rate.Sometimes{First: 1, Interval: interval},
	}
}

// Add records n finished items. Safe for concurrent use and on a nil receiver.
func (p *Progress) Add(n int) {
	if p == nil {
		return
	}
	done := p.done.Add(int64(n))
	if p.logger == nil {
		return
	}
	p.sometimes.Do(func() {
		p.logger.Debug("progress", "stage", p.name, "done", done, "total", p.total)
	})
}

// Done returns the number of finished items
func (p *Progress) Done() int {
	if p == nil {
		return 0
	}
	return int(p.done.Load())
}
