// Package report tracks and renders batch-scan progress in the terminal.
package report

import (
	"sync"
	"time"
)

// Progress tracks the state of a running scan. All methods are safe
// for concurrent use; scan workers write through Observe while the
// renderer reads snapshots on its own ticker.
type Progress struct {
	mu        sync.Mutex
	total     int
	done      int
	lastN     int
	survivors int64
	startedAt time.Time
}

// Snapshot is a point-in-time copy of the scan state.
type Snapshot struct {
	Done      int
	Total     int
	LastN     int
	Survivors int64
	Elapsed   time.Duration
}

// NewProgress creates progress state for a scan of total values of n.
func NewProgress(total int) *Progress {
	return &Progress{total: total, startedAt: time.Now()}
}

// Observe records one finished n and its survivor count.
func (p *Progress) Observe(n, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if n > p.lastN {
		p.lastN = n
	}
	p.survivors += int64(count)
}

// Snapshot returns a consistent copy of the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Done:      p.done,
		Total:     p.total,
		LastN:     p.lastN,
		Survivors: p.survivors,
		Elapsed:   time.Since(p.startedAt),
	}
}

// Percent returns scan completion in [0, 100].
func (s Snapshot) Percent() float64 {
	if s.Total == 0 {
		return 100
	}
	return float64(s.Done) / float64(s.Total) * 100
}
