package ratelimit

import (
	"sync"
	"time"
)

// Pacer inserts courtesy pauses into a sequential download loop
type Pacer interface {
	// Tick records one completed download, sleeping if a pause is due
	Tick()
	// Reset resets the pacer state
	Reset()
}

// CourtesyPacer pauses for a fixed duration after every N completed
// downloads. An interval of zero disables pacing.
type CourtesyPacer struct {
	every int
	pause time.Duration
	count int
	sleep func(time.Duration)
	mu    sync.Mutex
}

// NewCourtesyPacer creates a pacer that sleeps for pause after every
// `every` ticks.
func NewCourtesyPacer(every int, pause time.Duration) *CourtesyPacer {
	return &CourtesyPacer{
		every: every,
		pause: pause,
		sleep: time.Sleep,
	}
}

// Tick records a completed download and sleeps when the interval is reached
func (p *CourtesyPacer) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.every <= 0 || p.pause <= 0 {
		return
	}

	p.count++
	if p.count%p.every == 0 {
		p.sleep(p.pause)
	}
}

// Reset clears the tick counter
func (p *CourtesyPacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.count = 0
}
