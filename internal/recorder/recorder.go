// Package recorder implements the elapsed-time display for in-progress
// sessions (a swim or meditation being timed live). The ticker only drives
// the readout; the scoring engine never depends on it.
package recorder

import (
	"sync"
	"time"
)

// Session is a cancellable elapsed-time counter with one-second updates.
type Session struct {
	mu      sync.Mutex
	started time.Time
	stopped time.Time
	ticker  *time.Ticker
	done    chan struct{}
	running bool
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// Start begins timing and invokes onTick with the elapsed duration every
// second until Stop. Starting a running session restarts it.
func (s *Session) Start(onTick func(elapsed time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.stopLocked()
	}

	s.started = time.Now()
	s.stopped = time.Time{}
	s.ticker = time.NewTicker(time.Second)
	s.done = make(chan struct{})
	s.running = true

	go func(ticker *time.Ticker, done chan struct{}, started time.Time) {
		for {
			select {
			case <-done:
				return
			case t := <-ticker.C:
				if onTick != nil {
					onTick(t.Sub(started))
				}
			}
		}
	}(s.ticker, s.done, s.started)
}

// Stop halts the ticker and freezes the elapsed time.
func (s *Session) Stop() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return s.elapsedLocked()
}

func (s *Session) stopLocked() {
	if !s.running {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.stopped = time.Now()
	s.running = false
}

// Elapsed returns time since Start, or the frozen value after Stop.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedLocked()
}

func (s *Session) elapsedLocked() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	if !s.stopped.IsZero() {
		return s.stopped.Sub(s.started)
	}
	return time.Since(s.started)
}

// Running reports whether the session is currently timing.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Minutes is the elapsed time in whole-number minutes, the unit the
// duration activities record in.
func (s *Session) Minutes() float64 {
	return float64(int(s.Elapsed().Seconds())) / 60
}
