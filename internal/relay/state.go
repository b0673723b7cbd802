package relay

import (
	"sync"
	"sync/atomic"
	"time"

	"ai-interview-be/pkg/transcript"
	"ai-interview-be/pkg/watchdog"
)

// State is the in-memory state of one live interview. It is owned by a single
// SessionRelay and only persisted at finalization.
type State struct {
	active     atomic.Bool
	mu         sync.RWMutex
	startedAt  time.Time
	Transcript *transcript.Accumulator
	Watchdog   *watchdog.Silence
}

func NewState() *State {
	return &State{
		Transcript: transcript.NewAccumulator(),
		Watchdog:   watchdog.NewSilence(),
	}
}

// Start records the session clock origin and marks the state active.
func (s *State) Start(now time.Time) {
	s.mu.Lock()
	s.startedAt = now
	s.mu.Unlock()
	s.active.Store(true)
}

func (s *State) IsActive() bool {
	return s.active.Load()
}

// Deactivate reports whether this call flipped the state.
func (s *State) Deactivate() bool {
	return s.active.CompareAndSwap(true, false)
}

func (s *State) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.startedAt.IsZero()
}

// Elapsed is the offset in seconds since Start, or 0 before it.
func (s *State) Elapsed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startedAt.IsZero() {
		return 0
	}
	return time.Since(s.startedAt).Seconds()
}

func (s *State) UserSpoke() bool {
	return s.Watchdog.UserSpoke()
}
