package watchdog

import (
	"sync"
	"time"
)

// Silence fires a callback once when no user activity is observed before a
// deadline. Only one timer is pending at a time.
type Silence struct {
	mu        sync.Mutex
	timer     *time.Timer
	gen       uint64
	userSpoke bool
}

func NewSilence() *Silence {
	return &Silence{}
}

// Arm cancels any pending timer and schedules onFire after d.
func (s *Silence) Arm(d time.Duration, onFire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.userSpoke = false
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if gen != s.gen || s.userSpoke {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.gen++
		s.mu.Unlock()

		onFire()
	})
}

// Cancel is idempotent.
func (s *Silence) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// NotifyUserActivity records that the user spoke and cancels the pending timer.
func (s *Silence) NotifyUserActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSpoke = true
	s.stopLocked()
}

// ResetActivity clears the spoke flag for a new turn window.
func (s *Silence) ResetActivity() {
	s.mu.Lock()
	s.userSpoke = false
	s.mu.Unlock()
}

func (s *Silence) UserSpoke() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSpoke
}

// Pending reports whether a timer is armed and has not fired.
func (s *Silence) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Silence) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	// a callback already past Stop sees a stale generation and returns
	s.gen++
}
