package funnel

import (
	"context"
	"sync"
	"time"
)

// AvailabilityState tracks the asynchronous site-slug uniqueness check.
// Submission stays blocked while a check is in flight or the candidate is
// taken; only "available" (or an untouched field) releases the form.
type AvailabilityState string

const (
	AvailabilityIdle        AvailabilityState = "idle"
	AvailabilityChecking    AvailabilityState = "checking"
	AvailabilityAvailable   AvailabilityState = "available"
	AvailabilityUnavailable AvailabilityState = "unavailable"
)

// CheckFunc answers whether a candidate site slug is still free.
type CheckFunc func(ctx context.Context, siteSlug string) (bool, error)

// SiteSlugChecker debounces keystrokes on the optional site-slug field.
// Each input replaces the pending debounce timer, so only the last
// keystroke's check fires; results for stale candidates are discarded.
type SiteSlugChecker struct {
	deb   *Debouncer
	check CheckFunc

	mu        sync.Mutex
	candidate string
	state     AvailabilityState
}

func NewSiteSlugChecker(debounce time.Duration, check CheckFunc) *SiteSlugChecker {
	return &SiteSlugChecker{
		deb:   NewDebouncer(debounce),
		check: check,
		state: AvailabilityIdle,
	}
}

// OnInput registers a keystroke. An empty candidate resets the checker (the
// field is optional).
func (s *SiteSlugChecker) OnInput(ctx context.Context, candidate string) {
	s.mu.Lock()
	s.candidate = candidate
	if candidate == "" {
		s.state = AvailabilityIdle
		s.mu.Unlock()
		s.deb.Stop()
		return
	}
	s.state = AvailabilityChecking
	s.mu.Unlock()

	s.deb.Trigger(func() {
		available, err := s.check(ctx, candidate)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.candidate != candidate {
			// Another keystroke arrived meanwhile; its own check decides.
			return
		}
		if err != nil || !available {
			s.state = AvailabilityUnavailable
			return
		}
		s.state = AvailabilityAvailable
	})
}

func (s *SiteSlugChecker) State() AvailabilityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// BlocksSubmission reports whether the form must stay unsubmittable:
// a check in flight or an unavailable candidate both block.
func (s *SiteSlugChecker) BlocksSubmission() bool {
	switch s.State() {
	case AvailabilityChecking, AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

// Stop cancels any pending debounce timer. Called on form teardown.
func (s *SiteSlugChecker) Stop() {
	s.deb.Stop()
}
