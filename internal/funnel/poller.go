package funnel

import (
	"context"
	"sync"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/logger"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 10 * time.Minute
)

// StatusFunc queries the current charge status.
type StatusFunc func(ctx context.Context) (entities.ChargeStatus, error)

// StatusPoller drives the pending->confirmed/failed state machine by
// querying charge status at a fixed interval until a terminal status or the
// timeout is reached. No backoff is applied.
type StatusPoller struct {
	interval time.Duration
	timeout  time.Duration
	log      logger.Logger
}

func NewStatusPoller(interval, timeout time.Duration, log logger.Logger) *StatusPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StatusPoller{interval: interval, timeout: timeout, log: log}
}

// Handle is the cancellable polling task returned by Start. The owner must
// call Stop on teardown so no timer outlives the funnel session; Stop is
// idempotent and also implied by a terminal transition.
type Handle struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu    sync.Mutex
	final entities.ChargeStatus
}

// Stop cancels polling. Safe to call multiple times and after completion.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// Done is closed once polling reached a terminal state or was stopped.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Final returns the terminal status, or empty if polling was cancelled
// before reaching one.
func (h *Handle) Final() entities.ChargeStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.final
}

// Start begins polling and returns immediately. onTransition is invoked for
// every observed status, terminal ones included; after a terminal status no
// further queries are made. At most one status query is outstanding at any
// moment: ticks that arrive while a query is in flight are skipped.
func (p *StatusPoller) Start(ctx context.Context, check StatusFunc, onTransition func(entities.ChargeStatus)) *Handle {
	h := &Handle{stop: make(chan struct{}), done: make(chan struct{})}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		start := time.Now()
		inFlight := false
		results := make(chan entities.ChargeStatus, 1)

		finish := func(status entities.ChargeStatus) {
			h.mu.Lock()
			h.final = status
			h.mu.Unlock()
			if onTransition != nil {
				onTransition(status)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-h.stop:
				return
			case <-ticker.C:
				// Timeout is checked before the in-flight skip so a
				// hanging status query cannot defer it.
				if time.Since(start) >= p.timeout {
					p.log.Warnf("polling timed out after %s", p.timeout)
					finish(entities.ChargeStatusFailed)
					return
				}
				if inFlight {
					p.log.Debugf("status query still in flight, skipping tick")
					continue
				}
				inFlight = true
				go func() {
					status, err := check(ctx)
					if err != nil {
						p.log.Errorf("status query failed: %v", err)
						status = entities.ChargeStatusPending
					}
					results <- status
				}()
			case status := <-results:
				inFlight = false
				if status.Terminal() {
					finish(status)
					return
				}
				if onTransition != nil {
					onTransition(status)
				}
				if time.Since(start) >= p.timeout {
					p.log.Warnf("polling timed out after %s", p.timeout)
					finish(entities.ChargeStatusFailed)
					return
				}
			}
		}
	}()

	return h
}
