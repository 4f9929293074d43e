package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker guards a single downstream dependency. It opens after a
// run of consecutive failures and, once the cooldown elapses, lets exactly
// one probe request through. A successful probe closes the breaker again,
// a failed probe restarts the cooldown.
//
// The open/half-open distinction is derived from openedAt rather than
// stored, so there is no separate state transition to keep in sync.
type CircuitBreaker struct {
	mu sync.Mutex

	failureLimit int
	cooldown     time.Duration

	failures      int
	openedAt      time.Time
	probeInFlight bool
	now           func() time.Time
}

func NewCircuitBreaker(failureLimit int, cooldown time.Duration) *CircuitBreaker {
	if failureLimit < 1 {
		failureLimit = 1
	}
	if cooldown <= 0 {
		cooldown = 15 * time.Second
	}

	return &CircuitBreaker{
		failureLimit: failureLimit,
		cooldown:     cooldown,
		now:          time.Now,
	}
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.openedAt.IsZero():
		return nil
	case b.now().Sub(b.openedAt) < b.cooldown:
		return ErrCircuitOpen
	case b.probeInFlight:
		return ErrCircuitOpen
	default:
		b.probeInFlight = true
		return nil
	}
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.openedAt = time.Time{}
	b.probeInFlight = false
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.openedAt.IsZero() {
		// failed probe, or a straggler that raced the open transition:
		// restart the cooldown either way.
		b.openedAt = b.now()
		b.probeInFlight = false
		return
	}

	b.failures++
	if b.failures >= b.failureLimit {
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.openedAt.IsZero():
		return CircuitStateClosed
	case b.now().Sub(b.openedAt) >= b.cooldown:
		return CircuitStateHalfOpen
	default:
		return CircuitStateOpen
	}
}
