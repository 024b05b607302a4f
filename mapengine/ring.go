package mapengine

import (
	"sync"
	"time"
)

// Ring animation constants: the click feedback circle starts small and
// expands by a fixed step per tick until it hits the maximum radius.
const (
	ringStartRadius = 10.0
	ringStep        = 3.0
	ringMaxRadius   = 50.0
	ringTick        = 30 * time.Millisecond
)

// RingPhase is the animation's lifecycle state. The popup content is
// revealed only once the ring has finished expanding.
type RingPhase int

const (
	RingIdle RingPhase = iota
	RingAnimating
	RingRevealed
)

// RingAnimator drives the expanding-ring click feedback. At most one
// animation runs at a time: starting a new one cancels the previous
// timer first, and cancellation is never an error. Safe for concurrent
// use.
type RingAnimator struct {
	mu     sync.Mutex
	phase  RingPhase
	radius float64
	cancel chan struct{}
	tick   time.Duration
}

func NewRingAnimator() *RingAnimator {
	return &RingAnimator{tick: ringTick}
}

// Start kicks off a fresh expansion and invokes onComplete exactly once
// when the radius reaches its maximum. Any in-flight animation is
// canceled before the new one begins.
func (r *RingAnimator) Start(onComplete func()) {
	r.mu.Lock()
	r.stopLocked()

	cancel := make(chan struct{})
	r.cancel = cancel
	r.phase = RingAnimating
	r.radius = ringStartRadius
	tick := r.tick
	r.mu.Unlock()

	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				if r.grow(cancel) {
					if onComplete != nil {
						onComplete()
					}
					return
				}
			}
		}
	}()
}

// grow advances the radius one step. Returns true when the animation
// just completed on this tick.
func (r *RingAnimator) grow(cancel chan struct{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A newer animation replaced this one between ticks.
	if r.cancel != cancel {
		return false
	}

	r.radius += ringStep
	if r.radius >= ringMaxRadius {
		r.radius = ringMaxRadius
		r.phase = RingRevealed
		r.cancel = nil
		return true
	}
	return false
}

// Cancel stops any in-flight animation and resets the radius. Calling it
// with nothing running is a no-op.
func (r *RingAnimator) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.phase = RingIdle
	r.radius = 0
}

// stopLocked closes the active cancel channel, if any. Caller holds mu.
func (r *RingAnimator) stopLocked() {
	if r.cancel != nil {
		close(r.cancel)
		r.cancel = nil
	}
}

func (r *RingAnimator) Phase() RingPhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *RingAnimator) Radius() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.radius
}
