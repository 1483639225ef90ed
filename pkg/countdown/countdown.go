// Package countdown drives the order-confirmation auto-redirect: a fixed
// number of ticks that fire an action on expiry unless the user steps in
// first.
package countdown

import (
	"sync"
	"time"
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateDone
)

type Countdown struct {
	mu        sync.Mutex
	ticks     int
	remaining int
	interval  time.Duration
	action    func()
	st        state
	stop      chan struct{}
}

// New prepares a countdown of ticks intervals that invokes action on
// expiry. The action is invoked at most once, from the countdown's own
// goroutine (on expiry) or from the caller (on Complete).
func New(ticks int, interval time.Duration, action func()) *Countdown {
	return &Countdown{
		ticks:     ticks,
		remaining: ticks,
		interval:  interval,
		action:    action,
		stop:      make(chan struct{}),
	}
}

func (c *Countdown) Start() {
	c.mu.Lock()
	if c.st != stateIdle {
		c.mu.Unlock()
		return
	}
	c.st = stateRunning
	c.mu.Unlock()

	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if c.st != stateRunning {
				c.mu.Unlock()
				return
			}
			c.remaining--
			if c.remaining > 0 {
				c.mu.Unlock()
				continue
			}
			c.st = stateDone
			c.mu.Unlock()
			c.action()
			return
		case <-c.stop:
			return
		}
	}
}

// Cancel stops the countdown without firing the action; the page stays
// idle. Cancelling after expiry is a no-op.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st != stateRunning {
		return
	}
	c.st = stateDone
	close(c.stop)
}

// Complete stops the countdown and fires the action immediately, as when
// the user clicks through before expiry. Completing after expiry or
// cancellation is a no-op.
func (c *Countdown) Complete() {
	c.mu.Lock()
	if c.st != stateRunning {
		c.mu.Unlock()
		return
	}
	c.st = stateDone
	close(c.stop)
	c.mu.Unlock()

	c.action()
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Expired reports whether the countdown has finished, by expiry,
// cancellation or completion.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st == stateDone
}
