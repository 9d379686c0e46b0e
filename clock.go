package panes

import (
	"fmt"
	"time"
)

// DefaultRefreshRate is the refresh rate used when none is configured.
const DefaultRefreshRate = 60

// FrameInterval returns the redraw period for rate frames per second:
// 1000/rate milliseconds, truncated.
func FrameInterval(rate int) (time.Duration, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	return time.Duration(1000/rate) * time.Millisecond, nil
}

// FrameClock requests redraws at a fixed rate. It owns no goroutine: the
// host pump calls Advance from its UI thread. Requests are advisory and
// missed deadlines are not caught up.
type FrameClock struct {
	rate     int
	interval time.Duration
	request  func()
	running  bool
	last     time.Time
	ticks    uint64
}

// NewFrameClock returns a stopped clock calling request every interval.
func NewFrameClock(rate int, request func()) (*FrameClock, error) {
	interval, err := FrameInterval(rate)
	if err != nil {
		return nil, err
	}
	return &FrameClock{rate: rate, interval: interval, request: request}, nil
}

// Rate returns the refresh rate.
func (c *FrameClock) Rate() int { return c.rate }

// Interval returns the redraw period.
func (c *FrameClock) Interval() time.Duration { return c.interval }

// Running reports whether the clock is started.
func (c *FrameClock) Running() bool { return c.running }

// Ticks counts issued requests.
func (c *FrameClock) Ticks() uint64 { return c.ticks }

// Start begins ticking; the first request is due one interval after now.
func (c *FrameClock) Start(now time.Time) {
	c.running = true
	c.last = now
}

// Stop halts ticking. A stopped clock never calls request.
func (c *FrameClock) Stop() {
	c.running = false
}

// SetRate changes the rate. The next deadline moves with it.
func (c *FrameClock) SetRate(rate int) error {
	interval, err := FrameInterval(rate)
	if err != nil {
		return err
	}
	c.rate = rate
	c.interval = interval
	return nil
}

// Deadline returns when the next request is due.
func (c *FrameClock) Deadline() time.Time {
	return c.last.Add(c.interval)
}

// Until returns how long the pump may sleep before the next request is
// due, or zero if it is due already.
func (c *FrameClock) Until(now time.Time) time.Duration {
	return max(c.Deadline().Sub(now), 0)
}

// Advance issues a request if the clock is running and now has reached
// the deadline. It reports whether it did.
func (c *FrameClock) Advance(now time.Time) bool {
	if !c.running || now.Before(c.Deadline()) {
		return false
	}
	c.last = now
	c.ticks++
	if c.request != nil {
		c.request()
	}
	return true
}
