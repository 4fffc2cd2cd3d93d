// Package clock paces the simulation loop against the wall clock.
package clock

import "time"

// Pacer measures the elapsed time between frames and sizes the wait that
// keeps the loop near its target rate. A slow frame is never compensated by
// speeding up: the next frame simply starts immediately and sees a larger
// delta.
type Pacer struct {
	interval   time.Duration
	now        func() time.Time
	last       time.Time // Start of the previous frame
	frameStart time.Time
	started    bool
}

// NewPacer creates a pacer targeting rate frames per second.
// Non-positive rates fall back to 60.
func NewPacer(rate int) *Pacer {
	return NewPacerWithClock(rate, time.Now)
}

// NewPacerWithClock creates a pacer that reads time from now.
func NewPacerWithClock(rate int, now func() time.Time) *Pacer {
	if rate <= 0 {
		rate = 60
	}
	return &Pacer{
		interval: time.Second / time.Duration(rate),
		now:      now,
	}
}

// Interval returns the target frame interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Begin marks the start of a frame and returns the wall-clock time elapsed
// since the previous frame started. The first frame sees zero.
func (p *Pacer) Begin() time.Duration {
	t := p.now()
	p.frameStart = t
	if !p.started {
		p.started = true
		p.last = t
		return 0
	}
	delta := t.Sub(p.last)
	p.last = t
	if delta < 0 {
		// Wall clock stepped backwards
		return 0
	}
	return delta
}

// Wait returns how long to sleep before the next frame:
// max(0, interval - time spent since Begin). Call it at the end of the
// simulation step. Rendering is not measured here: the returned wait is
// handed to a timer that runs while the frame is drawn, so render time is
// absorbed by the wait rather than added to it. Begin still reports the
// full wall-clock period, render included, as the next delta.
func (p *Pacer) Wait() time.Duration {
	elapsed := p.now().Sub(p.frameStart)
	if elapsed >= p.interval {
		return 0
	}
	return p.interval - elapsed
}

// Reset forgets the previous frame so the next Begin returns zero.
// Called when the program resumes from a terminal suspend.
func (p *Pacer) Reset() {
	p.started = false
}
