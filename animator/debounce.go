package animator

import "time"

// Debouncer is a cancel-and-reschedule timer polled from the frame loop.
// Every Arm starts a new generation and supersedes the previous one, so at
// most one deadline is pending and only the latest generation can fire.
type Debouncer struct {
	wait     time.Duration
	gen      uint64
	pending  bool
	deadline time.Time
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Arm (re)schedules the timer to fire wait after now and returns the
// generation that now owns it.
func (d *Debouncer) Arm(now time.Time) uint64 {
	d.gen++
	d.pending = true
	d.deadline = now.Add(d.wait)
	return d.gen
}

// Fire consumes the pending timer if gen is still the current generation.
// A superseded generation is ignored.
func (d *Debouncer) Fire(gen uint64) bool {
	if !d.pending || gen != d.gen {
		return false
	}
	d.pending = false
	return true
}

// Poll fires the pending timer once its deadline has been reached.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	return d.Fire(d.gen)
}

func (d *Debouncer) Pending() bool {
	return d.pending
}

// Deadline is only meaningful while Pending is true.
func (d *Debouncer) Deadline() time.Time {
	return d.deadline
}

func (d *Debouncer) generation() uint64 {
	return d.gen
}
