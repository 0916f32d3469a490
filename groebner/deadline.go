package groebner

import "time"

// Deadline is the cooperative cancellation token the Buchberger main loop
// polls once per pair extraction and once per inner reduction step. A nil
// *Deadline, or one built with ms <= 0, never expires.
type Deadline struct {
	at      time.Time
	has     bool
	stopped bool
}

// NewDeadline returns a Deadline that expires ms milliseconds from now.
// ms <= 0 means no deadline at all.
func NewDeadline(ms int) *Deadline {
	if ms <= 0 {
		return &Deadline{}
	}
	return &Deadline{at: time.Now().Add(time.Duration(ms) * time.Millisecond), has: true}
}

// Expired reports whether the deadline has passed, or Stop has been called.
func (d *Deadline) Expired() bool {
	if d == nil {
		return false
	}
	if d.stopped {
		return true
	}
	return d.has && time.Now().After(d.at)
}

// Stop forces Expired to return true from now on, the boolean
// stop_requested half of the cooperative cancellation contract.
func (d *Deadline) Stop() {
	if d != nil {
		d.stopped = true
	}
}
