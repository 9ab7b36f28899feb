package session

import "time"

// Timer measures wall-clock run time.
type Timer struct {
	now     func() time.Time
	running bool
	start   time.Time
	elapsed float64
}

func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

func (t *Timer) Start() {
	t.running = true
	t.start = t.now()
	t.elapsed = 0
}

// Stop freezes the timer and returns the elapsed seconds.
func (t *Timer) Stop() float64 {
	if t.running {
		t.elapsed = t.now().Sub(t.start).Seconds()
		t.running = false
	}
	return t.elapsed
}

// Elapsed is the live time while running, otherwise the time at Stop.
func (t *Timer) Elapsed() float64 {
	if t.running {
		return t.now().Sub(t.start).Seconds()
	}
	return t.elapsed
}

func (t *Timer) Running() bool {
	return t.running
}
