package app

import (
	"sync"
	"time"
)

// Timer is the single rest countdown.
type Timer interface {
	// Start begins a countdown, superseding any running one.
	Start(exerciseID string, seconds int)
	// Adjust shifts the running countdown and its base by delta seconds and
	// returns the new base.
	Adjust(delta int) (base int, ok bool)
	Stop()
	Status() *RestStatus
}

// RestStatus describes the running countdown.
type RestStatus struct {
	ExerciseID string `json:"exerciseId"`
	Seconds    int    `json:"seconds"`
	Remaining  int    `json:"remaining"`
}

// RestTimer implements Timer with time.AfterFunc.
type RestTimer struct {
	mu       sync.Mutex
	onExpire func(exerciseID string)
	now      func() time.Time

	timer      *time.Timer
	gen        uint64
	exerciseID string
	base       int
	ends       time.Time
}

// NewRestTimer returns an idle timer. onExpire may be nil and runs on its own
// goroutine.
func NewRestTimer(onExpire func(exerciseID string)) *RestTimer {
	return &RestTimer{onExpire: onExpire, now: time.Now}
}

func (r *RestTimer) Start(exerciseID string, seconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	r.exerciseID = exerciseID
	r.base = seconds
	r.schedule(time.Duration(seconds) * time.Second)
}

func (r *RestTimer) Adjust(delta int) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer == nil {
		return 0, false
	}
	remaining := r.ends.Sub(r.now()) + time.Duration(delta)*time.Second
	if remaining < 0 {
		remaining = 0
	}
	r.base = max(0, r.base+delta)
	r.schedule(remaining)
	return r.base, true
}

func (r *RestTimer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
}

func (r *RestTimer) Status() *RestStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer == nil {
		return nil
	}
	left := r.ends.Sub(r.now())
	if left < 0 {
		left = 0
	}
	return &RestStatus{
		ExerciseID: r.exerciseID,
		Seconds:    r.base,
		Remaining:  int((left + time.Second - 1) / time.Second),
	}
}

// schedule replaces the pending expiry. Callers hold mu.
func (r *RestTimer) schedule(d time.Duration) {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.gen++
	gen := r.gen
	r.ends = r.now().Add(d)
	r.timer = time.AfterFunc(d, func() { r.expire(gen) })
}

func (r *RestTimer) expire(gen uint64) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	id := r.exerciseID
	r.clear()
	cb := r.onExpire
	r.mu.Unlock()
	if cb != nil {
		cb(id)
	}
}

func (r *RestTimer) clear() {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.gen++
	r.timer = nil
	r.exerciseID = ""
	r.base = 0
}
