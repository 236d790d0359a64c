package mirror

import (
	"sync"
	"time"
)

// Debouncer delays a function per key. Re-arming a key before its timer
// fires replaces the pending call, so rapid edits to one note collapse into
// a single flush.
type Debouncer struct {
	mutex    sync.Mutex
	timers   map[string]*time.Timer
	duration time.Duration
}

func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		timers:   make(map[string]*time.Timer),
		duration: duration,
	}
}

// Debounce schedules fn after the quiet period, cancelling any pending call
// for the same key. A non-positive duration runs fn immediately.
func (d *Debouncer) Debounce(key string, fn func()) {
	if d.duration <= 0 {
		fn()
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if timer, exists := d.timers[key]; exists {
		timer.Stop()
	}

	d.timers[key] = time.AfterFunc(d.duration, func() {
		d.mutex.Lock()
		delete(d.timers, key)
		d.mutex.Unlock()
		fn()
	})
}

// Cancel drops a pending call for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if timer, exists := d.timers[key]; exists {
		timer.Stop()
		delete(d.timers, key)
	}
}

// CancelAll drops every pending call. Used on shutdown.
func (d *Debouncer) CancelAll() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
