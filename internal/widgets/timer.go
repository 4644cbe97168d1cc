// Package widgets holds the state behind the exam-taking controls: the
// elapsed timer, the progress bar and the previous/next/finish buttons.
package widgets

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is the part of time.Ticker the timer needs
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds the ticker driving one run of the timer
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct {
	t *time.Ticker
}

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Timer counts elapsed seconds while running. At most one ticking goroutine
// exists at a time; pausing or stopping waits for it to exit, so no tick is
// delivered after Toggle or Stop returns.
//
// The tick callback runs on the ticking goroutine and must not call Toggle,
// Start or Stop synchronously.
type Timer struct {
	ctl sync.Mutex // serialises Start, Toggle and Stop

	mu      sync.Mutex
	elapsed int
	paused  bool

	onTick    atomic.Pointer[func(elapsed int)]
	newTicker TickerFactory

	stop chan struct{}
	done chan struct{}
}

// NewTimer returns a paused timer. A nil factory uses real one second ticks.
func NewTimer(newTicker TickerFactory) *Timer {
	if newTicker == nil {
		newTicker = NewStdTicker
	}
	return &Timer{
		paused:    true,
		newTicker: newTicker,
	}
}

// SetOnTick replaces the callback; the running loop picks it up on the next
// tick.
func (t *Timer) SetOnTick(fn func(elapsed int)) {
	if fn == nil {
		t.onTick.Store(nil)
		return
	}
	t.onTick.Store(&fn)
}

// Start resumes counting if the timer is paused.
func (t *Timer) Start() {
	t.ctl.Lock()
	defer t.ctl.Unlock()

	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
	t.startLoop()
}

// Toggle flips between paused and running and reports whether the timer is
// now paused.
func (t *Timer) Toggle() bool {
	t.ctl.Lock()
	defer t.ctl.Unlock()

	t.mu.Lock()
	t.paused = !t.paused
	paused := t.paused
	t.mu.Unlock()

	if paused {
		t.stopLoop()
	} else {
		t.startLoop()
	}
	return paused
}

// Stop tears the ticking loop down and leaves the timer paused.
func (t *Timer) Stop() {
	t.ctl.Lock()
	defer t.ctl.Unlock()

	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
	t.stopLoop()
}

func (t *Timer) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

func (t *Timer) Display() string {
	return FormatElapsed(t.Elapsed())
}

// startLoop requires ctl.
func (t *Timer) startLoop() {
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.newTicker(time.Second), t.stop, t.done)
}

// stopLoop requires ctl.
func (t *Timer) stopLoop() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}

func (t *Timer) run(ticker Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
		}

		// stop wins over a tick that raced with it
		select {
		case <-stop:
			return
		default:
		}

		t.mu.Lock()
		t.elapsed++
		elapsed := t.elapsed
		t.mu.Unlock()

		if fn := t.onTick.Load(); fn != nil {
			(*fn)(elapsed)
		}
	}
}

// FormatElapsed renders seconds as H:MM:SS from one hour on, M:SS below.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
