package render

import (
	"sync"
	"time"
)

// Loop drives a frame callback at a fixed rate. It is the only
// scheduling the core owns: callers start it against a draw function
// and hold the loop as the cancellation handle. Stop is idempotent,
// returns once the callback goroutine has exited, and releases the
// ticker immediately.
type Loop struct {
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewLoop creates a loop targeting fps frames per second
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = 30
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		stopChan: make(chan struct{}),
	}
}

// Start begins calling draw with the elapsed animation clock in
// milliseconds. Start may be called once per loop.
func (l *Loop) Start(draw func(t float64)) {
	if l.started {
		return
	}
	l.started = true

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		epoch := time.Now()
		for {
			select {
			case <-l.stopChan:
				return
			case now := <-ticker.C:
				draw(float64(now.Sub(epoch).Microseconds()) / 1000.0)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight frame to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}
