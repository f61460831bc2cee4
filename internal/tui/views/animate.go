package views

import (
	"sync"
	"time"
)

// Queue schedules fn on the UI goroutine and redraws afterwards. It is
// satisfied by (*tview.Application).QueueUpdateDraw wrapped in a closure.
type Queue func(fn func())

// animator calls step on the UI goroutine at a fixed interval while running.
// halt does not wait for the ticker goroutine, so one queued step may still
// run after it returns.
type animator struct {
	interval time.Duration
	queue    Queue
	step     func()

	mu   sync.Mutex
	stop chan struct{}
}

func newAnimator(interval time.Duration, queue Queue, step func()) *animator {
	return &animator{interval: interval, queue: queue, step: step}
}

func (a *animator) start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil || a.queue == nil {
		return
	}
	a.stop = make(chan struct{})
	go a.loop(a.stop)
}

func (a *animator) halt() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
}

func (a *animator) running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

func (a *animator) loop(stop chan struct{}) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.queue(a.step)
		case <-stop:
			return
		}
	}
}
