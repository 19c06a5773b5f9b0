package viewmodel

import (
	"sync"
	"time"
)

// Debouncer откладывает вызов до тех пор, пока поток событий не затихнет на delay.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	// pending учитывает запланированный и выполняющийся вызов.
	pending sync.WaitGroup
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger планирует fn; предыдущий ещё не начавшийся вызов отменяется.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.pending.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.pending.Done()
		fn()
	})
}

// Stop отменяет запланированный вызов. Уже начавшийся вызов не прерывается.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.pending.Done()
	}
	d.timer = nil
}

// Wait дожидается запланированного и выполняющегося вызовов.
func (d *Debouncer) Wait() {
	d.pending.Wait()
}
