package viewmodel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestDebouncer_CollapsesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Value

	for _, q := range []string{"a", "al", "ali"} {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(q)
		})
		time.Sleep(5 * time.Millisecond)
	}
	d.Wait()

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "ali", last.Load())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Wait()
	d.Trigger(func() { calls.Add(1) })
	d.Wait()
	assert.EqualValues(t, 2, calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Wait()
	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, calls.Load())
	d.Stop()
}
