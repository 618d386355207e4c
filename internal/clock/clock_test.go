package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	t.Run("fires only after the deadline", func(t *testing.T) {
		m := NewManual()
		fired := false
		m.AfterFunc(time.Second, func() { fired = true })

		m.Advance(999 * time.Millisecond)
		assert.False(t, fired)
		assert.Equal(t, 1, m.Pending())

		m.Advance(time.Millisecond)
		assert.True(t, fired)
		assert.Zero(t, m.Pending())
	})

	t.Run("fires in deadline order", func(t *testing.T) {
		m := NewManual()
		var order []string
		m.AfterFunc(2*time.Second, func() { order = append(order, "b") })
		m.AfterFunc(time.Second, func() { order = append(order, "a") })
		m.AfterFunc(2*time.Second, func() { order = append(order, "c") })

		m.Advance(5 * time.Second)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		m := NewManual()
		fired := false
		timer := m.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())
		m.Advance(time.Minute)
		assert.False(t, fired)
	})

	t.Run("stop after firing reports false", func(t *testing.T) {
		m := NewManual()
		timer := m.AfterFunc(0, func() {})
		m.Advance(0)
		assert.False(t, timer.Stop())
	})

	t.Run("callbacks may schedule more work", func(t *testing.T) {
		m := NewManual()
		count := 0
		m.AfterFunc(time.Second, func() {
			count++
			m.AfterFunc(time.Second, func() { count++ })
		})

		m.Advance(time.Second)
		assert.Equal(t, 1, count)
		m.Advance(time.Second)
		assert.Equal(t, 2, count)
	})
}

func TestReal(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
}
