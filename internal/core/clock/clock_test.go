package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_Advance(t *testing.T) {
	t.Run("runs due tasks in order", func(t *testing.T) {
		m := NewManual()
		var got []string

		m.AfterFunc(2*time.Second, func() { got = append(got, "b") })
		m.AfterFunc(1*time.Second, func() { got = append(got, "a") })
		m.AfterFunc(2*time.Second, func() { got = append(got, "c") })

		m.Advance(2 * time.Second)

		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Equal(t, 0, m.Pending())
		assert.Equal(t, 2*time.Second, m.Now())
	})

	t.Run("leaves future tasks pending", func(t *testing.T) {
		m := NewManual()
		fired := false
		m.AfterFunc(5*time.Second, func() { fired = true })

		m.Advance(4999 * time.Millisecond)
		assert.False(t, fired)
		assert.Equal(t, 1, m.Pending())

		m.Advance(time.Millisecond)
		assert.True(t, fired)
	})

	t.Run("canceled tasks never fire", func(t *testing.T) {
		m := NewManual()
		fired := false
		cancel := m.AfterFunc(time.Second, func() { fired = true })

		cancel()
		cancel()
		m.Advance(time.Minute)

		assert.False(t, fired)
		assert.Equal(t, 0, m.Pending())
	})

	t.Run("tasks scheduled while advancing", func(t *testing.T) {
		m := NewManual()
		var got []time.Duration

		m.AfterFunc(time.Second, func() {
			got = append(got, m.Now())
			m.AfterFunc(time.Second, func() { got = append(got, m.Now()) })
		})

		m.Advance(3 * time.Second)

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, got)
	})
}

func TestReal_Cancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	cancel := Real{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })
	cancel()

	select {
	case <-fired:
		t.Fatal("canceled task fired")
	default:
	}
}
