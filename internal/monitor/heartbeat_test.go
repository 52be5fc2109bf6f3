package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeartbeatGate_ShouldBeat(t *testing.T) {
	gate := NewHeartbeatGate(2 * time.Hour)
	now := time.Unix(100000, 0)

	t.Run("never beaten", func(t *testing.T) {
		assert.True(t, gate.ShouldBeat(0, now))
	})

	t.Run("just beaten", func(t *testing.T) {
		assert.False(t, gate.ShouldBeat(now.Unix(), now))
	})

	t.Run("one second short of the interval", func(t *testing.T) {
		last := now.Add(-2*time.Hour + time.Second).Unix()
		assert.False(t, gate.ShouldBeat(last, now))
	})

	t.Run("exactly at the interval", func(t *testing.T) {
		last := now.Add(-2 * time.Hour).Unix()
		assert.True(t, gate.ShouldBeat(last, now))
	})

	t.Run("past the interval", func(t *testing.T) {
		last := now.Add(-3 * time.Hour).Unix()
		assert.True(t, gate.ShouldBeat(last, now))
	})
}
