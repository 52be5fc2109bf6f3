package monitor

import "time"

// HeartbeatGate decides, independently of content changes, whether a
// liveness ping is due. It is evaluated once per invocation, after the
// fetch loop, so heartbeat timing reflects a completed cycle.
type HeartbeatGate struct {
	interval time.Duration
}

// NewHeartbeatGate creates a gate with the given minimum interval between
// liveness pings.
func NewHeartbeatGate(interval time.Duration) *HeartbeatGate {
	return &HeartbeatGate{interval: interval}
}

// ShouldBeat reports whether at least the configured interval has passed
// since the last heartbeat. lastBeatTS is a Unix timestamp; zero means a
// heartbeat was never sent.
func (hg *HeartbeatGate) ShouldBeat(lastBeatTS int64, now time.Time) bool {
	return now.Unix()-lastBeatTS >= int64(hg.interval/time.Second)
}
