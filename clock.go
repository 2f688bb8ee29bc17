package melodyplayer

import "time"

// wallClock is the default elapsed-time source: milliseconds since the
// player was constructed, truncated to uint32, so the counter wraps
// after ~49.7 days. All elapsed computations downstream subtract these
// readings as uint32, which stays correct across the wrap.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) NowMs() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *wallClock) SleepMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
