package animate

import "time"

// Clock measures the time between frames. It is not safe for concurrent
// use.
type Clock struct {
	now     func() time.Time
	last    time.Time
	elapsed time.Duration
	started bool

	// frame rate, counted over whole seconds
	windowStart time.Time
	frames      int
	fps         int
	fpsHistory  []int
}

// NewClock returns a clock reading time from now, or from [time.Now] if now
// is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick marks the start of a frame and returns the time since the previous
// one. The first tick returns zero.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		c.windowStart = now
		c.frames = 1
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	c.elapsed += delta

	c.frames++
	if now.Sub(c.windowStart) >= time.Second {
		c.fps = c.frames
		c.fpsHistory = append(c.fpsHistory, c.fps)
		c.frames = 0
		c.windowStart = now
	}
	return delta
}

// FPS returns the number of frames ticked during the last completed second,
// or zero before a second has passed.
func (c *Clock) FPS() int {
	return c.fps
}

// AverageFPS returns the mean of all completed per-second frame counts, or
// zero before a second has passed.
func (c *Clock) AverageFPS() float64 {
	if len(c.fpsHistory) == 0 {
		return 0
	}
	sum := 0
	for _, n := range c.fpsHistory {
		sum += n
	}
	return float64(sum) / float64(len(c.fpsHistory))
}

// Advance adds d to the elapsed time without consulting the time source.
func (c *Clock) Advance(d time.Duration) {
	c.elapsed += d
}

// Elapsed returns the sum of all frame times.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Reset sets the elapsed time to zero and discards the frame rate history.
// The next tick starts a new frame sequence.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.started = false
	c.frames = 0
	c.fps = 0
	c.fpsHistory = nil
}
