package sim

// Cadence is a spawn timer driven by tick time rather than the wall clock.
// Drivers keep one per spawn stream and drop it together with the world.
type Cadence struct {
	elapsed float64
}

// Advance adds dt milliseconds and returns how many times the interval elapsed.
// A non-positive interval never fires.
func (c *Cadence) Advance(dt, interval float64) int {
	if interval <= 0 {
		return 0
	}
	c.elapsed += dt
	fired := 0
	for c.elapsed >= interval {
		c.elapsed -= interval
		fired++
	}
	return fired
}

// Reset clears accumulated time.
func (c *Cadence) Reset() {
	c.elapsed = 0
}
