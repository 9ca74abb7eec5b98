package camera

import "time"

// Clock is the frame clock driving camera animation.
type Clock interface {
	// Now returns a monotonic time in seconds.
	//
	// Returns:
	//   - float64: seconds since an arbitrary fixed origin
	Now() float64
}

type systemClock struct {
	origin time.Time
}

// NewSystemClock returns a Clock backed by the monotonic wall clock.
//
// Returns:
//   - Clock: a clock whose origin is the moment of creation
func NewSystemClock() Clock {
	return &systemClock{origin: time.Now()}
}

func (c *systemClock) Now() float64 {
	return time.Since(c.origin).Seconds()
}
