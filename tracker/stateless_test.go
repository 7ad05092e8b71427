package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatelessTrackers(t *testing.T) {
	dx, dy := Frozen.Update(0, 0, 10, 10, 0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = Instant.Update(1, 2, 10, -10, 0, 0)
	assert.Equal(t, 9.0, dx)
	assert.Equal(t, -12.0, dy)
}

func TestLinearTracker(t *testing.T) {
	linear := Linear{Width: 100, Height: 50, UPS: 60}

	// far away targets move at the max advance
	dx, dy := linear.Update(0, 0, 1000, -1000, 0, 0)
	assert.InDelta(t, 10, dx, 1e-9)
	assert.InDelta(t, -5, dy, 1e-9)

	// closer targets move slower
	dx, _ = linear.Update(0, 0, 50, 0, 0, 0)
	assert.InDelta(t, 2.5, dx, 1e-9)

	// never overshoots, even with a large min advance
	slow := Linear{Width: 100, Height: 50, UPS: 1}
	dx, dy = slow.Update(0, 0, 0.002, 0, 0, 0)
	assert.InDelta(t, 0.002, dx, 1e-12)
	assert.Zero(t, dy)

	// snaps when close enough
	dx, dy = linear.Update(5, 5, 5.0005, 4.9995, 0, 0)
	assert.InDelta(t, 0.0005, dx, 1e-12)
	assert.InDelta(t, -0.0005, dy, 1e-12)
}

func TestLinearTrackerConverges(t *testing.T) {
	linear := Linear{Width: 320, Height: 180, UPS: 60}
	x, y := 0.0, 0.0
	for i := 0; i < 600; i++ {
		dx, dy := linear.Update(x, y, 200, 80, 0, 0)
		x, y = x+dx, y+dy
	}
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 80.0, y)
}
