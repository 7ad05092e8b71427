// Camera trackers: strategies that decide how fast a camera moves
// towards the point it's following.
package tracker

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Given the current and target coordinates and the speed of the
// previous update, returns how much the camera should move on this
// update.
type Tracker interface {
	Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64)
}

// A few stateless built-in trackers.
var (
	// Update(...) always returns (0, 0).
	Frozen Tracker = frozenTracker{}

	// Update(...) always returns (target - current).
	Instant Tracker = instantTracker{}
)

type frozenTracker struct{}

func (frozenTracker) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	return 0, 0
}

type instantTracker struct{}

func (instantTracker) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	return targetX - currentX, targetY - currentY
}

// A simple tracker that moves faster the further away the target is.
// Advances are proportional to the viewport size, so the tracking
// feels the same at any resolution.
type Linear struct {
	Width  float64 // viewport width, in logical pixels
	Height float64 // viewport height, in logical pixels
	UPS    int     // updates per second
}

func (self Linear) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	// stabilization
	if ebimath.Abs(targetX-currentX) < 0.001 && ebimath.Abs(targetY-currentY) < 0.001 {
		return targetX - currentX, targetY - currentY
	}

	// general update
	updateDelta := 1.0 / float64(max(self.UPS, 1))
	maxHorzAdvance := 6.0 * self.Width * updateDelta  // use higher values for a more rigid / strict tracking
	maxVertAdvance := 6.0 * self.Height * updateDelta // use lower values for a more elastic / softer tracking
	minAdvance := 0.01 * updateDelta
	refHorzMaxDist := 2.0 * self.Width // higher values lead to smoother tracking
	refVertMaxDist := 2.0 * self.Height

	horzAdvance := computeLinComponent(currentX, targetX, minAdvance, maxHorzAdvance, refHorzMaxDist)
	vertAdvance := computeLinComponent(currentY, targetY, minAdvance, maxVertAdvance, refVertMaxDist)
	return horzAdvance, vertAdvance
}

// Returns the signed advance from current towards target, never
// overshooting it.
func computeLinComponent(current, target, minAdvance, maxAdvance, refMaxDist float64) float64 {
	dist := target - current
	if dist == 0 {
		return 0
	}
	proportion := 1.0
	if refMaxDist > 0 {
		proportion = min(ebimath.Abs(dist)/refMaxDist, 1.0)
	}
	advance := max(minAdvance, maxAdvance*proportion)
	return math.Copysign(min(advance, ebimath.Abs(dist)), dist)
}
