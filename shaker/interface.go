// This package defines a [Shaker] interface that cameras can use to
// perform screen shakes, the [Channel] state that fades shakes in and
// out over time, and a [Keyframed] shaker built on quicktween shake
// sequences.
//
// Shakers are tick based: each call to GetShakeOffsets() corresponds
// to one game update, so results look the same regardless of how the
// offsets are later drawn. If your game doesn't run at 60 updates per
// second, configure the shaker's UPS accordingly.
package shaker

// The interface for screen shakers.
//
// Given a level that transitions linearly between 0 and 1
// during the fade in and fade out stages, GetShakeOffsets()
// returns the logical offsets for the camera.
//
// After stopping, there will be one call with level = 0 that
// can be used to reset the shaker state. The results of this
// call will be disregarded.
//
// Minor detail: all built-in implementations normalize the
// fade in/out level with a cubic smoothstep, just to make
// things nicer.
type Shaker interface {
	GetShakeOffsets(level float64) (float64, float64)
}

// A duration measured in game updates.
type Ticks uint64

// Duration of shakes started without an explicit end. Small enough
// that adding fade durations to it can't overflow.
const Forever Ticks = 1<<32 - 1

func smoothstep(level float64) float64 {
	return level * level * (3 - 2*level)
}
