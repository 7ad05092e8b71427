package quicktween

import "math"

// A single segment of a keyframe sequence: the value to reach
// and the time in seconds that it takes to reach it from the
// previous keyframe (or from the starting value).
type Keyframe struct {
	Target   Vector3
	Duration float64
}

// An ordered list of keyframes, consumed by a tween player that
// interpolates towards each target in turn.
type Sequence []Keyframe

// Returns the sum of all keyframe durations.
func (self Sequence) TotalDuration() float64 {
	var total float64
	for _, keyframe := range self {
		total += keyframe.Duration
	}
	return total
}

func (self Sequence) Targets() []Vector3 {
	targets := make([]Vector3, len(self))
	for i, keyframe := range self {
		targets[i] = keyframe.Target
	}
	return targets
}

func (self Sequence) Durations() []float64 {
	durations := make([]float64, len(self))
	for i, keyframe := range self {
		durations[i] = keyframe.Duration
	}
	return durations
}

// Returns the last keyframe. Panics on empty sequences.
func (self Sequence) Last() Keyframe {
	if len(self) == 0 {
		panic(emptySequence)
	}
	return self[len(self)-1]
}

// Returns a copy of the sequence with all targets translated by
// the given delta. Useful to turn offset sequences into absolute
// ones or to rebase a sequence on a different starting value.
func (self Sequence) Offset(delta Vector3) Sequence {
	out := make(Sequence, len(self))
	for i, keyframe := range self {
		out[i] = Keyframe{Target: keyframe.Target.Add(delta), Duration: keyframe.Duration}
	}
	return out
}

// Returns the value a linear player would have after the given time,
// when starting from start. Times before zero return start, times
// past the end return the last target.
func (self Sequence) Sample(start Vector3, at float64) Vector3 {
	from := start
	for _, keyframe := range self {
		if at < keyframe.Duration {
			if at <= 0 {
				return from
			}
			ratio := at / keyframe.Duration
			return from.Add(keyframe.Target.Sub(from).Scale(ratio))
		}
		at -= keyframe.Duration
		from = keyframe.Target
	}
	return from
}

// --- shared generation helpers ---

const minIterations = 2

func atLeastMinIterations(iterations float64) int {
	if iterations < minIterations || math.IsNaN(iterations) {
		return minIterations
	}
	return int(iterations)
}

// Returns the segment durations for the given number of iterations,
// normalized so they add up to the total duration. When growing is
// true, raw segment i is weighted by (i + 1)/n so later segments are
// progressively longer. Otherwise all segments are equal.
func segmentDurations(iterations int, duration float64, growing bool) []float64 {
	durations := make([]float64, iterations)
	var sum float64
	for i := range durations {
		raw := duration / float64(iterations)
		if growing {
			raw = duration * float64(i+1) / float64(iterations)
		}
		durations[i] = raw
		sum += raw
	}

	if sum == 0 {
		return durations
	}
	multiplier := duration / sum
	for i := range durations {
		durations[i] *= multiplier
	}
	return durations
}
