package quicktween

import (
	"fmt"
	"math"
)

// Controls the range of the random angular jitter applied on each
// shake step.
type RandomnessMode uint8

const (
	// Jitter in [-randomness, +randomness]. The default.
	ModeFull RandomnessMode = iota

	// Jitter in [0, +randomness]. The shake keeps rotating in a
	// single direction, which looks more regular.
	ModeHarmonic
)

func (self RandomnessMode) String() string {
	switch self {
	case ModeFull:
		return "full"
	case ModeHarmonic:
		return "harmonic"
	default:
		return fmt.Sprintf("RandomnessMode(%d)", uint8(self))
	}
}

// Parses a mode name as returned by [RandomnessMode.String]().
func ParseRandomnessMode(name string) (RandomnessMode, bool) {
	switch name {
	case "", "full":
		return ModeFull, true
	case "harmonic":
		return ModeHarmonic, true
	default:
		return ModeFull, false
	}
}

// Parameters for [GenerateShakeSequence]().
type ShakeOptions struct {
	// Shake strength. Unless VectorBased is set, only X is used as a
	// uniform magnitude; see [UniformStrength](). With VectorBased,
	// each component bounds the displacement on its own axis.
	Strength Vector3

	// Shakes per second. The number of keyframes is floor(vibrato*duration),
	// but never less than 2.
	Vibrato float64

	// Maximum angular jitter in degrees between consecutive shake
	// directions. Typically in [0, 180]. Zero makes each step reverse
	// the previous direction exactly.
	Randomness float64

	// Keeps the shake on the XY plane. Otherwise, each step is also
	// rotated around the up axis by a random angle.
	IgnoreZAxis bool

	// Use per-axis strength bounds instead of a uniform magnitude.
	VectorBased bool

	// Fades the shake amplitude linearly down to zero. Also makes
	// later segments progressively longer.
	FadeOut bool

	Mode RandomnessMode
}

// Returns a strength vector for scalar (non vector based) shakes.
func UniformStrength(strength float64) Vector3 {
	return Vector3{strength, strength, strength}
}

func (self *ShakeOptions) initialLength() float64 {
	if self.VectorBased {
		return self.Strength.Length()
	}
	return self.Strength.X
}

func (self *ShakeOptions) jitter(rng RandomSource) float64 {
	if self.Mode == ModeHarmonic {
		return RandomRange(rng, 0, self.Randomness)
	}
	return RandomRange(rng, -self.Randomness, self.Randomness)
}

func (self *ShakeOptions) rotatesOutOfPlane() bool {
	return self.VectorBased || !self.IgnoreZAxis
}

// Generates the keyframes of a shake around start: a sequence of
// random displacements where each step roughly reverses the direction
// of the previous one, followed by a final return to start.
//
// The result is nondeterministic unless the given random source is
// seeded. A nil source falls back to [DefaultRandomSource](). Durations
// always add up to the given duration, no displacement is ever longer
// than the strength, and the last target is always start.
func GenerateShakeSequence(rng RandomSource, start Vector3, duration float64, opts ShakeOptions) Sequence {
	if rng == nil {
		rng = DefaultRandomSource()
	}

	iterations := atLeastMinIterations(math.Floor(opts.Vibrato * duration))
	durations := segmentDurations(iterations, duration, opts.FadeOut)

	state := shakeState{
		angle:  RandomRange(rng, 0, 360),
		length: opts.initialLength(),
		bound:  opts.Strength,
	}
	fadeStep := state.length / float64(iterations)

	sequence := make(Sequence, iterations)
	last := iterations - 1
	for i := 0; i < last; i++ {
		var offset Vector3
		offset, state = state.step(rng, &opts, i, fadeStep)
		sequence[i] = Keyframe{Target: start.Add(offset), Duration: durations[i]}
	}
	sequence[last] = Keyframe{Target: start, Duration: durations[last]}
	return sequence
}

// Same as [GenerateShakeSequence](), but reading the starting value
// from the given [Animatable].
func ShakeFrom(rng RandomSource, target Animatable, duration float64, opts ShakeOptions) Sequence {
	return GenerateShakeSequence(rng, target.Get(), duration, opts)
}

// The values carried from one shake step to the next.
type shakeState struct {
	angle  float64 // degrees
	length float64 // current displacement magnitude
	bound  Vector3 // per-axis bounds, only for vector based shakes
}

// Computes the offset for the given iteration and returns it together
// with the state for the next iteration. The receiver is not modified.
func (self shakeState) step(rng RandomSource, opts *ShakeOptions, iteration int, fadeStep float64) (Vector3, shakeState) {
	next := self
	if iteration > 0 {
		next.angle = next.angle - 180 + opts.jitter(rng)
	}

	offset := Vec3FromAngle(next.angle, next.length)
	if opts.rotatesOutOfPlane() {
		offset = offset.RotateAround(Up, opts.jitter(rng))
	}

	if opts.VectorBased {
		offset = Vector3{
			X: ClampLength(offset, next.bound.X).X,
			Y: ClampLength(offset, next.bound.Y).Y,
			Z: ClampLength(offset, next.bound.Z).Z,
		}
		offset = ClampLength(offset, next.length)
	}

	if opts.FadeOut {
		next.length -= fadeStep
	}
	if opts.VectorBased {
		next.bound = ClampLength(next.bound, next.length)
	}
	return offset, next
}
