package quicktween

import "math"

// Generates the keyframes of a punch: a quick displacement from start
// towards start + direction that then springs back and forth around
// start with decaying amplitude until it settles at start.
//
// Parameters:
//   - vibrato: oscillations per second. The number of keyframes is
//     round(vibrato*duration), but never less than 2.
//   - elasticity: in [0, 1], how far the backward swings go relative
//     to the forward ones. Values outside the range are clamped.
//
// Later segments are longer than earlier ones (linearly growing
// weights), and all durations add up to the given duration. The
// first target is always start + direction and the last one is
// always start. A zero direction produces a sequence that never
// leaves start.
func GeneratePunchSequence(start, direction Vector3, duration, vibrato, elasticity float64) Sequence {
	elasticity = clamp01(elasticity)
	iterations := atLeastMinIterations(math.Round(vibrato * duration))
	durations := segmentDurations(iterations, duration, true)
	initialStrength := direction.Length()

	sequence := make(Sequence, iterations)
	for i := range sequence {
		strength := punchStrength(initialStrength, i, iterations)
		sequence[i] = Keyframe{
			Target:   punchTarget(start, direction, strength, elasticity, i, iterations),
			Duration: durations[i],
		}
	}
	return sequence
}

// Same as [GeneratePunchSequence](), but reading the starting
// value from the given [Animatable].
func PunchFrom(target Animatable, direction Vector3, duration, vibrato, elasticity float64) Sequence {
	return GeneratePunchSequence(target.Get(), direction, duration, vibrato, elasticity)
}

// Remaining punch strength at the given iteration. The strength fades
// linearly from the initial strength, losing initial/iterations per step.
func punchStrength(initial float64, iteration, iterations int) float64 {
	return initial - float64(iteration)*(initial/float64(iterations))
}

func punchTarget(start, direction Vector3, strength, elasticity float64, iteration, iterations int) Vector3 {
	switch {
	case iteration == iterations-1:
		return start
	case iteration == 0:
		return start.Add(direction)
	case iteration%2 != 0:
		return start.Sub(ClampLength(direction, strength*elasticity))
	default:
		return start.Add(ClampLength(direction, strength))
	}
}

func clamp01(value float64) float64 {
	if value < 0 || math.IsNaN(value) {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
