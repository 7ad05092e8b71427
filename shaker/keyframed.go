package shaker

import (
	ebimath "github.com/edwinsyarief/ebi-math"

	"github.com/edwinsyarief/quicktween"
)

// Default [Keyframed] parameters.
const (
	DefaultStrength   = 4.0
	DefaultVibrato    = 20.0
	DefaultRandomness = 90.0
	DefaultCycle      = 0.5
	DefaultUPS        = 60
)

// Levels below this are treated as the termination call.
const levelEpsilon = 1e-9

// A shaker that plays quicktween shake sequences back to back on the
// XY plane. Each sequence starts and ends at the origin and lasts
// Cycle seconds, and a new one is generated whenever the previous one
// runs out, so shakes of any length are possible.
//
// Zero-valued fields use the package defaults.
type Keyframed struct {
	Strength   float64 // maximum offset, in logical pixels
	Vibrato    float64 // oscillations per second
	Randomness float64 // in degrees, see [quicktween.ShakeOptions]
	Mode       quicktween.RandomnessMode
	Cycle      float64 // seconds
	UPS        int     // updates per second

	rng      quicktween.RandomSource
	sequence quicktween.Sequence
	elapsed  float64
}

// Creates a keyframed shaker with the default parameters. A nil
// source uses [quicktween.DefaultRandomSource]().
func NewKeyframed(rng quicktween.RandomSource) *Keyframed {
	return &Keyframed{rng: rng}
}

// Implements [Shaker].
func (self *Keyframed) GetShakeOffsets(level float64) (float64, float64) {
	if ebimath.Abs(level) < levelEpsilon {
		self.sequence = nil
		self.elapsed = 0
		return 0, 0
	}

	if self.sequence == nil {
		self.sequence = self.generate()
	} else if total := self.sequence.TotalDuration(); self.elapsed >= total {
		self.elapsed -= total
		self.sequence = self.generate()
	}

	offset := self.sequence.Sample(quicktween.Zero, self.elapsed)
	self.elapsed += 1.0 / float64(orDefault(float64(self.UPS), DefaultUPS))
	factor := smoothstep(min(level, 1))
	return offset.X * factor, offset.Y * factor
}

func (self *Keyframed) generate() quicktween.Sequence {
	opts := quicktween.ShakeOptions{
		Strength:    quicktween.UniformStrength(orDefault(self.Strength, DefaultStrength)),
		Vibrato:     orDefault(self.Vibrato, DefaultVibrato),
		Randomness:  orDefault(self.Randomness, DefaultRandomness),
		IgnoreZAxis: true,
		Mode:        self.Mode,
	}
	return quicktween.GenerateShakeSequence(self.rng, quicktween.Zero, orDefault(self.Cycle, DefaultCycle), opts)
}

func orDefault(value, fallback float64) float64 {
	if value <= 0 {
		return fallback
	}
	return value
}
