package quicktween

import (
	"math/rand/v2"
	"sync"
	"time"
)

// The source of uniform randomness consumed by the shake generator.
// [*rand.Rand] from math/rand/v2 satisfies this interface.
//
// Sources don't need to be safe for concurrent use unless they are
// shared between goroutines. The one returned by [DefaultRandomSource]()
// is.
type RandomSource interface {
	// Returns a uniform value in [0, 1).
	Float64() float64
}

// Creates a deterministic random source from the given seed. Two
// sources with the same seed produce the same shake sequences.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Returns the process-wide random source used when no explicit source
// is given to the bindings. Safe for concurrent use.
func DefaultRandomSource() RandomSource {
	defaultRandomOnce.Do(func() {
		seed := uint64(time.Now().UnixNano())
		defaultRandom = &lockedSource{source: NewRandomSource(seed)}
	})
	return defaultRandom
}

// Returns a uniform value in [min, max).
func RandomRange(rng RandomSource, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

type lockedSource struct {
	mutex  sync.Mutex
	source RandomSource
}

func (self *lockedSource) Float64() float64 {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.source.Float64()
}
