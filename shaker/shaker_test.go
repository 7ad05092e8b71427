package shaker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/quicktween"
)

// Records the levels it's called with and returns them as offsets.
type recorder struct {
	levels []float64
}

func (self *recorder) GetShakeOffsets(level float64) (float64, float64) {
	self.levels = append(self.levels, level)
	return level, -level
}

func TestChannelTrigger(t *testing.T) {
	rec := &recorder{}
	channel := NewChannel(rec)
	assert.False(t, channel.IsShaking())

	channel.Trigger(2, 3, 2)
	assert.True(t, channel.IsShaking())
	for i := 0; i < 10; i++ {
		channel.Update()
	}

	assert.Equal(t, []float64{0, 0.5, 1, 1, 1, 1, 0.5, 0}, rec.levels)
	assert.False(t, channel.IsShaking())
	x, y := channel.Offsets()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestChannelStartAndEnd(t *testing.T) {
	rec := &recorder{}
	channel := NewChannel(rec)

	channel.Start(0)
	for i := 0; i < 100; i++ {
		channel.Update()
	}
	assert.True(t, channel.IsShaking())
	assert.Equal(t, 1.0, channel.Activity())
	x, y := channel.Offsets()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.0, y)

	rec.levels = nil
	channel.End(2)
	assert.True(t, channel.IsFadingOut())
	for i := 0; i < 4; i++ {
		channel.Update()
	}
	assert.Equal(t, []float64{1, 0.5, 0}, rec.levels)
	assert.False(t, channel.IsShaking())
}

func TestChannelEndWhileFadingIn(t *testing.T) {
	channel := NewChannel(&recorder{})
	channel.Start(4)
	channel.Update()
	channel.Update()
	require.True(t, channel.IsFadingIn())
	assert.Equal(t, 0.5, channel.Activity())

	channel.End(4)
	assert.Equal(t, 0.5, channel.Activity())
	assert.True(t, channel.IsFadingOut())
}

func TestChannelStartWhileFadingOut(t *testing.T) {
	channel := NewChannel(&recorder{})
	channel.Start(0)
	channel.Update()
	channel.End(4)
	channel.Update()
	channel.Update()
	require.Equal(t, 0.5, channel.Activity())

	channel.Start(4)
	assert.Equal(t, 0.5, channel.Activity())
	assert.True(t, channel.IsFadingIn())

	// same fade in, ignored
	channel.Update()
	channel.Start(4)
	assert.Equal(t, 0.75, channel.Activity())
}

func TestChannelEndWhenIdle(t *testing.T) {
	channel := NewChannel(&recorder{})
	channel.End(10)
	assert.False(t, channel.IsShaking())
	assert.Zero(t, channel.Activity())
}

func TestChannelWithoutShaker(t *testing.T) {
	var channel Channel
	channel.Trigger(0, 2, 0)
	channel.Update()
	assert.True(t, channel.IsShaking())
	x, y := channel.Offsets()
	assert.Zero(t, x)
	assert.Zero(t, y)
	channel.Update()
	channel.Update()
	assert.False(t, channel.IsShaking())

	channel.SetShaker(&recorder{})
	assert.NotNil(t, channel.Shaker())
}

func TestKeyframedWithinStrength(t *testing.T) {
	shaker := NewKeyframed(quicktween.NewRandomSource(4))
	shaker.Strength = 3

	var moved bool
	for i := 0; i < 200; i++ {
		x, y := shaker.GetShakeOffsets(1)
		assert.LessOrEqual(t, math.Hypot(x, y), 3+1e-9)
		moved = moved || x != 0 || y != 0
	}
	assert.True(t, moved)
	assert.Less(t, shaker.elapsed, DefaultCycle+1.0/DefaultUPS+1e-9)
}

func TestKeyframedLevelScaling(t *testing.T) {
	full := NewKeyframed(quicktween.NewRandomSource(9))
	half := NewKeyframed(quicktween.NewRandomSource(9))
	for i := 0; i < 50; i++ {
		fx, fy := full.GetShakeOffsets(1)
		hx, hy := half.GetShakeOffsets(0.5)
		assert.InDelta(t, fx*0.5, hx, 1e-12)
		assert.InDelta(t, fy*0.5, hy, 1e-12)
	}
}

func TestKeyframedResetsOnZeroLevel(t *testing.T) {
	shaker := NewKeyframed(quicktween.NewRandomSource(2))
	for i := 0; i < 10; i++ {
		shaker.GetShakeOffsets(1)
	}
	require.NotNil(t, shaker.sequence)

	x, y := shaker.GetShakeOffsets(0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Nil(t, shaker.sequence)
	assert.Zero(t, shaker.elapsed)

	// sequences start at the origin
	x, y = shaker.GetShakeOffsets(1)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(0))
	assert.Equal(t, 0.5, smoothstep(0.5))
	assert.Equal(t, 1.0, smoothstep(1))
	assert.Less(t, smoothstep(0.25), 0.25)
}
