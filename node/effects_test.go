package node

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/tween"
)

// Updates the tween at 60 ticks per second until it finishes.
func run(t *testing.T, tw *tween.Tween, each func()) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if tw.Update(1.0 / 60.0) {
			return
		}
		if each != nil {
			each()
		}
	}
	t.Fatal("tween didn't finish")
}

func TestTweenPositionAxes(t *testing.T) {
	n := New("box")
	n.SetPosition(quicktween.V3(1, 2, 3))

	require.True(t, n.TweenPositionX(5, 0.5).Update(0.5))
	assert.Equal(t, quicktween.V3(5, 2, 3), n.Position())
	require.True(t, n.TweenPositionY(-1, 0.5).Update(0.5))
	assert.Equal(t, quicktween.V3(5, -1, 3), n.Position())
	require.True(t, n.TweenPositionZ(0, 0.5).Update(0.5))
	assert.Equal(t, quicktween.V3(5, -1, 0), n.Position())

	tw := n.TweenPosition(quicktween.V3(15, -1, 0), 1)
	tw.Update(0.5)
	assert.InDelta(t, 10, n.Position().X, 1e-6)
}

func TestTweenWorldPosition(t *testing.T) {
	parent := New("parent")
	parent.SetPosition(quicktween.V3(100, 0, 0))
	parent.SetScale(quicktween.V3(2, 2, 2))
	n := New("box")
	n.SetParent(parent)

	require.True(t, n.TweenWorldPosition(quicktween.V3(110, 20, 0), 1).Update(1))
	assert.True(t, n.Position().ApproxEqual(quicktween.V3(5, 10, 0), 1e-9), "got %v", n.Position())

	require.True(t, n.TweenWorldPositionX(120, 1).Update(1))
	require.True(t, n.TweenWorldPositionY(0, 1).Update(1))
	require.True(t, n.TweenWorldPositionZ(-4, 1).Update(1))
	assert.True(t, n.WorldPosition().ApproxEqual(quicktween.V3(120, 0, -4), 1e-9), "got %v", n.WorldPosition())
}

func TestTweenRotation(t *testing.T) {
	n := New("box")
	tw := n.TweenRotation(quicktween.V3(0, 0, 360), 1)
	tw.Update(0.5)
	assert.InDelta(t, 180, n.EulerAngles().Z, 1e-4)
	tw.Update(0.5)
	assert.Equal(t, quicktween.V3(0, 0, 360), n.EulerAngles())

	to := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	n.SetEulerAngles(quicktween.Zero)
	require.True(t, n.TweenRotationQuat(to, 0.5).Update(0.5))
	assert.True(t, n.EulerAngles().ApproxEqual(quicktween.V3(0, 0, 90), 1e-6), "got %v", n.EulerAngles())
}

func TestTweenScale(t *testing.T) {
	n := New("box")
	require.True(t, n.TweenScaleUniform(2, 0.25).Update(0.25))
	assert.Equal(t, quicktween.V3(2, 2, 2), n.Scale())

	require.True(t, n.TweenScaleX(1, 0.25).Update(0.25))
	require.True(t, n.TweenScaleY(3, 0.25).Update(0.25))
	require.True(t, n.TweenScaleZ(4, 0.25).Update(0.25))
	assert.Equal(t, quicktween.V3(1, 3, 4), n.Scale())

	require.True(t, n.TweenScale(quicktween.One, 0.25).Update(0.25))
	assert.Equal(t, quicktween.One, n.Scale())
}

func TestPunchPositionReturnsToStart(t *testing.T) {
	n := New("box")
	n.SetPosition(quicktween.V3(4, 4, 0))

	var peak float64
	punch := n.PunchPosition(quicktween.V3(0, 10, 0), 0.5, DefaultPunchVibrato, DefaultPunchElasticity)
	assert.Equal(t, 0.5, punch.Duration())
	run(t, punch, func() { peak = math.Max(peak, n.Position().Y) })

	assert.Equal(t, quicktween.V3(4, 4, 0), n.Position())
	assert.Greater(t, peak, 10.0)
}

func TestPunchStartsFromCurrentValue(t *testing.T) {
	n := New("box")
	tw := n.TweenPosition(quicktween.V3(8, 0, 0), 0.25).
		Then(n.PunchPosition(quicktween.V3(0, 1, 0), 0.5, 10, 1))
	run(t, tw, nil)
	assert.Equal(t, quicktween.V3(8, 0, 0), n.Position())
}

func TestPunchRotationAndScale(t *testing.T) {
	n := New("box")
	n.SetEulerAngles(quicktween.V3(0, 0, 45))
	n.SetScale(quicktween.V3(2, 2, 2))

	run(t, n.PunchRotation(quicktween.V3(0, 0, 30), 0.5, DefaultPunchVibrato, DefaultPunchElasticity), nil)
	run(t, n.PunchScale(quicktween.V3(0.5, 0.5, 0), 0.5, DefaultPunchVibrato, DefaultPunchElasticity), nil)

	assert.Equal(t, quicktween.V3(0, 0, 45), n.EulerAngles())
	assert.Equal(t, quicktween.V3(2, 2, 2), n.Scale())
}

func TestShakePositionStaysWithinStrength(t *testing.T) {
	n := New("box")
	n.SetRandomSource(quicktween.NewRandomSource(11))
	n.SetPosition(quicktween.V3(5, 5, 0))
	opts := quicktween.ShakeOptions{
		Strength:    quicktween.UniformStrength(2),
		Vibrato:     10,
		Randomness:  90,
		IgnoreZAxis: true,
		FadeOut:     true,
	}

	shake := n.ShakePosition(1, opts)
	run(t, shake, func() {
		offset := n.Position().Sub(quicktween.V3(5, 5, 0))
		assert.LessOrEqual(t, offset.Length(), 2+1e-9)
		assert.Zero(t, offset.Z)
		assert.True(t, n.isShaking(propPosition))
	})
	assert.Equal(t, quicktween.V3(5, 5, 0), n.Position())
	assert.False(t, n.isShaking(propPosition))
}

func TestNewShakeReplacesActiveShake(t *testing.T) {
	n := New("box")
	n.SetRandomSource(quicktween.NewRandomSource(5))
	n.SetPosition(quicktween.V3(1, 1, 1))
	opts := quicktween.ShakeOptions{Strength: quicktween.UniformStrength(3), Vibrato: 20, Randomness: 90}

	first := n.ShakePosition(2, opts)
	first.Update(0.3)
	require.True(t, n.isShaking(propPosition))

	second := n.ShakePosition(0.5, opts)
	second.Update(1.0 / 60.0)
	assert.True(t, first.IsStopped())

	run(t, second, nil)
	assert.Equal(t, quicktween.V3(1, 1, 1), n.Position())
	assert.False(t, n.isShaking(propPosition))
}

func TestShakeAfterStoppedShakeUsesCurrentValue(t *testing.T) {
	n := New("box")
	n.SetRandomSource(quicktween.NewRandomSource(5))
	n.SetPosition(quicktween.V3(1, 1, 1))
	opts := quicktween.ShakeOptions{Strength: quicktween.UniformStrength(3), Vibrato: 20, Randomness: 90}

	first := n.ShakePosition(1, opts)
	first.Update(0.2)
	first.Stop()
	assert.False(t, n.isShaking(propPosition))

	run(t, n.TweenPosition(quicktween.V3(50, 50, 0), 0.2), nil)
	require.Equal(t, quicktween.V3(50, 50, 0), n.Position())

	second := n.ShakePosition(0.5, opts)
	second.Update(1.0 / 60.0)
	offset := n.Position().Sub(quicktween.V3(50, 50, 0))
	assert.LessOrEqual(t, offset.Length(), 3+1e-9)

	run(t, second, nil)
	assert.Equal(t, quicktween.V3(50, 50, 0), n.Position())
	assert.False(t, n.isShaking(propPosition))
}

func TestShakesOnDifferentPropertiesCoexist(t *testing.T) {
	n := New("box")
	n.SetRandomSource(quicktween.NewRandomSource(8))
	opts := quicktween.ShakeOptions{Strength: quicktween.UniformStrength(1), Vibrato: 10, Randomness: 45}

	position := n.ShakePosition(1, opts)
	rotation := n.ShakeRotation(1, quicktween.ShakeOptions{Strength: quicktween.V3(0, 0, 15), Vibrato: 10, Randomness: 45, VectorBased: true})
	scale := n.ShakeScale(1, opts)
	position.Update(0.1)
	rotation.Update(0.1)
	scale.Update(0.1)

	assert.False(t, position.IsStopped())
	assert.False(t, rotation.IsStopped())
	run(t, position, nil)
	run(t, rotation, nil)
	run(t, scale, nil)
	assert.Equal(t, quicktween.Zero, n.Position())
	assert.Equal(t, quicktween.Zero, n.EulerAngles())
	assert.Equal(t, quicktween.One, n.Scale())
}

func TestJumpPosition(t *testing.T) {
	n := New("box")
	tw := n.JumpPosition(quicktween.V3(10, 0, 4), 3, 2, 1)
	assert.Equal(t, 1.0, tw.Duration())

	// top of the first hop
	require.False(t, tw.Update(0.25))
	assert.InDelta(t, 3, n.Position().Y, 1e-6)
	assert.InDelta(t, 2.5, n.Position().X, 1e-6)
	assert.InDelta(t, 1, n.Position().Z, 1e-6)

	// landing of the first hop
	require.False(t, tw.Update(0.25))
	assert.InDelta(t, 0, n.Position().Y, 1e-6)

	require.True(t, tw.Update(0.5))
	assert.Equal(t, quicktween.V3(10, 0, 4), n.Position())
}

func TestJumpPositionToDifferentHeight(t *testing.T) {
	n := New("box")
	n.SetPosition(quicktween.V3(0, 2, 0))

	var peak float64
	run(t, n.JumpPosition(quicktween.V3(0, 6, 0), 1, 0, 0.5), func() {
		peak = math.Max(peak, n.Position().Y)
	})
	assert.Equal(t, quicktween.V3(0, 6, 0), n.Position())
	assert.Greater(t, peak, 6.0)
}

func TestSpriteColor(t *testing.T) {
	sprite := NewSprite("box", color.NRGBA{255, 0, 0, 255})
	assert.Equal(t, "box", sprite.Name())

	fade := sprite.TweenOpacity(0, 1)
	fade.Update(0.5)
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, sprite.Color())
	fade.Update(0.5)
	assert.Equal(t, color.NRGBA{255, 0, 0, 0}, sprite.Color())

	sprite.SetColor(color.NRGBA{0, 0, 0, 255})
	require.True(t, sprite.TweenColor(color.NRGBA{10, 20, 30, 40}, 0.5).Update(0.5))
	assert.Equal(t, color.NRGBA{10, 20, 30, 40}, sprite.Color())
}
