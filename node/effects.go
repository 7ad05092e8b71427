package node

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/tween"
)

// Defaults matching the usual punch feel: three oscillations per
// second, swinging back half as far as forward.
const (
	DefaultPunchVibrato    = 3.0
	DefaultPunchElasticity = 0.5
)

type property uint8

const (
	propPosition property = iota
	propRotation
	propScale
)

type activeShake struct {
	tween    *tween.Tween
	target   quicktween.Animatable
	baseline quicktween.Vector3
}

// --- plain interpolation ---

func (self *Node) TweenPosition(to quicktween.Vector3, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().To(self.PositionValue(), duration, to, opts...)
}

func (self *Node) TweenPositionX(x, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.PositionValue(), duration, withX(x), opts...)
}

func (self *Node) TweenPositionY(y, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.PositionValue(), duration, withY(y), opts...)
}

func (self *Node) TweenPositionZ(z, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.PositionValue(), duration, withZ(z), opts...)
}

func (self *Node) TweenWorldPosition(to quicktween.Vector3, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().To(self.WorldPositionValue(), duration, to, opts...)
}

func (self *Node) TweenWorldPositionX(x, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.WorldPositionValue(), duration, withX(x), opts...)
}

func (self *Node) TweenWorldPositionY(y, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.WorldPositionValue(), duration, withY(y), opts...)
}

func (self *Node) TweenWorldPositionZ(z, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.WorldPositionValue(), duration, withZ(z), opts...)
}

// Interpolates the euler angles, in degrees. Unlike
// [Node.TweenRotationQuat](), this can spin more than half a turn.
func (self *Node) TweenRotation(degrees quicktween.Vector3, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().To(self.EulerValue(), duration, degrees, opts...)
}

// Spherically interpolates the rotation along the shortest arc.
func (self *Node) TweenRotationQuat(to mgl64.Quat, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().Quat(self.Rotation, self.SetRotation, duration, to, opts...)
}

func (self *Node) TweenScale(to quicktween.Vector3, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().To(self.ScaleValue(), duration, to, opts...)
}

func (self *Node) TweenScaleUniform(scale, duration float64, opts ...tween.Option) *tween.Tween {
	return self.TweenScale(quicktween.V3(scale, scale, scale), duration, opts...)
}

func (self *Node) TweenScaleX(x, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.ScaleValue(), duration, withX(x), opts...)
}

func (self *Node) TweenScaleY(y, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.ScaleValue(), duration, withY(y), opts...)
}

func (self *Node) TweenScaleZ(z, duration float64, opts ...tween.Option) *tween.Tween {
	return tween.New().ToFunc(self.ScaleValue(), duration, withZ(z), opts...)
}

// --- punch ---

// Punches the local position in the given direction and springs
// back to wherever the node was when the effect started.
func (self *Node) PunchPosition(punch quicktween.Vector3, duration, vibrato, elasticity float64, opts ...tween.Option) *tween.Tween {
	return punchOn(self.PositionValue(), punch, duration, vibrato, elasticity, opts)
}

// Punches the euler angles, in degrees.
func (self *Node) PunchRotation(punch quicktween.Vector3, duration, vibrato, elasticity float64, opts ...tween.Option) *tween.Tween {
	return punchOn(self.EulerValue(), punch, duration, vibrato, elasticity, opts)
}

func (self *Node) PunchScale(punch quicktween.Vector3, duration, vibrato, elasticity float64, opts ...tween.Option) *tween.Tween {
	return punchOn(self.ScaleValue(), punch, duration, vibrato, elasticity, opts)
}

func punchOn(target quicktween.Animatable, punch quicktween.Vector3, duration, vibrato, elasticity float64, opts []tween.Option) *tween.Tween {
	build := func(from quicktween.Vector3) quicktween.Sequence {
		return quicktween.GeneratePunchSequence(from, punch, duration, vibrato, elasticity)
	}
	return tween.New().KeyframesFunc(target, duration, build, opts...)
}

// --- shake ---

// Shakes the local position around its value at the start of the
// effect. Only one position shake can be active at a time: starting
// a new one stops the previous shake and restores its baseline first.
// The same applies to rotation and scale shakes.
func (self *Node) ShakePosition(duration float64, shake quicktween.ShakeOptions, opts ...tween.Option) *tween.Tween {
	return self.shakeOn(propPosition, self.PositionValue(), duration, shake, opts)
}

// Shakes the euler angles, in degrees.
func (self *Node) ShakeRotation(duration float64, shake quicktween.ShakeOptions, opts ...tween.Option) *tween.Tween {
	return self.shakeOn(propRotation, self.EulerValue(), duration, shake, opts)
}

func (self *Node) ShakeScale(duration float64, shake quicktween.ShakeOptions, opts ...tween.Option) *tween.Tween {
	return self.shakeOn(propScale, self.ScaleValue(), duration, shake, opts)
}

// Returns whether a shake on the given property is still registered.
func (self *Node) isShaking(prop property) bool {
	active := self.shakes[prop]
	return active != nil && !active.tween.IsDone()
}

func (self *Node) shakeOn(prop property, target quicktween.Animatable, duration float64, shake quicktween.ShakeOptions, opts []tween.Option) *tween.Tween {
	shakeTween := tween.New()
	var registered *activeShake

	build := func(from quicktween.Vector3) quicktween.Sequence {
		// shakes stopped from outside never reach release, so their
		// entries are ignored once the tween is done
		if previous := self.shakes[prop]; previous != nil {
			switch {
			case previous.tween == shakeTween:
				from = previous.baseline
			case !previous.tween.IsDone():
				previous.tween.Stop()
				previous.target.Set(previous.baseline)
				from = previous.baseline
			}
		}
		if self.shakes == nil {
			self.shakes = make(map[property]*activeShake, 3)
		}
		registered = &activeShake{tween: shakeTween, target: target, baseline: from}
		self.shakes[prop] = registered
		return quicktween.GenerateShakeSequence(self.rng, from, duration, shake)
	}
	release := func() {
		if self.shakes[prop] == registered {
			delete(self.shakes, prop)
		}
	}
	return shakeTween.KeyframesFunc(target, duration, build, opts...).Call(release)
}

// --- helpers ---

func withX(x float64) func(quicktween.Vector3) quicktween.Vector3 {
	return func(from quicktween.Vector3) quicktween.Vector3 { return quicktween.V3(x, from.Y, from.Z) }
}

func withY(y float64) func(quicktween.Vector3) quicktween.Vector3 {
	return func(from quicktween.Vector3) quicktween.Vector3 { return quicktween.V3(from.X, y, from.Z) }
}

func withZ(z float64) func(quicktween.Vector3) quicktween.Vector3 {
	return func(from quicktween.Vector3) quicktween.Vector3 { return quicktween.V3(from.X, from.Y, z) }
}
