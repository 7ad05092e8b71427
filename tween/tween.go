// Package tween plays quicktween keyframe sequences and simple
// interpolations on [quicktween.Animatable] values.
//
// Easing equations and per-segment time stepping are delegated to
// [github.com/tanema/gween]. This package only chains steps: a [Tween]
// runs its steps one after the other, [Tween.Parallel]() runs nested
// tweens at the same time, and [Tween.Repeat]() loops the whole chain.
//
// Tweens don't run by themselves. Either call [Tween.Update]() from
// your game loop or hand them to a [Manager].
//
// Start values are read when each step starts, not when the tween is
// built, so chained steps always continue from wherever the previous
// step left the value:
//
//	t := tween.New().
//		To(pos, 0.2, quicktween.V3(0, 10, 0), tween.WithEasingName("quadOut")).
//		To(pos, 0.2, quicktween.Zero, tween.WithEasingName("quadIn")).
//		Repeat(3)
package tween

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/edwinsyarief/quicktween"
)

// A chain of steps. Build it with the chainable methods, then advance
// it with [Tween.Update]() or start it on a [Manager].
//
// A tween can't be modified once it has started.
type Tween struct {
	name    string
	steps   []step
	opts    options
	repeat  int
	loop    int
	index   int
	elapsed float64
	started bool
	done    bool
	stopped bool
}

// Creates an empty tween. The given options apply to the tween as
// a whole: OnStart is invoked before the first step begins, OnUpdate
// receives the overall linear progress and OnComplete is invoked
// after the last repetition. The easing option is ignored.
func New(opts ...Option) *Tween {
	return &Tween{opts: buildOptions(opts), repeat: 1}
}

// Sets a name for the tween, used in logs.
func (self *Tween) Named(name string) *Tween {
	self.name = name
	return self
}

func (self *Tween) Name() string { return self.name }

// Appends a step that interpolates the target from its current value
// to the given one.
func (self *Tween) To(target quicktween.Animatable, duration float64, to quicktween.Vector3, opts ...Option) *Tween {
	return self.ToFunc(target, duration, func(quicktween.Vector3) quicktween.Vector3 { return to }, opts...)
}

// Like [Tween.To](), but the end value is computed from the start value
// when the step begins. Useful to animate a single axis, e.g. moving X
// while keeping whatever Y and Z the target has at that point.
func (self *Tween) ToFunc(target quicktween.Animatable, duration float64, to func(from quicktween.Vector3) quicktween.Vector3, opts ...Option) *Tween {
	if target == nil {
		panic(nilTarget)
	}
	return self.add(&segment{
		interval: newInterval(duration, opts),
		target:   target,
		to:       to,
	})
}

// Appends a step that plays the given keyframe sequence on the target,
// interpolating from its current value to the first keyframe and then
// from keyframe to keyframe. The easing applies to each keyframe segment.
func (self *Tween) Keyframes(target quicktween.Animatable, sequence quicktween.Sequence, opts ...Option) *Tween {
	sequence = append(quicktween.Sequence(nil), sequence...)
	build := func(quicktween.Vector3) quicktween.Sequence { return sequence }
	return self.KeyframesFunc(target, sequence.TotalDuration(), build, opts...)
}

// Like [Tween.Keyframes](), but the sequence is generated from the
// target's value when the step begins. The duration is only used to
// report [Tween.Duration]() before the step starts, and should match
// the total duration of the generated sequence.
func (self *Tween) KeyframesFunc(target quicktween.Animatable, duration float64, build func(from quicktween.Vector3) quicktween.Sequence, opts ...Option) *Tween {
	if target == nil || build == nil {
		panic(nilTarget)
	}
	return self.add(&keyframes{
		target: target,
		build:  build,
		length: duration,
		opts:   buildOptions(opts),
	})
}

// Appends a step that interpolates a scalar from one value to another,
// passing each intermediate value to set.
func (self *Tween) Scalar(duration, from, to float64, set func(float64), opts ...Option) *Tween {
	if set == nil {
		panic(nilTarget)
	}
	return self.add(&scalar{
		interval: newInterval(duration, opts),
		from:     from,
		to:       to,
		set:      set,
	})
}

// Appends a step that spherically interpolates a rotation from its
// current value to the given one.
func (self *Tween) Quat(get func() mgl64.Quat, set func(mgl64.Quat), duration float64, to mgl64.Quat, opts ...Option) *Tween {
	if get == nil || set == nil {
		panic(nilTarget)
	}
	return self.add(&quat{
		interval: newInterval(duration, opts),
		get:      get,
		set:      set,
		to:       to,
	})
}

// Appends a step that waits for the given duration.
func (self *Tween) Delay(duration float64) *Tween {
	return self.add(&delay{interval: newInterval(duration, nil)})
}

// Appends a step that invokes fn and finishes immediately.
func (self *Tween) Call(fn func()) *Tween {
	if fn == nil {
		panic(nilTarget)
	}
	return self.add(&call{fn: fn})
}

// Appends the given tween as a single step. The tween must not be
// started or used anywhere else.
func (self *Tween) Then(other *Tween) *Tween {
	self.checkNested(other)
	return self.add(other)
}

// Appends a step that runs all the given tweens at the same time and
// finishes when the longest of them finishes.
func (self *Tween) Parallel(others ...*Tween) *Tween {
	for _, other := range others {
		self.checkNested(other)
	}
	return self.add(&parallel{tweens: others})
}

// Makes the whole chain of steps run the given number of times.
// Repeat(1) is the default behavior.
func (self *Tween) Repeat(times int) *Tween {
	if times < 1 {
		panic(invalidRepeat)
	}
	self.checkNotStarted()
	self.repeat = times
	return self
}

// Returns the total duration of the tween, including repetitions.
func (self *Tween) Duration() float64 {
	return self.duration()
}

// Advances the tween by dt seconds and returns whether it's done.
// Stopped or finished tweens ignore further updates.
func (self *Tween) Update(dt float64) bool {
	if self.done || self.stopped {
		return true
	}
	_, done := self.advance(dt)
	return done
}

// Stops the tween, leaving the animated values where they are.
// No further callbacks will be invoked.
func (self *Tween) Stop() {
	self.stopped = true
}

// Returns whether the tween finished or was stopped.
func (self *Tween) IsDone() bool {
	return self.done || self.stopped
}

func (self *Tween) IsStopped() bool {
	return self.stopped
}

// Returns whether the tween received its first update.
func (self *Tween) IsStarted() bool {
	return self.started
}

// --- step implementation, so tweens can be nested ---

func (self *Tween) begin() {
	self.started = true
	self.done = false
	self.loop = 0
	self.index = 0
	self.elapsed = 0
	self.opts.started()
	if len(self.steps) > 0 {
		self.steps[0].begin()
	}
}

func (self *Tween) advance(dt float64) (float64, bool) {
	if !self.started {
		self.begin()
	}
	if self.stopped {
		return 0, true
	}

	self.elapsed += dt
	remaining := dt
	for {
		if self.index >= len(self.steps) {
			self.loop += 1
			if self.loop >= self.repeat || len(self.steps) == 0 {
				self.done = true
				self.opts.updated(1)
				self.opts.completed()
				return remaining, true
			}
			self.index = 0
			self.steps[0].begin()
		}

		overflow, done := self.steps[self.index].advance(remaining)
		if self.stopped {
			return 0, true
		}
		if !done {
			self.opts.updated(self.progress())
			return 0, false
		}
		remaining = overflow
		self.index += 1
		if self.index < len(self.steps) {
			self.steps[self.index].begin()
		}
	}
}

func (self *Tween) duration() float64 {
	var total float64
	for _, step := range self.steps {
		total += step.duration()
	}
	return total * float64(self.repeat)
}

func (self *Tween) progress() float64 {
	total := self.duration()
	if total <= 0 {
		return 1
	}
	return min(self.elapsed/total, 1)
}

func (self *Tween) add(s step) *Tween {
	self.checkNotStarted()
	self.steps = append(self.steps, s)
	return self
}

func (self *Tween) checkNotStarted() {
	if self.started {
		panic(modifyStarted)
	}
}

func (self *Tween) checkNested(other *Tween) {
	if other == nil {
		panic(nilTarget)
	}
	if other == self {
		panic(nestedSelf)
	}
	if other.started {
		panic(nestedStarted)
	}
}

func newInterval(duration float64, opts []Option) interval {
	if duration < 0 {
		duration = 0
	}
	return interval{length: duration, opts: buildOptions(opts)}
}

// --- errors ---
const (
	nilTarget     = "tween target and callbacks can't be nil"
	invalidRepeat = "tween repeat count must be at least 1"
	modifyStarted = "can't modify a tween that already started"
	nestedSelf    = "can't nest a tween inside itself"
	nestedStarted = "can't nest a tween that already started"
)
