package tween

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"

	"github.com/edwinsyarief/quicktween"
)

// A unit of work inside a [Tween]. Steps are begun right before their
// first update, which is when they read their start values.
type step interface {
	begin()

	// Advances the step by dt seconds. When the step finishes, the
	// unused part of dt is returned as overflow so the next step can
	// consume it in the same update.
	advance(dt float64) (overflow float64, done bool)

	duration() float64
}

// All interpolation goes through gween tweens from 0 to 1, and the
// resulting eased ratio is then applied to float64 values. This keeps
// the easing and time stepping in gween without losing precision on
// the animated values.
func newRatioTween(duration float64, opts *options) *gween.Tween {
	return gween.New(0, 1, float32(duration), opts.easing)
}

func lerp(from, to, ratio float64) float64 {
	return from + (to-from)*ratio
}

func lerpVector(from, to quicktween.Vector3, ratio float64) quicktween.Vector3 {
	return quicktween.Vector3{
		X: lerp(from.X, to.X, ratio),
		Y: lerp(from.Y, to.Y, ratio),
		Z: lerp(from.Z, to.Z, ratio),
	}
}

// --- interval (shared by all single segment steps) ---

type interval struct {
	length float64
	opts   options
	driver *gween.Tween
}

func (self *interval) start() {
	self.driver = newRatioTween(self.length, &self.opts)
}

// Returns the eased ratio, whether the interval finished and the overflow.
func (self *interval) tick(dt float64) (ratio float64, done bool, overflow float64) {
	value, finished := self.driver.Update(float32(dt))
	if finished {
		return 1, true, math.Max(0, float64(self.driver.Overflow))
	}
	return float64(value), false, 0
}

func (self *interval) duration() float64 { return self.length }

// --- vector segment ---

type segment struct {
	interval
	target quicktween.Animatable
	from   quicktween.Vector3
	to     func(from quicktween.Vector3) quicktween.Vector3
	end    quicktween.Vector3
}

func (self *segment) begin() {
	self.from = self.target.Get()
	self.end = self.to(self.from)
	self.start()
	self.opts.started()
}

func (self *segment) advance(dt float64) (float64, bool) {
	ratio, done, overflow := self.tick(dt)
	if done {
		self.target.Set(self.end)
	} else {
		self.target.Set(lerpVector(self.from, self.end, ratio))
	}
	self.opts.updated(ratio)
	if done {
		self.opts.completed()
	}
	return overflow, done
}

// --- keyframes ---

// Plays a whole keyframe sequence as a gween.Sequence of ratio tweens,
// one per keyframe, so segment chaining is left to gween. The sequence
// is built from the start value when the step begins.
type keyframes struct {
	target   quicktween.Animatable
	build    func(from quicktween.Vector3) quicktween.Sequence
	length   float64
	opts     options
	from     quicktween.Vector3
	sequence quicktween.Sequence
	driver   *gween.Sequence
	elapsed  float64
}

func (self *keyframes) begin() {
	self.from = self.target.Get()
	self.sequence = self.build(self.from)
	tweens := make([]*gween.Tween, len(self.sequence))
	for i, keyframe := range self.sequence {
		tweens[i] = newRatioTween(keyframe.Duration, &self.opts)
	}
	self.driver = gween.NewSequence(tweens...)
	self.elapsed = 0
	self.opts.started()
}

func (self *keyframes) advance(dt float64) (float64, bool) {
	if len(self.sequence) == 0 {
		self.opts.completed()
		return dt, true
	}

	self.elapsed += dt
	ratio, _, finished := self.driver.Update(float32(dt))
	if finished {
		self.target.Set(self.sequence.Last().Target)
		self.opts.updated(1)
		self.opts.completed()
		return math.Max(0, self.elapsed-self.sequence.TotalDuration()), true
	}

	index := self.driver.Index()
	from := self.from
	if index > 0 {
		from = self.sequence[index-1].Target
	}
	self.target.Set(lerpVector(from, self.sequence[index].Target, float64(ratio)))
	self.opts.updated(float64(ratio))
	return 0, false
}

func (self *keyframes) duration() float64 { return self.length }

// --- scalar ---

type scalar struct {
	interval
	from float64
	to   float64
	set  func(float64)
}

func (self *scalar) begin() {
	self.start()
	self.opts.started()
}

func (self *scalar) advance(dt float64) (float64, bool) {
	ratio, done, overflow := self.tick(dt)
	if done {
		self.set(self.to)
	} else {
		self.set(lerp(self.from, self.to, ratio))
	}
	self.opts.updated(ratio)
	if done {
		self.opts.completed()
	}
	return overflow, done
}

// --- quaternion ---

type quat struct {
	interval
	get  func() mgl64.Quat
	set  func(mgl64.Quat)
	from mgl64.Quat
	to   mgl64.Quat
}

func (self *quat) begin() {
	self.from = self.get()
	self.start()
	self.opts.started()
}

func (self *quat) advance(dt float64) (float64, bool) {
	ratio, done, overflow := self.tick(dt)
	if done {
		self.set(self.to)
	} else {
		self.set(mgl64.QuatSlerp(self.from, self.to, ratio))
	}
	self.opts.updated(ratio)
	if done {
		self.opts.completed()
	}
	return overflow, done
}

// --- delay ---

type delay struct {
	interval
}

func (self *delay) begin() { self.start() }

func (self *delay) advance(dt float64) (float64, bool) {
	_, done, overflow := self.tick(dt)
	return overflow, done
}

// --- call ---

type call struct {
	fn func()
}

func (self *call) begin() {}

func (self *call) advance(dt float64) (float64, bool) {
	self.fn()
	return dt, true
}

func (self *call) duration() float64 { return 0 }

// --- parallel ---

type parallel struct {
	tweens  []*Tween
	pending []bool
}

func (self *parallel) begin() {
	self.pending = make([]bool, len(self.tweens))
	for i, tween := range self.tweens {
		tween.begin()
		self.pending[i] = true
	}
}

// Finishes when the last of the tweens finishes. The overflow is
// the smallest one among the tweens that finished on this update.
func (self *parallel) advance(dt float64) (float64, bool) {
	overflow := dt
	remaining := 0
	for i, tween := range self.tweens {
		if !self.pending[i] {
			continue
		}
		tweenOverflow, done := tween.advance(dt)
		if done {
			self.pending[i] = false
			overflow = math.Min(overflow, tweenOverflow)
		} else {
			remaining += 1
		}
	}
	if remaining > 0 {
		return 0, false
	}
	return overflow, true
}

func (self *parallel) duration() float64 {
	var longest float64
	for _, tween := range self.tweens {
		longest = math.Max(longest, tween.duration())
	}
	return longest
}
