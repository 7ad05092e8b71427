package tween

import (
	"github.com/tanema/gween/ease"
)

// Configures a single tween step (or a whole [Tween] when passed
// to [New]()).
type Option func(*options)

type options struct {
	easing     ease.TweenFunc
	onStart    func()
	onUpdate   func(ratio float64)
	onComplete func()
}

func buildOptions(opts []Option) options {
	built := options{easing: ease.Linear}
	for _, opt := range opts {
		opt(&built)
	}
	return built
}

// Sets the easing function. Defaults to [ease.Linear].
func WithEasing(easing ease.TweenFunc) Option {
	return func(o *options) {
		if easing != nil {
			o.easing = easing
		}
	}
}

// Sets the easing function by name. See [EasingByName]().
// Unknown names panic, as they are programming errors; validate
// user provided names with [EasingByName]() first.
func WithEasingName(name string) Option {
	easing, found := EasingByName(name)
	if !found {
		panic("unknown easing name '" + name + "'")
	}
	return WithEasing(easing)
}

// Invoked when the step starts, right after reading the start value.
func OnStart(fn func()) Option {
	return func(o *options) { o.onStart = fn }
}

// Invoked after every update of the step, with the eased progress ratio.
// Notice that some easings overshoot, so the ratio can leave [0, 1].
func OnUpdate(fn func(ratio float64)) Option {
	return func(o *options) { o.onUpdate = fn }
}

// Invoked once the step reaches its end value.
func OnComplete(fn func()) Option {
	return func(o *options) { o.onComplete = fn }
}

func (self *options) started() {
	if self.onStart != nil {
		self.onStart()
	}
}

func (self *options) updated(ratio float64) {
	if self.onUpdate != nil {
		self.onUpdate(ratio)
	}
}

func (self *options) completed() {
	if self.onComplete != nil {
		self.onComplete()
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"quadIn":       ease.InQuad,
	"quadOut":      ease.OutQuad,
	"quadInOut":    ease.InOutQuad,
	"cubicIn":      ease.InCubic,
	"cubicOut":     ease.OutCubic,
	"cubicInOut":   ease.InOutCubic,
	"quartIn":      ease.InQuart,
	"quartOut":     ease.OutQuart,
	"quartInOut":   ease.InOutQuart,
	"quintIn":      ease.InQuint,
	"quintOut":     ease.OutQuint,
	"quintInOut":   ease.InOutQuint,
	"sineIn":       ease.InSine,
	"sineOut":      ease.OutSine,
	"sineInOut":    ease.InOutSine,
	"expoIn":       ease.InExpo,
	"expoOut":      ease.OutExpo,
	"expoInOut":    ease.InOutExpo,
	"circIn":       ease.InCirc,
	"circOut":      ease.OutCirc,
	"circInOut":    ease.InOutCirc,
	"elasticIn":    ease.InElastic,
	"elasticOut":   ease.OutElastic,
	"elasticInOut": ease.InOutElastic,
	"backIn":       ease.InBack,
	"backOut":      ease.OutBack,
	"backInOut":    ease.InOutBack,
	"bounceIn":     ease.InBounce,
	"bounceOut":    ease.OutBounce,
	"bounceInOut":  ease.InOutBounce,
}

// Returns the easing function registered under the given name. Names
// are the curve followed by the direction ("quadOut", "sineInOut", ...).
// The empty string maps to linear.
func EasingByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	easing, found := easings[name]
	return easing, found
}
