package quicktween

// The capability an engine integration provides so that effects can be
// played on one of its values: a position, a rotation, a scale, or any
// other vector-valued property.
//
// Generators read the current value as the baseline of the effect, and
// players write interpolated values back while the effect runs.
type Animatable interface {
	Get() Vector3
	Set(value Vector3)
}

// Adapts a getter and a setter to the [Animatable] interface.
type AnimatableFuncs struct {
	GetFunc func() Vector3
	SetFunc func(Vector3)
}

func (self AnimatableFuncs) Get() Vector3 { return self.GetFunc() }

func (self AnimatableFuncs) Set(value Vector3) { self.SetFunc(value) }

// A plain [Animatable] holding its own value. Mostly useful for tests
// and for values that don't belong to any engine object.
type Value struct {
	Current Vector3
}

func (self *Value) Get() Vector3 { return self.Current }

func (self *Value) Set(value Vector3) { self.Current = value }
