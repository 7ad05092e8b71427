// Package node provides a minimal transform node with effect methods
// that build [tween.Tween] values for its position, rotation and scale,
// plus a [Sprite] with color effects.
//
// Nodes are not a scene graph: they only know their parent, which is
// enough to resolve world positions. Effects are returned unstarted, so
// they can be chained, nested or handed to a [tween.Manager]:
//
//	box := node.New("box")
//	manager.Start(box.PunchPosition(quicktween.V3(0, 12, 0), 0.4, node.DefaultPunchVibrato, node.DefaultPunchElasticity))
package node

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/edwinsyarief/quicktween"
)

// A named transform. Rotation is stored both as euler angles in
// degrees and as a quaternion, and the two are kept in sync.
//
// Nodes are not safe for concurrent use.
type Node struct {
	name     string
	parent   *Node
	position quicktween.Vector3
	euler    quicktween.Vector3
	rotation mgl64.Quat
	scale    quicktween.Vector3

	rng    quicktween.RandomSource
	shakes map[property]*activeShake
}

// Creates a node at the origin, with no rotation and unit scale.
func New(name string) *Node {
	return &Node{
		name:     name,
		rotation: mgl64.QuatIdent(),
		scale:    quicktween.One,
	}
}

func (self *Node) Name() string { return self.name }

func (self *Node) Parent() *Node { return self.parent }

// Sets the parent node. Local values are kept as they are, so the
// world position may change. Passing nil detaches the node.
func (self *Node) SetParent(parent *Node) {
	for ancestor := parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == self {
			panic(parentCycle)
		}
	}
	self.parent = parent
}

// Sets the random source used by shake effects. A nil source
// reverts to [quicktween.DefaultRandomSource]().
func (self *Node) SetRandomSource(rng quicktween.RandomSource) {
	self.rng = rng
}

// --- local transform ---

func (self *Node) Position() quicktween.Vector3 { return self.position }

func (self *Node) SetPosition(position quicktween.Vector3) {
	self.position = position
}

// Returns the rotation as euler angles in degrees, applied
// in X, Y, Z order.
func (self *Node) EulerAngles() quicktween.Vector3 { return self.euler }

func (self *Node) SetEulerAngles(degrees quicktween.Vector3) {
	self.euler = degrees
	self.rotation = eulerToQuat(degrees)
}

func (self *Node) Rotation() mgl64.Quat { return self.rotation }

func (self *Node) SetRotation(rotation mgl64.Quat) {
	self.rotation = rotation.Normalize()
	self.euler = quatToEuler(self.rotation)
}

func (self *Node) Scale() quicktween.Vector3 { return self.scale }

func (self *Node) SetScale(scale quicktween.Vector3) {
	self.scale = scale
}

// --- world transform ---

func (self *Node) WorldRotation() mgl64.Quat {
	if self.parent == nil {
		return self.rotation
	}
	return self.parent.WorldRotation().Mul(self.rotation)
}

// Returns the accumulated scale. Non-uniform scales under rotated
// parents would need skew, which isn't represented, so the result
// is only the component-wise product along the chain.
func (self *Node) WorldScale() quicktween.Vector3 {
	if self.parent == nil {
		return self.scale
	}
	return self.parent.WorldScale().Mul(self.scale)
}

func (self *Node) WorldPosition() quicktween.Vector3 {
	if self.parent == nil {
		return self.position
	}
	scaled := self.parent.WorldScale().Mul(self.position)
	rotated := self.parent.WorldRotation().Rotate(toMgl(scaled))
	return self.parent.WorldPosition().Add(fromMgl(rotated))
}

// Sets the local position so that the node ends up at the given
// world position. Axes with a zero parent scale can't be resolved
// and keep their local value.
func (self *Node) SetWorldPosition(position quicktween.Vector3) {
	if self.parent == nil {
		self.position = position
		return
	}

	offset := position.Sub(self.parent.WorldPosition())
	local := fromMgl(self.parent.WorldRotation().Inverse().Rotate(toMgl(offset)))
	scale := self.parent.WorldScale()
	self.position = quicktween.Vector3{
		X: unscale(local.X, scale.X, self.position.X),
		Y: unscale(local.Y, scale.Y, self.position.Y),
		Z: unscale(local.Z, scale.Z, self.position.Z),
	}
}

// --- animatable accessors ---

func (self *Node) PositionValue() quicktween.Animatable {
	return quicktween.AnimatableFuncs{GetFunc: self.Position, SetFunc: self.SetPosition}
}

func (self *Node) WorldPositionValue() quicktween.Animatable {
	return quicktween.AnimatableFuncs{GetFunc: self.WorldPosition, SetFunc: self.SetWorldPosition}
}

// Euler angles in degrees.
func (self *Node) EulerValue() quicktween.Animatable {
	return quicktween.AnimatableFuncs{GetFunc: self.EulerAngles, SetFunc: self.SetEulerAngles}
}

func (self *Node) ScaleValue() quicktween.Animatable {
	return quicktween.AnimatableFuncs{GetFunc: self.Scale, SetFunc: self.SetScale}
}

// --- helpers ---

// Rotation applied around X first, then Y, then Z (all extrinsic).
func eulerToQuat(degrees quicktween.Vector3) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(degrees.X), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(mgl64.DegToRad(degrees.Y), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(degrees.Z), mgl64.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx)
}

// Inverse of eulerToQuat. When Y is at +-90 degrees the X and Z
// rotations share an axis and only their combination is recovered.
func quatToEuler(q mgl64.Quat) quicktween.Vector3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	sinY := math.Max(-1, math.Min(1, 2*(w*y-z*x)))
	return quicktween.Vector3{
		X: mgl64.RadToDeg(math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))),
		Y: mgl64.RadToDeg(math.Asin(sinY)),
		Z: mgl64.RadToDeg(math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))),
	}
}

func unscale(value, scale, fallback float64) float64 {
	if scale == 0 {
		return fallback
	}
	return value / scale
}

func toMgl(v quicktween.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) quicktween.Vector3 {
	return quicktween.V3(v[0], v[1], v[2])
}

// --- errors ---
const parentCycle = "node can't be its own ancestor"
