package quicktween

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A 3D vector with float64 components. Vectors are values: all
// methods return new vectors and never modify the receiver.
type Vector3 struct {
	X, Y, Z float64
}

// Common vectors.
var (
	Zero = Vector3{}
	One  = Vector3{1, 1, 1}
	Up   = Vector3{0, 1, 0}
)

// Shorthand for Vector3{x, y, z}.
func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (self Vector3) Add(other Vector3) Vector3 {
	return Vector3{self.X + other.X, self.Y + other.Y, self.Z + other.Z}
}

func (self Vector3) Sub(other Vector3) Vector3 {
	return Vector3{self.X - other.X, self.Y - other.Y, self.Z - other.Z}
}

func (self Vector3) Neg() Vector3 {
	return Vector3{-self.X, -self.Y, -self.Z}
}

func (self Vector3) Scale(factor float64) Vector3 {
	return Vector3{self.X * factor, self.Y * factor, self.Z * factor}
}

// Component-wise product.
func (self Vector3) Mul(other Vector3) Vector3 {
	return Vector3{self.X * other.X, self.Y * other.Y, self.Z * other.Z}
}

func (self Vector3) Dot(other Vector3) float64 {
	return self.X*other.X + self.Y*other.Y + self.Z*other.Z
}

func (self Vector3) Length() float64 {
	return math.Sqrt(self.LengthSquared())
}

func (self Vector3) LengthSquared() float64 {
	return self.X*self.X + self.Y*self.Y + self.Z*self.Z
}

// Returns the unit vector with the same direction. The zero
// vector has no direction, so it's returned unchanged instead
// of producing NaN components.
func (self Vector3) Normalize() Vector3 {
	length := self.Length()
	if length == 0 {
		return Zero
	}
	return self.Scale(1.0 / length)
}

// Returns whether all components of the two vectors are within
// epsilon of each other.
func (self Vector3) ApproxEqual(other Vector3, epsilon float64) bool {
	return math.Abs(self.X-other.X) <= epsilon &&
		math.Abs(self.Y-other.Y) <= epsilon &&
		math.Abs(self.Z-other.Z) <= epsilon
}

// Rotates the vector around the given axis by the given angle
// in degrees. The axis doesn't need to be normalized.
func (self Vector3) RotateAround(axis Vector3, degrees float64) Vector3 {
	quat := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize().mgl())
	return fromMgl(quat.Rotate(self.mgl()))
}

func (self Vector3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{self.X, self.Y, self.Z}
}

func fromMgl(v mgl64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Re-projects the vector onto the sphere of radius maxLength.
//
// Despite the name, this is not a ceiling: shorter vectors are
// scaled up too. Punch and shake amplitudes rely on this, e.g. the
// backward swing of a punch is always exactly strength*elasticity
// long. The zero vector stays zero.
func ClampLength(vec Vector3, maxLength float64) Vector3 {
	return vec.Normalize().Scale(maxLength)
}

// Converts a polar angle in degrees (measured from the X axis)
// and a radius into a point on the XY plane.
func Vec3FromAngle(degrees, length float64) Vector3 {
	sin, cos := math.Sincos(mgl64.DegToRad(degrees))
	return Vector3{length * cos, length * sin, 0}
}
