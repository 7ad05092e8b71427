package quicktween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)

	assert.Equal(t, V3(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, V3(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, V3(-1, -2, -3), a.Neg())
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, V3(-4, 1, 6), a.Mul(b))
	assert.Equal(t, 14.0, a.LengthSquared())
	assert.InDelta(t, math.Sqrt(14), a.Length(), epsilon)

	// inputs are values and stay untouched
	assert.Equal(t, V3(1, 2, 3), a)
}

func TestNormalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	assert.InDelta(t, 1.0, n.Length(), epsilon)
	assert.True(t, n.ApproxEqual(V3(0.6, 0, 0.8), epsilon))

	assert.Equal(t, Zero, Zero.Normalize())
}

func TestClampLengthReprojects(t *testing.T) {
	vectors := []Vector3{V3(1, 0, 0), V3(0.01, 0.02, 0), V3(10, -20, 30), V3(-1, -1, -1)}
	for _, radius := range []float64{0.5, 1, 3, 250} {
		for _, vec := range vectors {
			clamped := ClampLength(vec, radius)
			require.InDelta(t, radius, clamped.Length(), 1e-9*radius, "vec=%v radius=%v", vec, radius)

			// direction preserved
			require.True(t, clamped.Normalize().ApproxEqual(vec.Normalize(), 1e-9))
		}
	}

	t.Run("short vectors are scaled up", func(t *testing.T) {
		assert.True(t, ClampLength(V3(0.1, 0, 0), 2).ApproxEqual(V3(2, 0, 0), epsilon))
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, Zero, ClampLength(Zero, 5))
	})
}

func TestVec3FromAngle(t *testing.T) {
	cases := []struct {
		degrees float64
		length  float64
		want    Vector3
	}{
		{0, 2, V3(2, 0, 0)},
		{90, 2, V3(0, 2, 0)},
		{180, 1, V3(-1, 0, 0)},
		{270, 3, V3(0, -3, 0)},
		{45, math.Sqrt2, V3(1, 1, 0)},
		{-90, 1, V3(0, -1, 0)},
	}
	for _, tc := range cases {
		got := Vec3FromAngle(tc.degrees, tc.length)
		assert.True(t, got.ApproxEqual(tc.want, 1e-12), "angle %v: got %v, want %v", tc.degrees, got, tc.want)
	}
}

func TestRotateAround(t *testing.T) {
	rotated := V3(1, 0, 0).RotateAround(Up, 90)
	assert.True(t, rotated.ApproxEqual(V3(0, 0, -1), 1e-12), "got %v", rotated)

	// rotating around the up axis keeps Y and the length
	point := V3(2, 3, 0)
	for _, degrees := range []float64{-170, -30, 0, 15, 120} {
		r := point.RotateAround(Up, degrees)
		assert.InDelta(t, 3.0, r.Y, 1e-12)
		assert.InDelta(t, point.Length(), r.Length(), 1e-12)
	}
}
