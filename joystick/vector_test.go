package joystick_test

import (
	"testing"

	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/test"
)

func TestNormalize(t *testing.T) {
	// the zero vector normalizes to the zero vector rather than dividing by
	// zero
	v := joystick.Vector2{}.Normalize()
	test.ExpectEquality(t, v, joystick.Vector2{})

	v = joystick.Vector2{X: 3, Y: 4}.Normalize()
	test.ExpectApproximate(t, v.Length(), 1.0, 1e-9)
	test.ExpectApproximate(t, v.X, 0.6, 1e-9)
	test.ExpectApproximate(t, v.Y, 0.8, 1e-9)

	// direction is preserved for negative components
	v = joystick.Vector2{X: -10, Y: 0}.Normalize()
	test.ExpectEquality(t, v, joystick.Vector2{X: -1, Y: 0})
}

func TestClampLength(t *testing.T) {
	// vectors within the limit are returned unchanged, exactly
	v := joystick.Vector2{X: 3, Y: 4}
	test.ExpectEquality(t, v.ClampLength(5), v)
	test.ExpectEquality(t, v.ClampLength(100), v)

	// vectors over the limit are scaled down to exactly the limit
	c := joystick.Vector2{X: 30, Y: 40}.ClampLength(5)
	test.ExpectApproximate(t, c.Length(), 5.0, 1e-9)
	test.ExpectApproximate(t, c.X, 3.0, 1e-9)
	test.ExpectApproximate(t, c.Y, 4.0, 1e-9)

	// a zero maximum collapses any vector to (almost) nothing
	c = joystick.Vector2{X: 30, Y: 40}.ClampLength(0)
	test.ExpectApproximate(t, c.Length(), 0.0, 1e-9)

	// the zero vector is unaffected by clamping
	test.ExpectEquality(t, joystick.Vector2{}.ClampLength(0), joystick.Vector2{})
}

func TestVectorArithmetic(t *testing.T) {
	a := joystick.Vector2{X: 1, Y: 2}
	b := joystick.Vector2{X: 3, Y: -4}
	test.ExpectEquality(t, a.Add(b), joystick.Vector2{X: 4, Y: -2})
	test.ExpectEquality(t, a.Sub(b), joystick.Vector2{X: -2, Y: 6})
	test.ExpectEquality(t, a.Scale(2), joystick.Vector2{X: 2, Y: 4})
}
