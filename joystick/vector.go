package joystick

import "math"

// Vector2 is a 2D vector in screen space. It is also the type of the
// joystick's output, in which case both axes are in the range -1 to 1 and the
// combined magnitude is never more than 1
type Vector2 struct {
	X float64
	Y float64
}

// Length returns the Euclidean magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v. the zero vector
// normalizes to the zero vector
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// ClampLength limits the magnitude of the vector to max. vectors already
// within the limit are returned unchanged
func (v Vector2) ClampLength(max float64) Vector2 {
	l := v.Length()
	if l > max {
		return Vector2{X: v.X / l * max, Y: v.Y / l * max}
	}
	return v
}

// Add returns the vector sum of v and w
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector difference of v and w
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector multiplied by the scalar s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}
