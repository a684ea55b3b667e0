// Package test contains assertion helpers for use with the testing package
// from the standard library
package test

import "testing"

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// ExpectInequality is the inverse of ExpectEquality
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, unexpectedValue)
	}
}

// ExpectApproximate is used to test approximate equality between one value
// and another within the given tolerance
func ExpectApproximate(t *testing.T, value float64, expectedValue float64, tolerance float64) {
	t.Helper()
	d := value - expectedValue
	if d < -tolerance || d > tolerance {
		t.Errorf("approximation test failed: '%v' is not within %v of '%v'", value, tolerance, expectedValue)
	}
}

// ExpectSuccess tests argument v for a success condition. a success condition
// is true if v is a boolean true or a nil error
func ExpectSuccess(t *testing.T, v any) {
	t.Helper()
	if !success(v) {
		t.Errorf("expected success (%T)", v)
	}
}

// ExpectFailure tests argument v for a failure condition. a failure condition
// is true if v is a boolean false or a non-nil error
func ExpectFailure(t *testing.T, v any) {
	t.Helper()
	if success(v) {
		t.Errorf("expected failure (%T)", v)
	}
}

func success(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	}
	return false
}
