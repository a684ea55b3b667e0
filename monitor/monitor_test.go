package monitor

import (
	"strings"
	"testing"

	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/test"
)

func TestPrintOnChange(t *testing.T) {
	var b strings.Builder
	m := &monitor{w: &b, styles: newStyles()}

	idle := gui.Reading{Mode: joystick.ModeDynamic, Hidden: true}

	// repeated identical readings print only once
	m.print(idle)
	m.print(idle)
	m.print(idle)
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 1)
	test.ExpectSuccess(t, strings.Contains(b.String(), "idle"))

	// a changed reading prints a new line
	m.print(gui.Reading{
		Mode:    joystick.ModeDynamic,
		Output:  joystick.Vector2{X: 0, Y: 0.615},
		Pressed: true,
	})
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 2)
	test.ExpectSuccess(t, strings.Contains(b.String(), "+0.615"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "pressed"))
}
