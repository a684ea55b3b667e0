// Package gui is the connective tissue between the graphical frontend and
// whatever wants to consume the joystick signal. the two sides run in
// different goroutines and communicate only through the channels in the GUI
// type
package gui

import (
	"github.com/jetsetilly/touchstick/joystick"
)

// Reading is a snapshot of the joystick signal taken once per frame
type Reading struct {
	Mode    joystick.Mode
	Output  joystick.Vector2
	Pressed bool
	Hidden  bool
}

// GUI is the communication channels between the frontend and the signal
// consumer. channels are buffered and the frontend sends without blocking. a
// consumer that falls behind misses readings, it is never a brake on the
// frontend
type GUI struct {
	Readings chan Reading
}

func NewGUI() *GUI {
	return &GUI{
		Readings: make(chan Reading, 1),
	}
}
