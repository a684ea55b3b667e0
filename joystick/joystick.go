// Package joystick implements an on-screen touch joystick. the Controller
// converts touch events inside a designated screen area into a continuous 2D
// direction/magnitude signal and exposes enough state for a rendering backend
// to draw a base/tip visual of that signal.
//
// the Controller is single-threaded. it is mutated only through HandleEvent,
// SetWindowSize and Reset, and read through Output, Pressed, Hidden and
// DrawState. if it is shared between goroutines the owner must serialize
// access
package joystick

import (
	"fmt"
	"image"
	"image/color"
)

// sentinel value for the tracked touch when no touch is active
const noTouch = TouchID(-1)

// default tuning values. DeadzoneSize and ClampzoneSize can be changed by the
// owner at any time
const (
	defaultDeadzone  = 10.0
	defaultClampzone = 75.0
)

// Controller is the joystick state machine. create with NewController.
//
// the exported fields are configuration and may be mutated by the owner at
// any time, taking effect on the next event. everything else is live state
// owned exclusively by the Controller's own methods
type Controller struct {
	// the overall rectangular screen area in which the joystick operates
	Area image.Rectangle

	// how the base reacts to the activating touch
	Mode Mode

	// touch offsets from the base center smaller than DeadzoneSize produce
	// zero output
	DeadzoneSize float64

	// the maximum distance the tip can move from the base center. the output
	// magnitude reaches 1.0 at this distance
	ClampzoneSize float64

	// colour of the tip while the joystick is pressed
	PressedColor color.RGBA

	baseCenter        Vector2
	tipCenter         Vector2
	baseDefaultCenter Vector2

	pressed bool
	output  Vector2
	touch   TouchID
	hidden  bool

	baseRadius int
	tipRadius  int

	baseTexture     Texture
	tipTexture      Texture
	defaultTipColor color.RGBA

	windowWidth  int
	windowHeight int

	closed bool
}

// NewController creates a joystick operating in the given screen area. the
// window size is used to convert normalized touch coordinates to pixels.
//
// the base and tip circle textures are created through the renderer. if
// either creation fails, anything already created is released before the
// error is returned
func NewController(rend Renderer, area image.Rectangle, windowWidth int, windowHeight int) (*Controller, error) {
	jy := &Controller{
		Area:          area,
		Mode:          ModeDynamic,
		DeadzoneSize:  defaultDeadzone,
		ClampzoneSize: defaultClampzone,
		PressedColor:  color.RGBA{R: 100, G: 100, B: 100, A: 180},
		touch:         noTouch,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
	}

	// radii are derived from the joystick area and are fixed for the life of
	// the controller because the textures are created at these sizes
	jy.baseRadius = int(float64(min(area.Dx(), area.Dy())) * 0.25)
	jy.tipRadius = int(float64(jy.baseRadius) * 0.6)

	jy.defaultTipColor = color.RGBA{R: 200, G: 200, B: 200, A: 180}

	var err error

	jy.baseTexture, err = rend.CreateCircleTexture(jy.baseRadius, color.RGBA{R: 50, G: 50, B: 50, A: 180})
	if err != nil {
		return nil, fmt.Errorf("joystick: %w", err)
	}

	jy.tipTexture, err = rend.CreateCircleTexture(jy.tipRadius, jy.defaultTipColor)
	if err != nil {
		jy.baseTexture.Release()
		return nil, fmt.Errorf("joystick: %w", err)
	}

	jy.baseDefaultCenter = Vector2{
		X: float64(area.Min.X) + float64(area.Dx())/2,
		Y: float64(area.Min.Y) + float64(area.Dy())/2,
	}
	jy.baseCenter = jy.baseDefaultCenter
	jy.tipCenter = jy.baseDefaultCenter
	jy.hidden = true

	return jy, nil
}

// Close releases the textures owned by the controller. it is safe to call
// Close on a nil controller and to call it more than once
func (jy *Controller) Close() error {
	if jy == nil || jy.closed {
		return nil
	}
	jy.closed = true
	if jy.baseTexture != nil {
		jy.baseTexture.Release()
	}
	if jy.tipTexture != nil {
		jy.tipTexture.Release()
	}
	return nil
}

// SetWindowSize updates the stored window dimensions used to convert
// normalized touch coordinates. window size changes are pushed in by the
// owner, they are not observed automatically
func (jy *Controller) SetWindowSize(width int, height int) {
	jy.windowWidth = width
	jy.windowHeight = height
}

// Output is the current joystick signal. both axes are in the range -1 to 1
// and the combined magnitude is never more than 1. the output is exactly
// (0,0) whenever Pressed is false
func (jy *Controller) Output() Vector2 {
	return jy.output
}

// Pressed is true when the tracked touch is outside the deadzone
func (jy *Controller) Pressed() bool {
	return jy.pressed
}

// Hidden is true when no touch is active. a hidden joystick is not drawn and
// ignores every event except a touch-down
func (jy *Controller) Hidden() bool {
	return jy.hidden
}

// pixelPos converts an event position to screen pixels
func (jy *Controller) pixelPos(ev TouchEvent) Vector2 {
	if ev.Normalized {
		return Vector2{
			X: ev.Pos.X * float64(jy.windowWidth),
			Y: ev.Pos.Y * float64(jy.windowHeight),
		}
	}
	return ev.Pos
}

// pointInArea tests whether the point is inside the joystick area
func (jy *Controller) pointInArea(p Vector2) bool {
	return image.Pt(int(p.X), int(p.Y)).In(jy.Area)
}

// pointInBase tests whether the point is inside the base circle
func (jy *Controller) pointInBase(p Vector2) bool {
	dx := p.X - jy.baseCenter.X
	dy := p.Y - jy.baseCenter.Y
	r := float64(jy.baseRadius)
	return dx*dx+dy*dy <= r*r
}

// HandleEvent advances the joystick state machine by one event. events for
// touches other than the tracked touch are ignored, as is everything except
// a touch-down while the joystick is hidden
func (jy *Controller) HandleEvent(ev TouchEvent) {
	// fast-reject while idle. only a touch-down can activate the joystick
	if jy.hidden && ev.Type != TouchDown {
		return
	}

	switch ev.Type {
	case TouchDown:
		pos := jy.pixelPos(ev)

		if jy.touch != noTouch || !jy.pointInArea(pos) {
			return
		}

		var activate bool
		switch jy.Mode {
		case ModeDynamic, ModeFollowing:
			activate = true
		case ModeFixed:
			activate = jy.pointInBase(pos)
		}
		if !activate {
			return
		}

		if jy.Mode == ModeDynamic || jy.Mode == ModeFollowing {
			jy.baseCenter = pos
		}
		jy.touch = ev.ID
		jy.hidden = false
		jy.tipTexture.SetColor(jy.PressedColor)

		// update immediately so the first frame's output is correct rather
		// than waiting for the first motion event
		jy.update(pos)

	case TouchUp:
		if ev.ID == jy.touch {
			jy.Reset()
		}

	case TouchMove:
		if ev.ID == jy.touch {
			jy.update(jy.pixelPos(ev))
		}
	}
}

// update recalculates tip position and output from the touch position. the
// ordering matters: the base moves (following mode) before the tip is placed,
// and the tip is placed before the output is calculated, so that the output
// is always relative to the final base position for this frame
func (jy *Controller) update(pos Vector2) {
	raw := pos.Sub(jy.baseCenter)
	clamped := raw.ClampLength(jy.ClampzoneSize)

	// a following joystick drags its base along once the touch strictly
	// exceeds the clampzone, keeping the tip at the clampzone boundary
	if jy.Mode == ModeFollowing && raw.Length() > jy.ClampzoneSize {
		jy.baseCenter = pos.Sub(clamped)
	}

	jy.tipCenter = jy.baseCenter.Add(clamped)

	if clamped.Length() > jy.DeadzoneSize {
		jy.pressed = true

		effective := clamped.Length() - jy.DeadzoneSize
		rng := jy.ClampzoneSize - jy.DeadzoneSize

		if rng <= 0 {
			// deadzone is at least as large as the clampzone. a
			// misconfiguration, not an error
			jy.output = Vector2{}
		} else {
			jy.output = clamped.Normalize().Scale(effective / rng)
		}
	} else {
		jy.pressed = false
		jy.output = Vector2{}
	}
}

// Reset returns the joystick to its idle state: no output, no tracked touch,
// base and tip at the default center, hidden. it is called on touch release
// and should also be called by the owner after any external geometry change,
// such as a window resize
func (jy *Controller) Reset() {
	jy.pressed = false
	jy.output = Vector2{}
	jy.touch = noTouch
	jy.tipTexture.SetColor(jy.defaultTipColor)
	jy.baseCenter = jy.baseDefaultCenter
	jy.tipCenter = jy.baseDefaultCenter
	jy.hidden = true
}
