package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/touchstick/joystick"
	input "github.com/quasilyte/ebitengine-input"
)

// actions for the demonstration controls. these are controls for the demo
// window, they are not a joystick input path
const (
	ActionCycleMode input.Action = iota
	ActionReset
	ActionQuit
)

// touch id used for the synthetic touch generated by the mouse. ebiten touch
// ids are small non-negative integers so a large constant can't collide
const mouseTouch = joystick.TouchID(1 << 30)

func (eg *guiEbiten) inputActions() (quit bool, err error) {
	eg.inputSystem.Update()

	if eg.inputHandler.ActionIsJustPressed(ActionQuit) {
		return true, nil
	}

	if eg.inputHandler.ActionIsJustPressed(ActionCycleMode) {
		// reset before changing mode so the mode switch never happens
		// mid-gesture
		eg.stick.Reset()
		switch eg.stick.Mode {
		case joystick.ModeFixed:
			eg.stick.Mode = joystick.ModeDynamic
		case joystick.ModeDynamic:
			eg.stick.Mode = joystick.ModeFollowing
		case joystick.ModeFollowing:
			eg.stick.Mode = joystick.ModeFixed
		}
	}

	if eg.inputHandler.ActionIsJustPressed(ActionReset) {
		eg.stick.Reset()
	}

	return false, nil
}

// inputTouch forwards real touch events to the joystick. positions from
// ebiten are already in pixels
func (eg *guiEbiten) inputTouch() {
	eg.touchIDs = inpututil.AppendJustPressedTouchIDs(eg.touchIDs[:0])
	for _, id := range eg.touchIDs {
		x, y := ebiten.TouchPosition(id)
		eg.stick.HandleEvent(joystick.TouchEvent{
			Type: joystick.TouchDown,
			ID:   joystick.TouchID(id),
			Pos:  joystick.Vector2{X: float64(x), Y: float64(y)},
		})
	}

	eg.touchIDs = ebiten.AppendTouchIDs(eg.touchIDs[:0])
	for _, id := range eg.touchIDs {
		if inpututil.TouchPressDuration(id) > 1 {
			x, y := ebiten.TouchPosition(id)
			eg.stick.HandleEvent(joystick.TouchEvent{
				Type: joystick.TouchMove,
				ID:   joystick.TouchID(id),
				Pos:  joystick.Vector2{X: float64(x), Y: float64(y)},
			})
		}
	}

	eg.touchIDs = inpututil.AppendJustReleasedTouchIDs(eg.touchIDs[:0])
	for _, id := range eg.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		eg.stick.HandleEvent(joystick.TouchEvent{
			Type: joystick.TouchUp,
			ID:   joystick.TouchID(id),
			Pos:  joystick.Vector2{X: float64(x), Y: float64(y)},
		})
	}
}

// inputMouse lets the mouse act as a synthetic touch so the demonstration
// works on the desktop. the position is forwarded in normalized coordinates,
// exercising the same conversion path that normalized finger events use
func (eg *guiEbiten) inputMouse() {
	norm := func() joystick.Vector2 {
		x, y := ebiten.CursorPosition()
		return joystick.Vector2{
			X: float64(x) / float64(eg.windowWidth),
			Y: float64(y) / float64(eg.windowHeight),
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		eg.mouseHeld = true
		eg.stick.HandleEvent(joystick.TouchEvent{
			Type:       joystick.TouchDown,
			ID:         mouseTouch,
			Pos:        norm(),
			Normalized: true,
		})
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		eg.mouseHeld = false
		eg.stick.HandleEvent(joystick.TouchEvent{
			Type:       joystick.TouchUp,
			ID:         mouseTouch,
			Pos:        norm(),
			Normalized: true,
		})
		return
	}

	if eg.mouseHeld {
		eg.stick.HandleEvent(joystick.TouchEvent{
			Type:       joystick.TouchMove,
			ID:         mouseTouch,
			Pos:        norm(),
			Normalized: true,
		})
	}
}
