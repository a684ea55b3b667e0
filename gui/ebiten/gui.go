// Package ebiten is the graphical frontend for the touchstick demonstration.
// it owns the joystick controller, feeds it touch and mouse events, draws it,
// and publishes the joystick signal on the gui channels
package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/touchstick/gui"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/version"
	input "github.com/quasilyte/ebitengine-input"
)

// speed of the demonstration sprite at full joystick deflection. in pixels
// per tick
const dotSpeed = 4.0

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	started bool
	endGui  chan bool

	stick     *joystick.Controller
	startMode joystick.Mode

	inputHandler *input.Handler
	inputSystem  input.System

	// scratch slices for the per-tick touch queries
	touchIDs []ebiten.TouchID

	// whether the mouse is currently acting as a synthetic touch
	mouseHeld bool

	// window dimensions as of the previous tick. a change forces a reset of
	// the joystick
	windowWidth  int
	windowHeight int

	// the demonstration sprite driven by the joystick output
	dot joystick.Vector2
}

func (eg *guiEbiten) initialise() error {
	keymap := input.Keymap{
		ActionCycleMode: {input.KeyM, input.KeyGamepadY},
		ActionReset:     {input.KeyR},
		ActionQuit:      {input.KeyEscape},
	}
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)

	eg.windowWidth, eg.windowHeight = ebiten.WindowSize()

	// the joystick operates in the left half of the window
	area := image.Rect(0, 0, eg.windowWidth/2, eg.windowHeight)

	var err error
	eg.stick, err = joystick.NewController(renderer{}, area, eg.windowWidth, eg.windowHeight)
	if err != nil {
		return err
	}
	eg.stick.Mode = eg.startMode

	eg.dot = joystick.Vector2{
		X: float64(eg.windowWidth) * 0.75,
		Y: float64(eg.windowHeight) * 0.5,
	}

	eg.started = true
	return nil
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		eg.stick.Close()
		return ebiten.Termination
	default:
	}

	if !eg.started {
		if err := eg.initialise(); err != nil {
			return fmt.Errorf("ebiten: %w", err)
		}
	}

	// handle user input
	quit, err := eg.inputActions()
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	if quit {
		eg.stick.Close()
		return ebiten.Termination
	}

	// a window resize is an external geometry change. push the new size into
	// the joystick and reset it
	if w, h := ebiten.WindowSize(); w != eg.windowWidth || h != eg.windowHeight {
		eg.windowWidth = w
		eg.windowHeight = h
		eg.stick.Area = image.Rect(0, 0, w/2, h)
		eg.stick.SetWindowSize(w, h)
		eg.stick.Reset()
	}

	eg.inputTouch()
	eg.inputMouse()

	// move the demonstration sprite with the joystick signal
	eg.dot = eg.dot.Add(eg.stick.Output().Scale(dotSpeed))
	eg.dot.X = min(max(eg.dot.X, 0), float64(eg.windowWidth))
	eg.dot.Y = min(max(eg.dot.Y, 0), float64(eg.windowHeight))

	// publish the reading. the consumer may not be keeping up, that's fine
	select {
	case eg.g.Readings <- gui.Reading{
		Mode:    eg.stick.Mode,
		Output:  eg.stick.Output(),
		Pressed: eg.stick.Pressed(),
		Hidden:  eg.stick.Hidden(),
	}:
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if !eg.started {
		return
	}

	screen.Fill(color.RGBA{R: 25, G: 25, B: 35, A: 255})

	// outline of the joystick area
	a := eg.stick.Area
	vector.StrokeRect(screen, float32(a.Min.X), float32(a.Min.Y),
		float32(a.Dx()), float32(a.Dy()), 1,
		color.RGBA{R: 60, G: 60, B: 75, A: 255}, false)

	// the demonstration sprite
	vector.DrawFilledCircle(screen, float32(eg.dot.X), float32(eg.dot.Y), 8,
		color.RGBA{R: 220, G: 180, B: 60, A: 255}, true)

	if ds, ok := eg.stick.DrawState(); ok {
		blit(screen, ds.Base, ds.BaseRect)
		blit(screen, ds.Tip, ds.TipRect)
	}

	out := eg.stick.Output()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("mode: %s  output: %+.2f %+.2f  pressed: %v  [M] mode [R] reset",
			eg.stick.Mode, out.X, out.Y, eg.stick.Pressed()), 8, 8)

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return width, height
}

func Launch(endGui chan bool, g *gui.GUI, mode joystick.Mode) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(800, 600)

	eg := &guiEbiten{
		endGui:    endGui,
		g:         g,
		startMode: mode,
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
