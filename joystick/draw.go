package joystick

import "image"

// DrawState is everything a rendering backend needs to draw the joystick.
// the textures remain owned by the Controller
type DrawState struct {
	Base     Texture
	BaseRect image.Rectangle
	Tip      Texture
	TipRect  image.Rectangle
}

// DrawState returns the current draw state. the second return value is false
// when the joystick is hidden, in which case nothing should be drawn
func (jy *Controller) DrawState() (DrawState, bool) {
	if jy.hidden {
		return DrawState{}, false
	}

	return DrawState{
		Base: jy.baseTexture,
		BaseRect: image.Rect(
			int(jy.baseCenter.X)-jy.baseRadius, int(jy.baseCenter.Y)-jy.baseRadius,
			int(jy.baseCenter.X)+jy.baseRadius, int(jy.baseCenter.Y)+jy.baseRadius,
		),
		Tip: jy.tipTexture,
		TipRect: image.Rect(
			int(jy.tipCenter.X)-jy.tipRadius, int(jy.tipCenter.Y)-jy.tipRadius,
			int(jy.tipCenter.X)+jy.tipRadius, int(jy.tipCenter.Y)+jy.tipRadius,
		),
	}, true
}
