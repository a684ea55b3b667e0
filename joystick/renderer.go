package joystick

import "image/color"

// Renderer is the rendering capability the Controller needs at construction.
// it is deliberately narrow: the Controller only ever asks for filled circle
// textures for the base and tip visuals. the gui backend implements this over
// whatever graphics library it uses
type Renderer interface {
	CreateCircleTexture(radius int, c color.RGBA) (Texture, error)
}

// Texture is a circle texture owned by the Controller. the Controller
// releases both of its textures when it is closed
type Texture interface {
	// SetColor changes the colour modulation applied when the texture is
	// blitted
	SetColor(c color.RGBA)

	// Release frees the texture. calling Release more than once is safe
	Release()
}
