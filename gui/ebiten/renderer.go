package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/touchstick/joystick"
)

// renderer implements joystick.Renderer over ebiten images
type renderer struct{}

// CreateCircleTexture implements the joystick.Renderer interface. the circle
// is drawn white and the requested colour is applied as the initial tint, so
// that later tint changes replace the colour rather than multiply it
func (r renderer) CreateCircleTexture(radius int, c color.RGBA) (joystick.Texture, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle texture: radius must be positive (%d)", radius)
	}

	diameter := radius * 2
	img := ebiten.NewImage(diameter, diameter)
	vector.DrawFilledCircle(img, float32(radius), float32(radius), float32(radius),
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)

	return &texture{img: img, tint: c}, nil
}

type texture struct {
	img      *ebiten.Image
	tint     color.RGBA
	released bool
}

func (t *texture) SetColor(c color.RGBA) {
	t.tint = c
}

func (t *texture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.img.Deallocate()
}

// blit draws a joystick texture into the destination rectangle. textures not
// created by this backend are ignored
func blit(screen *ebiten.Image, tex joystick.Texture, dst image.Rectangle) {
	t, ok := tex.(*texture)
	if !ok || t.released {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.ColorScale.ScaleWithColor(t.tint)
	screen.DrawImage(t.img, &op)
}
