package node

import (
	"image/color"

	"github.com/edwinsyarief/quicktween/tween"
	"github.com/edwinsyarief/quicktween/utils"
)

// A node with a tint color. The color is non-premultiplied so that
// opacity can be animated on its own.
type Sprite struct {
	*Node
	color color.NRGBA
}

func NewSprite(name string, tint color.NRGBA) *Sprite {
	return &Sprite{Node: New(name), color: tint}
}

func (self *Sprite) Color() color.NRGBA { return self.color }

func (self *Sprite) SetColor(tint color.NRGBA) {
	self.color = tint
}

// Interpolates all channels, alpha included, towards the given color.
func (self *Sprite) TweenColor(to color.NRGBA, duration float64, opts ...tween.Option) *tween.Tween {
	return self.tweenColor(func(color.NRGBA) color.NRGBA { return to }, duration, opts)
}

// Interpolates only the alpha channel.
func (self *Sprite) TweenOpacity(alpha uint8, duration float64, opts ...tween.Option) *tween.Tween {
	withAlpha := func(from color.NRGBA) color.NRGBA {
		from.A = alpha
		return from
	}
	return self.tweenColor(withAlpha, duration, opts)
}

func (self *Sprite) tweenColor(to func(from color.NRGBA) color.NRGBA, duration float64, opts []tween.Option) *tween.Tween {
	var from, end color.NRGBA
	return tween.New().
		Call(func() {
			from = self.color
			end = to(from)
		}).
		Scalar(duration, 0, 1, func(ratio float64) {
			self.color = utils.LerpNRGBA(from, end, ratio)
		}, opts...)
}
