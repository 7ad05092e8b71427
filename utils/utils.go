// Color helpers used by sprite tweens and the demo.
package utils

import (
	"image/color"
	"math"
)

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Converts a color to float32 RGBA values in [0, 1] range.
//
// This is the format that ebiten.ColorScale and ebiten.Vertex expect.
func ColorToF32(clr color.Color) (r, g, b, a float32) {
	r16, g16, b16, a16 := clr.RGBA()
	return float32(r16) / 65535.0, float32(g16) / 65535.0, float32(b16) / 65535.0, float32(a16) / 65535.0
}

// Interpolates two non-premultiplied colors channel by channel.
// The ratio is not clamped, so overshooting easings (back, elastic)
// saturate at the channel limits instead of wrapping around.
func LerpNRGBA(from, to color.NRGBA, ratio float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(from.R, to.R, ratio),
		G: lerpChannel(from.G, to.G, ratio),
		B: lerpChannel(from.B, to.B, ratio),
		A: lerpChannel(from.A, to.A, ratio),
	}
}

func lerpChannel(from, to uint8, ratio float64) uint8 {
	value := float64(from) + (float64(to)-float64(from))*ratio
	return uint8(math.Round(math.Max(0, math.Min(255, value))))
}
