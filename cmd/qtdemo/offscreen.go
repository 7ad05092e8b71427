package main

import (
	"image"
	"image/color"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

// A logically sized canvas, projected to the high resolution screen
// with nearest filtering so pixels stay crisp at any window size.
//
// Creating an offscreen involves creating an [*ebiten.Image], so
// it's created once and reused.
type offscreen struct {
	canvas        *ebiten.Image
	width         int
	height        int
	drawImageOpts ebiten.DrawImageOptions
}

func newOffscreen(width, height int) *offscreen {
	return &offscreen{
		canvas: ebiten.NewImage(width, height),
		width:  width, height: height,
	}
}

func (self *offscreen) Target() *ebiten.Image {
	return self.canvas
}

func (self *offscreen) Size() (width, height int) {
	return self.width, self.height
}

// Draws the source with its center at the given logical position.
func (self *offscreen) DrawCentered(source *ebiten.Image, at ebimath.Vector, scaleX, scaleY, radians float64, tint color.NRGBA) {
	bounds := source.Bounds()
	geom := &self.drawImageOpts.GeoM
	geom.Translate(-float64(bounds.Dx())/2.0, -float64(bounds.Dy())/2.0)
	geom.Scale(scaleX, scaleY)
	geom.Rotate(radians)
	geom.Translate(at.X, at.Y)
	self.drawImageOpts.ColorScale.ScaleWithColor(tint)
	self.canvas.DrawImage(source, &self.drawImageOpts)
	self.drawImageOpts.GeoM.Reset()
	self.drawImageOpts.ColorScale.Reset()
}

func (self *offscreen) Fill(fillColor color.Color) {
	self.canvas.Fill(fillColor)
}

func (self *offscreen) Clear() {
	self.canvas.Clear()
}

// Projects the offscreen into the given target, leaving margins
// on the sides that don't match the logical aspect ratio.
func (self *offscreen) Project(target *ebiten.Image) {
	active := activeArea(target.Bounds(), self.width, self.height)
	scaleX := float64(active.Dx()) / float64(self.width)
	scaleY := float64(active.Dy()) / float64(self.height)

	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(scaleX, scaleY)
	opts.GeoM.Translate(float64(active.Min.X), float64(active.Min.Y))
	opts.Filter = ebiten.FilterNearest
	target.DrawImage(self.canvas, &opts)
}

// Returns the part of the high resolution bounds that keeps the
// logical aspect ratio, cropping margins on the excess axis.
func activeArea(hiBounds image.Rectangle, logicalWidth, logicalHeight int) image.Rectangle {
	hiWidth, hiHeight := hiBounds.Dx(), hiBounds.Dy()
	hiAspectRatio := float64(hiWidth) / float64(hiHeight)
	loAspectRatio := float64(logicalWidth) / float64(logicalHeight)

	switch {
	case hiAspectRatio == loAspectRatio: // just scaling
		return hiBounds
	case hiAspectRatio > loAspectRatio: // horz margins
		xMargin := int((float64(hiWidth) - loAspectRatio*float64(hiHeight)) / 2.0)
		return image.Rect(hiBounds.Min.X+xMargin, hiBounds.Min.Y, hiBounds.Max.X-xMargin, hiBounds.Max.Y)
	case loAspectRatio > hiAspectRatio: // vert margins
		yMargin := int((float64(hiHeight) - float64(hiWidth)/loAspectRatio) / 2.0)
		return image.Rect(hiBounds.Min.X, hiBounds.Min.Y+yMargin, hiBounds.Max.X, hiBounds.Max.Y-yMargin)
	default:
		panic("unreachable")
	}
}

// Creates a low resolution image from a simple mask. The value 0
// is transparent, and higher values index the given colors.
func maskToImage(width int, mask []uint8, colors ...color.NRGBA) *ebiten.Image {
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}
	if len(colors) == 0 {
		colors = []color.NRGBA{{255, 255, 255, 255}}
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	for index, value := range mask {
		if value != 0 {
			clr := colors[value-1]
			copy(nrgba.Pix[index<<2:], []uint8{clr.R, clr.G, clr.B, clr.A})
		}
	}
	return ebiten.NewImageFromImage(nrgba)
}
