// Package overlay draws a coordinate grid onto captured screenshots so
// agents can aim mouse actions at absolute coordinates. Annotation happens
// on the caller's side; the captured payload itself is never modified in
// transit.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultGridStep is the default grid pitch in pixels.
const DefaultGridStep = 100

var (
	lineColor    = color.RGBA{R: 255, G: 0, B: 0, A: 100}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Grid returns a copy of img with grid lines every step pixels and "(x,y)"
// labels at the intersections. step values below 1 use DefaultGridStep.
func Grid(img image.Image, step int) *image.RGBA {
	if step < 1 {
		step = DefaultGridStep
	}
	rgba := toRGBA(img)
	bounds := rgba.Bounds()

	for x := bounds.Min.X; x < bounds.Max.X; x += step {
		drawVLine(rgba, x, lineColor)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		drawHLine(rgba, y, lineColor)
	}

	// Label intersections, skipping the origin row and column where labels
	// would clip at the image edge.
	for x := bounds.Min.X + step; x < bounds.Max.X; x += step {
		for y := bounds.Min.Y + step; y < bounds.Max.Y; y += step {
			label := coordLabel(x, y)
			drawTextWithOutline(rgba, label, x, y)
		}
	}
	return rgba
}

func coordLabel(x, y int) string {
	return fmt.Sprintf("(%d,%d)", x, y)
}

// toRGBA converts any image to RGBA for drawing.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func drawVLine(img *image.RGBA, x int, c color.Color) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		img.Set(x, y, c)
	}
}

func drawHLine(img *image.RGBA, y int, c color.Color) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		img.Set(x, y, c)
	}
}

// drawTextWithOutline draws text centered at (x, y) with a 1px outline for
// visibility against arbitrary desktop content.
func drawTextWithOutline(img *image.RGBA, text string, x, y int) {
	// basicfont.Face7x13: 7px advance, 13px height.
	textWidth := len(text) * 7
	offsetX := x - textWidth/2
	offsetY := y + 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}
