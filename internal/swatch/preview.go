// ABOUTME: Half-block terminal preview of a theme: accent bars over the background with a markings baseline
// ABOUTME: Draws a small canvas, scales it with x/image/draw and emits true-color ANSI rows

package swatch

import (
	"fmt"
	goimage "image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/mauromedda/plottheme/pkg/theme"
)

// canvas dimensions in logical pixels before scaling.
const (
	canvasW = 24
	canvasH = 12
)

// barHeights are the relative heights of successive accent bars.
var barHeights = []float64{0.8, 0.55, 0.7, 0.4}

// Preview renders look as a chart-like strip cols cells wide and rows cells
// tall. Colors that do not resolve fall back to white or black.
func Preview(look theme.Look, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	src := drawCanvas(look)
	dst := goimage.NewRGBA(goimage.Rect(0, 0, cols, rows*2))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return renderHalfBlock(dst)
}

func drawCanvas(look theme.Look) *goimage.RGBA {
	img := goimage.NewRGBA(goimage.Rect(0, 0, canvasW, canvasH))
	fill(img, img.Bounds(), resolveOr(look.Background, colorful.Color{R: 1, G: 1, B: 1}))

	baseline := canvasH - 2
	accents := look.Colors()
	if len(accents) > 0 {
		slot := (canvasW - 2) / len(accents)
		for i, c := range accents {
			h := int(barHeights[i%len(barHeights)] * float64(baseline-1))
			x0 := 1 + i*slot + slot/4
			x1 := x0 + max(slot/2, 1)
			fill(img, goimage.Rect(x0, baseline-h, x1, baseline), resolveOr(c, colorful.Color{}))
		}
	}
	fill(img, goimage.Rect(0, baseline, canvasW, baseline+1), resolveOr(look.Markings, colorful.Color{}))
	return img
}

func resolveOr(spec string, fallback colorful.Color) color.Color {
	c, err := Resolve(spec)
	if err != nil {
		c = fallback
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fill(img *goimage.RGBA, r goimage.Rectangle, c color.Color) {
	draw.Draw(img, r, goimage.NewUniform(c), goimage.Point{}, draw.Src)
}

// renderHalfBlock emits one row of ▄ cells per two pixel rows: the top pixel
// becomes the background and the bottom pixel the foreground.
func renderHalfBlock(img goimage.Image) []string {
	bounds := img.Bounds()
	var lines []string
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var b strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			topR, topG, topB := rgbAt(img, x, y)
			var botR, botG, botB uint8
			if y+1 < bounds.Max.Y {
				botR, botG, botB = rgbAt(img, x, y+1)
			}
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

func rgbAt(img goimage.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
