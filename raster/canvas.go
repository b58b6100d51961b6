// seehuhn.de/go/angles - angle annotations for glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster draws angle annotations into an RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles"
)

// DefaultTextSize is the label size in pixels.
const DefaultTextSize = 12

// Canvas is a drawing surface backed by an RGBA image.
// It implements the annotate.Surface interface.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Image holds the pixels.
	Image *image.RGBA

	// CTM transforms design space to device pixels.
	// Must be non-singular.
	CTM matrix.Matrix

	// Face is used for labels.  Text is drawn at the native size of the
	// face, independent of CTM.
	Face font.Face

	ras *Rasterizer
}

// NewCanvas allocates a transparent canvas of the given size in pixels.
// The CTM is set up by [Canvas.SetView] with zoom 1 and the design space
// origin at the bottom-left corner of the image.
func NewCanvas(width, height int) (*Canvas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    DefaultTextSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		Face:  face,
		ras:   NewRasterizer(rect.Rect{}),
	}
	c.SetView(1, 0, float64(height))
	return c, nil
}

// SetView sets the CTM so that one design unit is zoom pixels wide and the
// design space origin is at device position (x0, y0).  The y-axis of the
// design space points upwards.
func (c *Canvas) SetView(zoom, x0, y0 float64) {
	c.CTM = matrix.Matrix{zoom, 0, 0, -zoom, x0, y0}
}

// Zoom returns the number of pixels per design unit.
func (c *Canvas) Zoom() float64 {
	m := c.CTM
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// Clear fills the whole image with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPath fills p using the nonzero winding rule.
func (c *Canvas) FillPath(p path.Path, col color.Color) {
	c.setup()
	c.ras.FillNonZero(p, c.painter(col))
}

// DrawLine strokes the line from a to b with butt caps.
// The width is given in design units.
func (c *Canvas) DrawLine(a, b vec.Vec2, width float64, col color.Color) {
	c.setup()
	c.ras.Width = width
	c.ras.StrokeLine(a, b, c.painter(col))
}

func (c *Canvas) setup() {
	b := c.Image.Bounds()
	c.ras.CTM = c.CTM
	c.ras.Clip = rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// painter returns a coverage callback which composites col over the image,
// using the coverage as an additional alpha factor.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA()
	src := [4]float64{float64(sr), float64(sg), float64(sb), float64(sa)}
	img := c.Image
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for i, cov := range coverage {
			a := float64(cov)
			keep := 1 - a*src[3]/0xffff
			pix := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			for k := range pix {
				v := a*src[k]/0x101 + keep*float64(pix[k])
				pix[k] = uint8(min(math.Round(v), 255))
			}
		}
	}
}

// DrawText draws a single line of text.  The point of the text's bounding
// box named by align is placed at the design space point at.
func (c *Canvas) DrawText(text string, at vec.Vec2, align angles.Quadrant, col color.Color) {
	if text == "" {
		return
	}
	anchor := transform(c.CTM, at)
	x, y := c.textOrigin(text, anchor.X, anchor.Y, align)

	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(col),
		Face: c.Face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		},
	}
	d.DrawString(text)
}

// textOrigin returns the device coordinates of the start of the baseline
// of text, when the text is aligned at the device point (ax, ay).
func (c *Canvas) textOrigin(text string, ax, ay float64, align angles.Quadrant) (float64, float64) {
	width := float64(font.MeasureString(c.Face, text)) / 64
	m := c.Face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64

	x := ax
	switch align.Horizontal() {
	case 0:
		x -= width / 2
	case 1:
		x -= width
	}

	// device y grows downwards
	y := ay
	switch align.Vertical() {
	case 1:
		y += ascent
	case 0:
		y += (ascent - descent) / 2
	case -1:
		y -= descent
	}
	return x, y
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image)
}
