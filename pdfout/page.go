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

// Package pdfout draws angle annotations onto a PDF page.
package pdfout

import (
	"errors"
	"image/color"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/angles"
)

// Approximate Helvetica metrics, as fractions of the font size.
const (
	capHeight = 0.718
	descender = 0.207
)

// Page is a single-page PDF document used as a drawing surface.
// It implements the annotate.Surface interface.
type Page struct {
	// TextSize is the label size in PDF points.
	TextSize float64

	page *document.Page
	font font.Instance
	zoom float64
}

// ErrSingularMatrix is returned by [New] if the design space matrix cannot
// be inverted, or contains non-finite values.
var ErrSingularMatrix = errors.New("pdfout: singular matrix")

// New starts a PDF document with a single page of the given size (in PDF
// points), written to w.  The matrix m maps design space to the default
// PDF user space; its scale determines the zoom factor.
func New(w io.Writer, width, height float64, m matrix.Matrix) (*Page, error) {
	zoom := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return nil, ErrSingularMatrix
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	F, err := standard.Helvetica.New(nil)
	if err != nil {
		return nil, err
	}

	page.Transform(m)

	return &Page{
		TextSize: 9,
		page:     page,
		font:     F,
		zoom:     zoom,
	}, nil
}

// Zoom returns the number of PDF points per design unit.
func (p *Page) Zoom() float64 {
	return p.zoom
}

// FillPath fills a design space path using the nonzero winding rule.
func (p *Page) FillPath(outline path.Path, col color.Color) {
	p.page.PushGraphicsState()
	p.page.SetFillColor(convertColor(col))
	empty := true
	for cmd, pts := range outline.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X, pts[0].Y)
			empty = false
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			empty = false
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
	if empty {
		p.page.EndPath()
	} else {
		p.page.Fill()
	}
	p.page.PopGraphicsState()
}

// DrawLine strokes a straight line.  The width is given in design units.
func (p *Page) DrawLine(a, b vec.Vec2, width float64, col color.Color) {
	p.page.PushGraphicsState()
	p.page.SetStrokeColor(convertColor(col))
	p.page.SetLineWidth(width)
	p.page.MoveTo(a.X, a.Y)
	p.page.LineTo(b.X, b.Y)
	p.page.Stroke()
	p.page.PopGraphicsState()
}

// DrawText shows a label at a constant apparent size of TextSize points.
// The point of the text's bounding box named by align is placed at the
// design space point at.
func (p *Page) DrawText(text string, at vec.Vec2, align angles.Quadrant, col color.Color) {
	if text == "" {
		return
	}
	size := p.TextSize / p.zoom

	p.page.PushGraphicsState()
	p.page.SetFillColor(convertColor(col))
	p.page.TextBegin()
	p.page.TextSetFont(p.font, size)
	gg := p.page.TextLayout(nil, text)
	width := gg.TotalWidth()

	x := at.X
	switch align.Horizontal() {
	case 0:
		x -= width / 2
	case 1:
		x -= width
	}
	y := at.Y
	switch align.Vertical() {
	case 1:
		y -= capHeight * size
	case 0:
		y -= capHeight * size / 2
	case -1:
		y += descender * size
	}

	p.page.TextSetMatrix(matrix.Translate(x, y))
	p.page.TextShowGlyphs(gg)
	p.page.TextEnd()
	p.page.PopGraphicsState()
}

// Close writes the page and finishes the PDF document.
func (p *Page) Close() error {
	return p.page.Close()
}

// convertColor maps a Go color to a PDF DeviceRGB color.
// The alpha channel is ignored.
func convertColor(col color.Color) pdfcolor.Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return pdfcolor.DeviceRGB(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255)
}
