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

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes anti-aliased pixel coverage for glyph outlines and
// leader lines.  Coverage is the fraction of a pixel's area inside the
// shape, from 0 to 1.  Buffers are kept between calls, so a single
// Rasterizer should be reused.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps design space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, of the
	// polygons used to approximate curves.
	Flatness float64

	// Width is the stroke width in design units.
	Width float64

	// smallPathThreshold is the largest bounding box area (in pixels)
	// which is rasterised using full 2D buffers.
	smallPathThreshold int

	cover       []float32 // signed vertical extent per pixel, reused as output
	area        []float32 // area weight per pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	haveBBox         bool // bounding box of the edges, in device space
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer with an identity CTM and a stroke
// width of one design unit.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,

		smallPathThreshold: smallPathThreshold,
	}
}

// transform maps a point using the affine transformation m.
func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// transformLinear applies only the 2×2 part of the CTM.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives the coverage of one
// scanline at a time; the slice is only valid during the call.
func (r *Rasterizer) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)

	r.rasterize(emit)
}

// StrokeLine strokes the straight line from a to b with butt caps.
// Lines of zero length produce no output.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	d := b.Sub(a)
	length := d.Length()
	if !(length >= zeroLengthThreshold) || !(r.Width > 0) {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(r.Width / 2)

	// a butt cap joins the two offset lines directly
	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)

	r.resetEdges()
	r.addEdge(p0, p1)
	r.addEdge(p1, p2)
	r.addEdge(p2, p3)
	r.addEdge(p3, p0)
	r.rasterize(emit)
}

func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errDev := r.transformLinear(e).Length(); errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge transforms the design space line from p0 to p1 to device space
// and adds it to the edge list.  Horizontal edges are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	q0 := transform(r.CTM, p0)
	q1 := transform(r.CTM, p1)

	dy := q1.Y - q0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: q0.X, y0: q0.Y,
		x1: q1.X, y1: q1.Y,
		dxdy: (q1.X - q0.X) / dy,
	})

	xLo, xHi := min(q0.X, q1.X), max(q0.X, q1.X)
	yLo, yHi := min(q0.Y, q1.Y), max(q0.Y, q1.Y)
	if !r.haveBBox {
		r.devXMin, r.devXMax = xLo, xHi
		r.devYMin, r.devYMax = yLo, yHi
		r.haveBBox = true
		return
	}
	r.devXMin = min(r.devXMin, xLo)
	r.devXMax = max(r.devXMax, xHi)
	r.devYMin = min(r.devYMin, yLo)
	r.devYMax = max(r.devYMax, yHi)
}

// rasterize turns the collected edges into coverage values.
func (r *Rasterizer) rasterize(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// For every pixel, cover holds the signed vertical extent of the edges
// crossing it and area holds the same amount weighted by the part of the
// pixel to the right of the crossing.  Summing cover from the left edge
// of the bounding box and adding area gives the winding-weighted area
// inside each pixel.

// accumulateEdge adds the part of e inside scanline y to cover and area.
// The buffers are indexed by x - bboxXMin.  Contributions left of the
// bounding box are carried in the first pixel.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < bboxXMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= bboxXMax:
		return
	case pixLeft == pixRight:
		r.addSpan(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// split the edge at the pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.addSpan(e, lo, hi, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// addSpan adds the part of e between yTop and yBot, which lies inside the
// pixel column pix.
func (r *Rasterizer) addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-(xMid-float64(pix)))
}

// integrateNonZero converts one scanline of cover and area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of this part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmall rasterises using one buffer row per scanline of the bounding
// box.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLarge rasterises one scanline at a time, using an active edge list.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the largest bounding box area, in pixels,
	// handled by fillSmall.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the shortest line which is stroked.
	zeroLengthThreshold = 1e-10
)
