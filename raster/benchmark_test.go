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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkRasterizerO measures filling an "O" shape.
func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			o := makeO(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(o.Iter(), func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO fills the same shape using x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float64(size) / 2
			o := makeO(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for cmd, pts := range o.Iter() {
					switch cmd {
					case path.CmdMoveTo:
						r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
					case path.CmdCubeTo:
						r.CubeTo(
							float32(pts[0].X), float32(pts[0].Y),
							float32(pts[1].X), float32(pts[1].Y),
							float32(pts[2].X), float32(pts[2].Y))
					case path.CmdClose:
						r.ClosePath()
					}
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeLine measures drawing a leader line.
func BenchmarkStrokeLine(b *testing.B) {
	r := NewRasterizer(rect.Rect{URx: 200, URy: 200})
	emit := func(y, xMin int, coverage []float32) {}
	from := vec.Vec2{X: 20, Y: 30}
	to := vec.Vec2{X: 160, Y: 170}

	b.ReportAllocs()
	for b.Loop() {
		r.StrokeLine(from, to, emit)
	}
}

// makeO returns an "O" shape: an outer circle and an inner circle of the
// opposite orientation.
func makeO(cx, cy, outerR, innerR float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, outerR, false)
	return addCircle(p, cx, cy, innerR, true)
}

// addCircle appends a circle made of four cubic Bézier curves, starting at
// the top.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if clockwise {
		s = -1
	}
	return p.MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + s*kr, Y: cy - r}, vec.Vec2{X: cx + s*r, Y: cy - kr}, vec.Vec2{X: cx + s*r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + s*r, Y: cy + kr}, vec.Vec2{X: cx + s*kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - s*kr, Y: cy + r}, vec.Vec2{X: cx - s*r, Y: cy + kr}, vec.Vec2{X: cx - s*r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - s*r, Y: cy - kr}, vec.Vec2{X: cx - s*kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		Close()
}
