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

// Package testcases contains outlines with known angle annotations.
// The cases are shared between the unit tests of the drawing surfaces and
// the commands which export reference output.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles/annotate"
)

// TestCase defines a single annotation test.
type TestCase struct {
	Name      string             // lowercase a-z and _ only
	Path      *path.Data         // the glyph outline, in design units
	Width     int                // canvas width in pixels
	Height    int                // canvas height in pixels
	Zoom      float64            // pixels per design unit
	Origin    vec.Vec2           // device position of the design space origin
	Flags     annotate.Flags     // which annotations are shown
	Placement annotate.Placement // label placement strategy
	Labels    []string           // expected label texts, in drawing order
}

// Outline returns the outline of the test case, split into segments.
func (tc *TestCase) Outline() annotate.Outline {
	return annotate.OutlineFromPath(tc.Path.Iter())
}

// Options returns the rendering options for the test case.
func (tc *TestCase) Options() *annotate.Options {
	opt := annotate.DefaultOptions
	opt.Placement = tc.Placement
	return &opt
}

// Render computes the draw commands for the test case.
func (tc *TestCase) Render() []annotate.DrawCommand {
	return annotate.Render(tc.Outline(), tc.Zoom, tc.Flags, tc.Options())
}

// CTM returns the matrix which maps design space to device pixels, with
// the device y-axis pointing down.
func (tc *TestCase) CTM() matrix.Matrix {
	return matrix.Matrix{tc.Zoom, 0, 0, -tc.Zoom, tc.Origin.X, tc.Origin.Y}
}

var (
	showLines   = annotate.Flags{ShowLines: true}
	showHandles = annotate.Flags{ShowHandles: true}
	showAll     = annotate.Flags{ShowLines: true, ShowHandles: true}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func openLine(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2))
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}
