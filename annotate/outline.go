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

package annotate

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is a piece of an outline, given by its control points in design
// space.  Straight lines have two points, cubic Bézier curves have four.
// Segments with any other number of points are never annotated.
type Segment []vec.Vec2

// Contour is the sequence of segments making up one closed or open path.
type Contour []Segment

// Outline is the list of contours of a glyph.
type Outline []Contour

// OutlineFromPath splits a path into segments.
//
// Every MoveTo starts a new contour.  Lines become two-point segments,
// quadratic curves three-point segments and cubic curves four-point
// segments, each starting at the current point.  Closing a path adds a
// straight segment back to the start of the contour, unless the current
// point already coincides with it.
func OutlineFromPath(p path.Path) Outline {
	var res Outline
	var cur Contour
	var current, start vec.Vec2

	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			start = current

		case path.CmdLineTo:
			cur = append(cur, Segment{current, pts[0]})
			current = pts[0]

		case path.CmdQuadTo:
			cur = append(cur, Segment{current, pts[0], pts[1]})
			current = pts[1]

		case path.CmdCubeTo:
			cur = append(cur, Segment{current, pts[0], pts[1], pts[2]})
			current = pts[2]

		case path.CmdClose:
			if current != start {
				cur = append(cur, Segment{current, start})
			}
			current = start
			flush()
		}
	}
	flush()

	return res
}

// NumSegments returns the total number of segments in the outline.
func (o Outline) NumSegments() int {
	n := 0
	for _, c := range o {
		n += len(c)
	}
	return n
}
