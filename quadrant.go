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

package angles

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Quadrant is one of eight compass directions, spaced 45° apart.
//
// When used to position a label, the quadrant names the point of the
// label's bounding box which is placed on the anchor point.  For example,
// a label with alignment [Left] starts at the anchor and extends to the
// right, and a label with alignment [BottomCenter] sits centred above the
// anchor.  The y-axis points upwards.
type Quadrant uint8

// The eight quadrants, in counter-clockwise order starting from the
// positive x-axis.
const (
	Right Quadrant = iota
	TopRight
	TopCenter
	TopLeft
	Left
	BottomLeft
	BottomCenter
	BottomRight

	numQuadrants = 8
)

var quadrantNames = [numQuadrants]string{
	"right",
	"topright",
	"topcenter",
	"topleft",
	"left",
	"bottomleft",
	"bottomcenter",
	"bottomright",
}

func (q Quadrant) String() string {
	if q >= numQuadrants {
		return "Quadrant(" + strconv.Itoa(int(q)) + ")"
	}
	return quadrantNames[q]
}

// Center returns the direction of the centre of the sector, in degrees.
func (q Quadrant) Center() float64 {
	return float64(q%numQuadrants) * 45
}

// Horizontal returns the horizontal alignment encoded in q:
// -1 for the left edge, 0 for the centre and +1 for the right edge.
func (q Quadrant) Horizontal() int {
	switch q {
	case Left, TopLeft, BottomLeft:
		return -1
	case Right, TopRight, BottomRight:
		return 1
	default:
		return 0
	}
}

// Vertical returns the vertical alignment encoded in q:
// -1 for the bottom edge, 0 for the middle and +1 for the top edge.
func (q Quadrant) Vertical() int {
	switch q {
	case BottomLeft, BottomCenter, BottomRight:
		return -1
	case TopLeft, TopCenter, TopRight:
		return 1
	default:
		return 0
	}
}

// QuadrantOf returns the sector which contains the direction deg (in
// degrees).  Each sector covers [c-22.5°, c+22.5°) around its centre c,
// and the sector [Right] wraps around 0°.  Any finite angle is accepted.
func QuadrantOf(deg float64) Quadrant {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Floor((deg + 22.5) / 45))
	return Quadrant(idx % numQuadrants)
}

// SegmentQuadrant returns the sector containing the direction of the line
// from a to b, turned counter-clockwise by 90°.
//
// Leader lines are drawn on the clockwise side of a segment (see
// [LeaderRotation]), so the result is the alignment which places a label
// at the end of a leader line on the far side from the segment.
func SegmentQuadrant(a, b vec.Vec2) (Quadrant, error) {
	u, err := UnitVector(b.Sub(a))
	if err != nil {
		return 0, err
	}
	deg := math.Atan2(u.Y, u.X)*180/math.Pi + 90
	return QuadrantOf(deg), nil
}
