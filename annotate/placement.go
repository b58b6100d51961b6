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
	"math"
	"unicode/utf8"

	"seehuhn.de/go/geom/vec"
)

// Placement selects the strategy used to position angle labels.
type Placement uint8

const (
	// AlignedAnchor places the label at the end of the leader line and
	// chooses the text alignment from the direction of the segment, see
	// [angles.SegmentQuadrant].
	AlignedAnchor Placement = iota

	// OffsetAnchor estimates the size of the label from the number of
	// characters and shifts the anchor away from the leader line by hand.
	// Labels are drawn with bottom-left alignment.
	OffsetAnchor
)

func (p Placement) String() string {
	switch p {
	case AlignedAnchor:
		return "aligned"
	case OffsetAnchor:
		return "offset"
	default:
		return "unknown"
	}
}

// Approximate glyph metrics and spacing for [OffsetAnchor], in screen units.
const (
	charWidth  = 6
	charHeight = 12
	buffer     = 8
)

// offsetAnchor returns the bottom-left corner of the label text for a
// leader line from mid to end.
func offsetAnchor(text string, mid, end vec.Vec2, zoom float64) vec.Vec2 {
	ox := float64(utf8.RuneCountInString(text)) / zoom
	oy := 1 / zoom
	buf := buffer / zoom

	// coordinates which differ by less than tol count as equal
	tol := 1e-6 / zoom
	dx := end.X - mid.X
	dy := end.Y - mid.Y

	at := end
	switch {
	case math.Abs(dx) <= tol:
		at.X -= charWidth * ox / 3
		if dy > 0 {
			at.Y += buf
		} else {
			at.Y -= buf * 0.8
		}
	case dx < 0:
		at.X -= charWidth * ox
	}

	switch {
	case math.Abs(dy) <= tol:
		at.Y -= charHeight / 2 * oy
		if dx > 0 {
			at.X += buf
		} else {
			at.X -= buf
		}
	case dy < 0:
		at.Y -= charHeight * oy
	default:
		at.Y -= charHeight / 2 * oy
	}

	return at
}
