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

package testcases

import "seehuhn.de/go/geom/path"

// Outlines for which no annotations are drawn.
var degenerateCases = []TestCase{
	{
		Name:   "zero_length",
		Path:   openLine(5, 5, 5, 5),
		Width:  40,
		Height: 40,
		Zoom:   1,
		Origin: pt(15, 25),
		Flags:  showAll,
	},
	{
		Name: "collapsed_handles",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			CubeTo(pt(0, 0), pt(100, 100), pt(100, 100)),
		Width:  160,
		Height: 160,
		Zoom:   1,
		Origin: pt(30, 130),
		Flags:  showHandles,
	},
	{
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			QuadTo(pt(50, 100), pt(100, 0)),
		Width:  160,
		Height: 140,
		Zoom:   1,
		Origin: pt(30, 120),
		Flags:  showAll,
	},
	{
		Name:   "hidden",
		Path:   polygon(pt(0, 0), pt(120, 0), pt(60, 90)),
		Width:  200,
		Height: 160,
		Zoom:   1,
		Origin: pt(40, 120),
	},
}
