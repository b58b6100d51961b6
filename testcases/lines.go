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

import "seehuhn.de/go/angles/annotate"

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Path:   openLine(0, 0, 100, 0),
		Width:  160,
		Height: 80,
		Zoom:   1,
		Origin: pt(30, 30),
		Flags:  showLines,
		Labels: []string{"0.0°"},
	},
	{
		Name:   "horizontal_hidden",
		Path:   openLine(0, 0, 100, 0),
		Width:  160,
		Height: 80,
		Zoom:   1,
		Origin: pt(30, 30),
		Flags:  showHandles,
	},
	{
		Name:   "vertical",
		Path:   openLine(0, 0, 0, 100),
		Width:  120,
		Height: 160,
		Zoom:   1,
		Origin: pt(30, 130),
		Flags:  showLines,
		Labels: []string{"90.0°"},
	},
	{
		Name:   "diagonal",
		Path:   openLine(0, 0, 100, 100),
		Width:  160,
		Height: 160,
		Zoom:   1,
		Origin: pt(30, 130),
		Flags:  showLines,
		Labels: []string{"45.0°"},
	},
	{
		Name:   "steep_reversed",
		Path:   openLine(60, 100, 0, 0),
		Width:  160,
		Height: 160,
		Zoom:   1,
		Origin: pt(40, 130),
		Flags:  showLines,
		Labels: []string{"59.0°"},
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(0, 0), pt(120, 0), pt(60, 90)),
		Width:  200,
		Height: 160,
		Zoom:   1,
		Origin: pt(40, 120),
		Flags:  showLines,
		Labels: []string{"0.0°", "123.7°", "56.3°"},
	},
	{
		Name:   "triangle_zoomed",
		Path:   polygon(pt(0, 0), pt(120, 0), pt(60, 90)),
		Width:  320,
		Height: 260,
		Zoom:   2,
		Origin: pt(40, 220),
		Flags:  showLines,
		Labels: []string{"0.0°", "123.7°", "56.3°"},
	},
	{
		Name:      "triangle_offset",
		Path:      polygon(pt(0, 0), pt(120, 0), pt(60, 90)),
		Width:     200,
		Height:    160,
		Zoom:      1,
		Origin:    pt(40, 120),
		Flags:     showLines,
		Placement: annotate.OffsetAnchor,
		Labels:    []string{"0.0°", "123.7°", "56.3°"},
	},
}
