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

// letterV is the outline of a sans-serif capital V, in font design units.
var letterV = polygon(
	pt(0, 700), pt(90, 700), pt(250, 120), pt(410, 700),
	pt(500, 700), pt(300, 0), pt(200, 0),
)

var glyphCases = []TestCase{
	{
		Name:   "letter_v",
		Path:   letterV,
		Width:  160,
		Height: 190,
		Zoom:   0.2,
		Origin: pt(30, 170),
		Flags:  showLines,
		Labels: []string{"0.0°", "105.4°", "74.6°", "0.0°", "74.1°", "0.0°", "105.9°"},
	},
	{
		Name:   "letter_v_large",
		Path:   letterV,
		Width:  600,
		Height: 800,
		Zoom:   1,
		Origin: pt(50, 750),
		Flags:  showLines,
		Labels: []string{"0.0°", "105.4°", "74.6°", "0.0°", "74.1°", "0.0°", "105.9°"},
	},
}
