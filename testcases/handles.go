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

// kappa is the relative handle length for a cubic Bézier approximation
// of a quarter circle.
const kappa = 0.5522847498

func circle(r float64) *path.Data {
	k := kappa * r
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}

func roundedCorner() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(100, 0)).
		CubeTo(pt(155, 0), pt(200, 45), pt(200, 100)).
		LineTo(pt(200, 200))
}

var handleCases = []TestCase{
	{
		Name: "s_curve",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			CubeTo(pt(0, 100), pt(100, 0), pt(100, 100)),
		Width:  200,
		Height: 180,
		Zoom:   1,
		Origin: pt(50, 140),
		Flags:  showHandles,
		Labels: []string{"90.0°", "90.0°"},
	},
	{
		Name: "diagonal_handles",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			CubeTo(pt(50, 50), pt(50, 50), pt(100, 0)),
		Width:  180,
		Height: 120,
		Zoom:   1,
		Origin: pt(40, 90),
		Flags:  showHandles,
		Labels: []string{"45.0°", "135.0°"},
	},
	{
		Name:   "rounded_corner",
		Path:   roundedCorner(),
		Width:  280,
		Height: 260,
		Zoom:   1,
		Origin: pt(30, 230),
		Flags:  showAll,
		Labels: []string{"0.0°", "0.0°", "90.0°", "90.0°"},
	},
	{
		Name:   "rounded_corner_lines_only",
		Path:   roundedCorner(),
		Width:  280,
		Height: 260,
		Zoom:   1,
		Origin: pt(30, 230),
		Flags:  showLines,
		Labels: []string{"0.0°", "90.0°"},
	},
	{
		Name:   "circle",
		Path:   circle(100),
		Width:  300,
		Height: 300,
		Zoom:   1,
		Origin: pt(150, 150),
		Flags:  showAll,
		Labels: []string{
			"90.0°", "0.0°", "0.0°", "90.0°",
			"90.0°", "0.0°", "0.0°", "90.0°",
		},
	},
}
