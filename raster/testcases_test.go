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
	"image/color"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/testcases"
)

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				c, err := NewCanvas(tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				c.CTM = tc.CTM()
				annotate.Issue(c, tc.Render())

				ink := !inkBounds(c.Image).Empty()
				if want := len(tc.Labels) > 0; ink != want {
					t.Errorf("ink = %t, want %t", ink, want)
				}
			})
		}
	}
}

// BenchmarkCanvasAll measures steady-state performance by reusing a single
// canvas across all test cases.
func BenchmarkCanvasAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	c, err := NewCanvas(800, 800)
	if err != nil {
		b.Fatal(err)
	}
	cmds := make([][]annotate.DrawCommand, len(cases))
	for i, tc := range cases {
		cmds[i] = tc.Render()
	}
	fill := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	b.ResetTimer()
	for b.Loop() {
		for i, tc := range cases {
			c.Clear(color.Transparent)
			c.CTM = tc.CTM()
			c.FillPath(tc.Path.Iter(), fill)
			annotate.Issue(c, cmds[i])
		}
	}
}
