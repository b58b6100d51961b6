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

// Command export writes the test cases, together with the annotations
// computed for them, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Zoom        float64       `json:"zoom"`
	Origin      []float64     `json:"origin"`
	ShowLines   bool          `json:"show_lines"`
	ShowHandles bool          `json:"show_handles"`
	Placement   string        `json:"placement"`
	Path        []jsonSegment `json:"path"`
	Commands    []jsonCommand `json:"commands"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonCommand struct {
	Op       string      `json:"op"`
	Category string      `json:"category"`
	Pts      [][]float64 `json:"pts"`
	Width    float64     `json:"width,omitempty"`
	Text     string      `json:"text,omitempty"`
	Align    string      `json:"align,omitempty"`
	Color    string      `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       tc.Width,
		Height:      tc.Height,
		Zoom:        tc.Zoom,
		Origin:      point(tc.Origin),
		ShowLines:   tc.Flags.ShowLines,
		ShowHandles: tc.Flags.ShowHandles,
		Placement:   tc.Placement.String(),
		Path:        pathToJSON(tc.Path.Iter()),
	}

	for _, c := range tc.Render() {
		switch c := c.(type) {
		case annotate.Leader:
			jtc.Commands = append(jtc.Commands, jsonCommand{
				Op:       "line",
				Category: c.Category.String(),
				Pts:      [][]float64{point(c.From), point(c.To)},
				Width:    c.Width,
				Color:    hexColor(c.Color),
			})
		case annotate.Label:
			jtc.Commands = append(jtc.Commands, jsonCommand{
				Op:       "text",
				Category: c.Category.String(),
				Pts:      [][]float64{point(c.At)},
				Text:     c.Text,
				Align:    c.Align.String(),
				Color:    hexColor(c.Color),
			})
		}
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = point(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}

func point(v vec.Vec2) []float64 {
	return []float64{v.X, v.Y}
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
