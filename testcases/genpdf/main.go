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

// Command genpdf generates reference output for the test cases.
// For every case, a PDF file is written using the pdfout package and a PNG
// image is written using the raster package.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/pdfout"
	"seehuhn.de/go/angles/raster"
	"seehuhn.de/go/angles/testcases"
)

const refDir = "testdata/reference"

// glyphColor is used to fill the outline below the annotations.
var glyphColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// PDF origin is bottom-left, the test case origin is given in
	// top-left device coordinates.
	m := matrix.Matrix{tc.Zoom, 0, 0, tc.Zoom, tc.Origin.X, float64(tc.Height) - tc.Origin.Y}
	page, err := pdfout.New(f, float64(tc.Width), float64(tc.Height), m)
	if err != nil {
		return err
	}

	page.FillPath(tc.Path.Iter(), glyphColor)
	annotate.Issue(page, tc.Render())

	if err := page.Close(); err != nil {
		return err
	}
	return f.Close()
}

func generatePNG(tc testcases.TestCase, pngPath string) error {
	c, err := raster.NewCanvas(tc.Width, tc.Height)
	if err != nil {
		return err
	}
	c.Clear(color.White)
	c.CTM = tc.CTM()

	c.FillPath(tc.Path.Iter(), glyphColor)
	annotate.Issue(c, tc.Render())

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := c.WritePNG(f); err != nil {
		return err
	}
	return f.Close()
}
