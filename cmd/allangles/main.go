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

// Command allangles draws a glyph together with the angles of its straight
// segments and Bézier handles.  The output is written as a PNG image or as
// a PDF file, depending on the file name extension.
//
// The display flags are kept in a small SQLite database, so that toggles
// made with the -toggle option persist between runs.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/pdfout"
	"seehuhn.de/go/angles/plugin"
	"seehuhn.de/go/angles/prefs"
	"seehuhn.de/go/angles/raster"
)

var (
	fontFile  = flag.String("font", "", "TrueType or OpenType font file (default Go Regular)")
	glyphText = flag.String("glyph", "A", "character to draw")
	emSize    = flag.Float64("size", 400, "size of one em, in pixels")
	outFile   = flag.String("o", "glyph.png", "output file (.png or .pdf)")
	prefsFile = flag.String("prefs", "", "preferences database (default in the user config directory)")
	toggle    = flag.String("toggle", "", "toggle a display flag before drawing (\"lines\" or \"handles\")")
	placement = flag.String("placement", "aligned", "label placement (\"aligned\" or \"offset\")")
	cubic     = flag.Bool("cubic", true, "convert quadratic outlines to cubic Bézier curves")
	menu      = flag.Bool("menu", false, "list the menu items and exit")
	lang      = flag.String("lang", "en", "language for the menu items")
	verbose   = flag.Bool("v", false, "log preference changes to stderr")
)

// glyphColor is used to fill the glyph below the annotations.
var glyphColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

func main() {
	flag.Parse()
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		plugin.SetLogger(slog.New(h))
	}

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	opt := annotate.DefaultOptions
	switch *placement {
	case "aligned":
		opt.Placement = annotate.AlignedAnchor
	case "offset":
		opt.Placement = annotate.OffsetAnchor
	default:
		return fmt.Errorf("unknown placement %q", *placement)
	}

	fname := *prefsFile
	if fname == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(dir, "allangles")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		fname = filepath.Join(dir, "prefs.db")
	}
	store, err := prefs.Open(fname)
	if err != nil {
		return err
	}
	defer store.Close()

	p := plugin.New(store, plugin.WithOptions(opt))

	if *menu {
		tag, err := language.Parse(*lang)
		if err != nil {
			return err
		}
		info := p.Info(tag)
		fmt.Printf("%s: %s\n", info.Name, info.Description)
		for _, item := range p.MenuItems(tag) {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Printf("[%s] %s\n", mark, item.Title)
		}
		return nil
	}

	switch *toggle {
	case "":
		// pass
	case "lines":
		p.ToggleLines()
	case "handles":
		p.ToggleHandles()
	default:
		return fmt.Errorf("unknown display flag %q", *toggle)
	}

	outline, upem, err := loadGlyph(*fontFile, *glyphText)
	if err != nil {
		return err
	}
	if *cubic {
		outline = outline.ToCubic()
	}

	em := *emSize
	if !(em > 0) {
		return fmt.Errorf("invalid size %g", em)
	}
	zoom := em / upem
	size := int(1.6*em + 0.5)
	x0 := 0.3 * em
	y0 := 0.35 * em // baseline, measured from the bottom

	switch ext := strings.ToLower(filepath.Ext(*outFile)); ext {
	case ".png":
		return writePNG(p, outline, size, zoom, x0, y0)
	case ".pdf":
		return writePDF(p, outline, size, zoom, x0, y0)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// loadGlyph returns the outline of the first character of text, together
// with the number of design units per em.
func loadGlyph(fontFile, text string) (path.Path, float64, error) {
	data := goregular.TTF
	if fontFile != "" {
		var err error
		data, err = os.ReadFile(fontFile)
		if err != nil {
			return nil, 0, err
		}
	}
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return nil, 0, errors.New("no glyph given")
	}
	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, 0, err
	}
	gid := cmap.Lookup(r)
	if gid == 0 {
		return nil, 0, fmt.Errorf("font has no glyph for %q", r)
	}
	if f.Outlines == nil {
		return nil, 0, errors.New("font has no outlines")
	}
	return f.Outlines.Path(gid), float64(f.UnitsPerEm), nil
}

func writePNG(p *plugin.Plugin, outline path.Path, size int, zoom, x0, y0 float64) error {
	c, err := raster.NewCanvas(size, size)
	if err != nil {
		return err
	}
	c.Clear(color.White)
	c.SetView(zoom, x0, float64(size)-y0)

	c.FillPath(outline, glyphColor)
	p.Foreground(annotate.OutlineFromPath(outline), c.Zoom(), c)

	out, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	if err := c.WritePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writePDF(p *plugin.Plugin, outline path.Path, size int, zoom, x0, y0 float64) error {
	out, err := os.Create(*outFile)
	if err != nil {
		return err
	}

	m := matrix.Matrix{zoom, 0, 0, zoom, x0, y0}
	page, err := pdfout.New(out, float64(size), float64(size), m)
	if err != nil {
		out.Close()
		return err
	}

	page.FillPath(outline, glyphColor)
	p.Foreground(annotate.OutlineFromPath(outline), page.Zoom(), page)

	if err := page.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
