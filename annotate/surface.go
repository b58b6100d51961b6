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
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles"
)

// Surface is a graphics target which can execute draw commands.
// All coordinates are in design space.
type Surface interface {
	// DrawLine strokes a straight line of the given width.
	DrawLine(from, to vec.Vec2, width float64, col color.Color)

	// DrawText shows a single line of text.  The point of the text's
	// bounding box named by align is placed at the anchor.
	// The text is drawn at a fixed size on screen.
	DrawText(text string, at vec.Vec2, align angles.Quadrant, col color.Color)
}

// Issue executes the draw commands on s, in order.
func Issue(s Surface, cmds []DrawCommand) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case Leader:
			s.DrawLine(cmd.From, cmd.To, cmd.Width, cmd.Color)
		case Label:
			s.DrawText(cmd.Text, cmd.At, cmd.Align, cmd.Color)
		}
	}
}
