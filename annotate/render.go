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

// Package annotate decides which angle annotations to draw for a glyph
// outline and where to put them.
//
// [Render] is a pure function: it turns an outline, the current zoom
// factor and the visibility flags into a list of draw commands.  A
// [Surface] executes these commands against a concrete graphics target.
package annotate

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles"
)

// Flags selects which kinds of annotation are shown.
type Flags struct {
	ShowLines   bool // angles of straight line segments
	ShowHandles bool // angles of cubic curve handles
}

// Category identifies the kind of segment an annotation belongs to.
type Category uint8

const (
	LineAngle Category = iota
	HandleAngle
)

func (c Category) String() string {
	switch c {
	case LineAngle:
		return "line"
	case HandleAngle:
		return "handle"
	default:
		return "unknown"
	}
}

// Options controls the appearance of the annotations.
// Lengths are given in screen units, i.e. in design units at zoom 1.
type Options struct {
	// Placement selects how label anchors are computed.
	Placement Placement

	// LeaderLength is the length of the leader line from the midpoint of
	// a segment to the label.
	LeaderLength float64

	// LineWidth is the stroke width of leader lines.
	LineWidth float64

	// LineColor and HandleColor are used for the leader lines and labels
	// of straight segments and curve handles, respectively.
	LineColor   color.NRGBA
	HandleColor color.NRGBA
}

// DefaultOptions are used by [Render] when no options are given.
var DefaultOptions = Options{
	Placement:    AlignedAnchor,
	LeaderLength: 14,
	LineWidth:    1,
	LineColor:    color.NRGBA{R: 56, G: 217, B: 137, A: 255},
	HandleColor:  color.NRGBA{R: 56, G: 137, B: 217, A: 255},
}

func (opt *Options) color(cat Category) color.NRGBA {
	if cat == HandleAngle {
		return opt.HandleColor
	}
	return opt.LineColor
}

// DrawCommand is one drawing operation produced by [Render].
// The concrete types are [Leader] and [Label].
type DrawCommand interface {
	isDrawCommand()
}

// Leader is a short straight line from the midpoint of a segment
// towards its label.
type Leader struct {
	From, To vec.Vec2 // design space
	Width    float64  // stroke width in design units
	Color    color.NRGBA
	Category Category
}

func (Leader) isDrawCommand() {}

// Label is the text showing the angle of a segment.
type Label struct {
	Text     string
	Angle    float64         // degrees, in [0, 180)
	At       vec.Vec2        // anchor point in design space
	Align    angles.Quadrant // point of the text box placed on the anchor
	Color    color.NRGBA
	Category Category
}

func (Label) isDrawCommand() {}

// Render computes the annotations for all qualifying segments of o.
//
// Two-point segments are annotated if flags.ShowLines is set.  Four-point
// segments contribute their two handles, from the first to the second and
// from the third to the fourth point, if flags.ShowHandles is set.  All
// other segments are ignored, as are segments of zero length.  For every
// annotated line, a [Leader] is emitted, followed by its [Label].
//
// The zoom factor is the number of screen units per design unit.  Leader
// lengths and line widths are divided by zoom, so that they appear at a
// constant size on screen.  If zoom is not a positive, finite number,
// nothing is drawn.  If opt is nil, [DefaultOptions] is used.
func Render(o Outline, zoom float64, flags Flags, opt *Options) []DrawCommand {
	if !(zoom > 0) || math.IsInf(zoom, 1) {
		return nil
	}
	if !flags.ShowLines && !flags.ShowHandles {
		return nil
	}
	if opt == nil {
		opt = &DefaultOptions
	}

	r := &renderer{opt: opt, zoom: zoom}
	for _, contour := range o {
		for _, seg := range contour {
			switch len(seg) {
			case 2:
				if flags.ShowLines {
					r.annotate(seg[0], seg[1], LineAngle)
				}
			case 4:
				if flags.ShowHandles {
					r.annotate(seg[0], seg[1], HandleAngle)
					r.annotate(seg[2], seg[3], HandleAngle)
				}
			}
		}
	}
	return r.cmds
}

type renderer struct {
	opt  *Options
	zoom float64
	cmds []DrawCommand
}

// annotate adds the leader line and label for the line from a to b.
// Degenerate lines are skipped.
func (r *renderer) annotate(a, b vec.Vec2, cat Category) {
	d := b.Sub(a)
	u, err := angles.UnitVector(d)
	if err != nil {
		return
	}
	deg, err := angles.VectorAngle(d)
	if err != nil {
		return
	}
	text := angles.FormatAngle(deg)

	mid := angles.Midpoint(a, b)
	orth := angles.RotateVector(u, angles.LeaderRotation)
	end := mid.Add(orth.Mul(r.opt.LeaderLength / r.zoom))
	if !isFinite(mid) || !isFinite(end) {
		return
	}

	var at vec.Vec2
	var align angles.Quadrant
	switch r.opt.Placement {
	case OffsetAnchor:
		at = offsetAnchor(text, mid, end, r.zoom)
		align = angles.BottomLeft
	default:
		align, err = angles.SegmentQuadrant(a, b)
		if err != nil {
			return
		}
		at = end
	}

	col := r.opt.color(cat)
	r.cmds = append(r.cmds,
		Leader{
			From:     mid,
			To:       end,
			Width:    r.opt.LineWidth / r.zoom,
			Color:    col,
			Category: cat,
		},
		Label{
			Text:     text,
			Angle:    deg,
			At:       at,
			Align:    align,
			Color:    col,
			Category: cat,
		})
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
