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

// Package angles computes the orientation of straight lines and curve
// handles in glyph outlines, together with the helper geometry needed to
// place angle labels next to them.
//
// All functions work in font design space and are free of side effects.
// Angles describe the orientation of a line modulo reflection, so a line
// and its reverse report the same value in the range [0, 180).
package angles

import (
	"errors"
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// LeaderRotation is the angle (in radians) by which a unit direction
// vector is rotated to obtain the direction of a leader line.  This is a
// clockwise quarter turn.
const LeaderRotation = 3 * math.Pi / 2

// ErrDegenerate is returned for zero-length or non-finite vectors,
// which have no direction.
var ErrDegenerate = errors.New("degenerate vector")

// UnitVector scales v to length 1.
func UnitVector(v vec.Vec2) (vec.Vec2, error) {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return vec.Vec2{}, ErrDegenerate
	}
	return vec.Vec2{X: v.X / length, Y: v.Y / length}, nil
}

// VectorAngle returns the direction of v, measured in degrees from the
// positive x-axis and reduced to the range [0, 180).  The vectors v and -v
// give the same result.
func VectorAngle(v vec.Vec2) (float64, error) {
	u, err := UnitVector(v)
	if err != nil {
		return 0, err
	}

	deg := math.Mod(math.Atan2(u.Y, u.X)*180/math.Pi, 180)
	if deg < 0 {
		deg += 180
	}
	// Tiny negative values round to 180 after the shift above.
	if deg >= 180 || deg == 0 {
		deg = 0
	}
	return deg, nil
}

// SegmentAngle returns the angle of the line from a to b.
// See [VectorAngle] for the range of the result.
func SegmentAngle(a, b vec.Vec2) (float64, error) {
	return VectorAngle(b.Sub(a))
}

// RotateVector rotates v counter-clockwise by theta radians.
func RotateVector(v vec.Vec2, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Interpolate returns the point a + t*(b-a).
// The parameter t is not restricted to [0, 1].
func Interpolate(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: t*(b.X-a.X) + a.X,
		Y: t*(b.Y-a.Y) + a.Y,
	}
}

// Midpoint returns the point half way between a and b.
func Midpoint(a, b vec.Vec2) vec.Vec2 {
	return Interpolate(a, b, 0.5)
}

// FormatAngle formats an angle in degrees with one fractional digit,
// followed by a degree sign.  Values which round to 180.0 are shown as
// 0.0, since both describe the same orientation.
func FormatAngle(deg float64) string {
	s := strconv.FormatFloat(deg, 'f', 1, 64)
	if s == "-0.0" || s == "180.0" {
		s = "0.0"
	}
	return s + "°"
}
