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

package angles

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestQuadrantOfBoundaries(t *testing.T) {
	cases := []struct {
		deg  float64
		want Quadrant
	}{
		{0, Right},
		{22.4999, Right},
		{22.5, TopRight},
		{67.4999, TopRight},
		{67.5, TopCenter},
		{90, TopCenter},
		{112.5, TopLeft},
		{157.5, Left},
		{180, Left},
		{202.5, BottomLeft},
		{247.5, BottomCenter},
		{270, BottomCenter},
		{292.5, BottomRight},
		{337.4999, BottomRight},
		{337.5, Right},
		{359.9999, Right},
		{360, Right},
		{-22.5, Right},
		{-22.5001, BottomRight},
		{-90, BottomCenter},
		{720 + 45, TopRight},
	}
	for _, test := range cases {
		if got := QuadrantOf(test.deg); got != test.want {
			t.Errorf("QuadrantOf(%g) = %s, want %s", test.deg, got, test.want)
		}
	}
}

func TestQuadrantOfPartition(t *testing.T) {
	// walk around the circle in small steps; every label must occur in one
	// contiguous run of 45°, in counter-clockwise order
	const steps = 3600
	count := make(map[Quadrant]int)
	prev := QuadrantOf(-22.5)
	for i := range steps {
		deg := -22.5 + float64(i)*360/steps
		q := QuadrantOf(deg)
		if q >= numQuadrants {
			t.Fatalf("QuadrantOf(%g) = %d", deg, q)
		}
		if q != prev && q != (prev+1)%numQuadrants {
			t.Fatalf("QuadrantOf jumps from %s to %s at %g", prev, q, deg)
		}
		count[q]++
		prev = q
	}
	if len(count) != numQuadrants {
		t.Fatalf("got %d distinct quadrants, want %d", len(count), numQuadrants)
	}
	for q, n := range count {
		if n != steps/numQuadrants {
			t.Errorf("quadrant %s covers %d steps, want %d", q, n, steps/numQuadrants)
		}
	}
}

func TestQuadrantCenter(t *testing.T) {
	for q := Quadrant(0); q < numQuadrants; q++ {
		if got := QuadrantOf(q.Center()); got != q {
			t.Errorf("QuadrantOf(%s.Center()) = %s", q, got)
		}
	}
}

func TestQuadrantString(t *testing.T) {
	want := []string{
		"right", "topright", "topcenter", "topleft",
		"left", "bottomleft", "bottomcenter", "bottomright",
	}
	for i, s := range want {
		if got := Quadrant(i).String(); got != s {
			t.Errorf("Quadrant(%d).String() = %q, want %q", i, got, s)
		}
	}
	if got := Quadrant(9).String(); got != "Quadrant(9)" {
		t.Errorf("out of range quadrant: %q", got)
	}
}

func TestQuadrantAlignment(t *testing.T) {
	cases := []struct {
		q    Quadrant
		h, v int
	}{
		{Right, 1, 0},
		{TopRight, 1, 1},
		{TopCenter, 0, 1},
		{TopLeft, -1, 1},
		{Left, -1, 0},
		{BottomLeft, -1, -1},
		{BottomCenter, 0, -1},
		{BottomRight, 1, -1},
	}
	for _, test := range cases {
		if h, v := test.q.Horizontal(), test.q.Vertical(); h != test.h || v != test.v {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", test.q, h, v, test.h, test.v)
		}
	}
}

func TestSegmentQuadrant(t *testing.T) {
	o := vec.Vec2{}
	cases := []struct {
		b    vec.Vec2
		want Quadrant
	}{
		// the leader of a rightward line points down, so the label
		// hangs below the end of the leader
		{vec.Vec2{X: 100, Y: 0}, TopCenter},
		{vec.Vec2{X: -100, Y: 0}, BottomCenter},
		{vec.Vec2{X: 0, Y: 100}, Left},
		{vec.Vec2{X: 0, Y: -100}, Right},
		{vec.Vec2{X: 100, Y: 100}, TopLeft},
		{vec.Vec2{X: -100, Y: -100}, BottomRight},
	}
	for _, test := range cases {
		got, err := SegmentQuadrant(o, test.b)
		if err != nil {
			t.Errorf("SegmentQuadrant(%v): %v", test.b, err)
			continue
		}
		if got != test.want {
			t.Errorf("SegmentQuadrant(%v) = %s, want %s", test.b, got, test.want)
		}
	}

	_, err := SegmentQuadrant(o, o)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero-length segment: got %v, want ErrDegenerate", err)
	}
}

func TestSegmentQuadrantOpposesLeader(t *testing.T) {
	// The label alignment must put the label on the far side of the leader
	// end: the alignment direction points back towards the segment.
	for i := range 72 {
		theta := float64(i) * 5 * 3.141592653589793 / 180
		b := RotateVector(vec.Vec2{X: 50, Y: 0}, theta)
		q, err := SegmentQuadrant(vec.Vec2{}, b)
		if err != nil {
			t.Fatal(err)
		}
		u, _ := UnitVector(b)
		leader := RotateVector(u, LeaderRotation)
		h, v := q.Horizontal(), q.Vertical()
		if leader.X > 0.5 && h != -1 || leader.X < -0.5 && h != 1 {
			t.Errorf("segment %v: leader %v, alignment %s", b, leader, q)
		}
		if leader.Y > 0.5 && v != -1 || leader.Y < -0.5 && v != 1 {
			t.Errorf("segment %v: leader %v, alignment %s", b, leader, q)
		}
	}
}
