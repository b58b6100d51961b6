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

package plugin

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/angles"
	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/prefs"
)

var errBroken = errors.New("broken")

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Set(string, string) error         { return errBroken }

type countingSurface struct {
	lines, texts int
}

func (s *countingSurface) DrawLine(from, to vec.Vec2, width float64, col color.Color) {
	s.lines++
}

func (s *countingSurface) DrawText(text string, at vec.Vec2, align angles.Quadrant, col color.Color) {
	s.texts++
}

func testOutline() annotate.Outline {
	return annotate.Outline{{
		{{X: 0, Y: 0}, {X: 100, Y: 0}},
		{{X: 100, Y: 0}, {X: 150, Y: 0}, {X: 200, Y: 50}, {X: 200, Y: 100}},
	}}
}

func TestDefaults(t *testing.T) {
	p := New(&prefs.Memory{})
	want := annotate.Flags{ShowLines: true, ShowHandles: false}
	if got := p.Flags(); got != want {
		t.Errorf("Flags() = %+v, want %+v", got, want)
	}
}

func TestToggleTwice(t *testing.T) {
	store := &prefs.Memory{}
	refreshed := 0
	p := New(store, WithRefresher(RefreshFunc(func() { refreshed++ })))

	type toggleCase struct {
		key    string
		toggle func() bool
		get    func(annotate.Flags) bool
	}
	cases := []toggleCase{
		{KeyShowLines, p.ToggleLines, func(f annotate.Flags) bool { return f.ShowLines }},
		{KeyShowHandles, p.ToggleHandles, func(f annotate.Flags) bool { return f.ShowHandles }},
	}
	for _, test := range cases {
		orig := test.get(p.Flags())

		if got := test.toggle(); got == orig {
			t.Errorf("%s: first toggle returned %t", test.key, got)
		}
		if got := test.get(p.Flags()); got == orig {
			t.Errorf("%s: flag not changed", test.key)
		}
		if got := test.toggle(); got != orig {
			t.Errorf("%s: second toggle returned %t", test.key, got)
		}
		if got := test.get(p.Flags()); got != orig {
			t.Errorf("%s: flag not restored", test.key)
		}

		stored, ok, _ := store.Get(test.key)
		if !ok || stored != map[bool]string{true: "true", false: "false"}[orig] {
			t.Errorf("%s: stored value %q, %t", test.key, stored, ok)
		}
	}
	if refreshed != 4 {
		t.Errorf("refreshed %d times, want 4", refreshed)
	}
}

func TestTogglePersists(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "prefs.db")

	store, err := prefs.Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	New(store).ToggleHandles()
	store.Close()

	store, err = prefs.Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if !New(store).Flags().ShowHandles {
		t.Error("toggled flag was not persisted")
	}
}

func TestBrokenStore(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	p := New(brokenStore{})
	if got := p.Flags(); got != (annotate.Flags{ShowLines: true}) {
		t.Errorf("Flags() = %+v", got)
	}
	if got := p.ToggleLines(); got {
		t.Errorf("ToggleLines() = %t, want false", got)
	}
	if !strings.Contains(buf.String(), "cannot save preference") {
		t.Errorf("missing log message, got %q", buf.String())
	}

	// drawing still works
	s := &countingSurface{}
	p.Foreground(testOutline(), 1, s)
	if s.lines != 1 || s.texts != 1 {
		t.Errorf("drew %d lines and %d texts", s.lines, s.texts)
	}
}

func TestMalformedPreference(t *testing.T) {
	store := &prefs.Memory{}
	store.Set(KeyShowHandles, "maybe")
	p := New(store)
	if p.Flags().ShowHandles {
		t.Error("malformed value not replaced by default")
	}
	if !p.ToggleHandles() {
		t.Error("toggling a malformed value did not start from the default")
	}
}

func TestForeground(t *testing.T) {
	store := &prefs.Memory{}
	p := New(store)
	o := testOutline()

	cases := []struct {
		lines, handles bool
		want           int
	}{
		{true, false, 1},
		{true, true, 3},
		{false, true, 2},
		{false, false, 0},
	}
	for _, test := range cases {
		store.Set(KeyShowLines, map[bool]string{true: "true", false: "false"}[test.lines])
		store.Set(KeyShowHandles, map[bool]string{true: "true", false: "false"}[test.handles])

		s := &countingSurface{}
		p.Foreground(o, 2, s)
		if s.lines != test.want || s.texts != test.want {
			t.Errorf("%t/%t: got %d lines, %d texts, want %d",
				test.lines, test.handles, s.lines, s.texts, test.want)
		}
	}
}

func TestWithOptions(t *testing.T) {
	opt := annotate.DefaultOptions
	opt.Placement = annotate.OffsetAnchor
	p := New(&prefs.Memory{}, WithOptions(opt), WithRefresher(nil))

	cmds := p.Commands(testOutline(), 1)
	var aligns []angles.Quadrant
	for _, cmd := range cmds {
		if label, ok := cmd.(annotate.Label); ok {
			aligns = append(aligns, label.Align)
		}
	}
	if d := cmp.Diff([]angles.Quadrant{angles.BottomLeft}, aligns); d != "" {
		t.Errorf("alignments (-want +got):\n%s", d)
	}

	// a nil refresher is ignored
	p.ToggleLines()
}
