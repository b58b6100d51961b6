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

package prefs

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("a.missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing key reported as present")
	}

	for _, value := range []string{"true", "false", ""} {
		err = s.Set("a.key", value)
		if err != nil {
			t.Fatal(err)
		}
		got, ok, err := s.Get("a.key")
		if err != nil {
			t.Fatal(err)
		}
		if !ok || got != value {
			t.Errorf("Get() = %q, %t; want %q, true", got, ok, value)
		}
	}

	err = s.Set("b.key", "x")
	if err != nil {
		t.Fatal(err)
	}
	got, _, _ := s.Get("a.key")
	if got != "" {
		t.Errorf("setting b.key changed a.key to %q", got)
	}
}

func TestMemory(t *testing.T) {
	testStore(t, &Memory{})
}

func TestSQLiteInMemory(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	testStore(t, s)
}

func TestSQLitePersistence(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Set("allangles.showLines", "false")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Close()
	if err != nil {
		t.Fatal(err)
	}

	s, err = Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	value, ok, err := s.Get("allangles.showLines")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "false" {
		t.Errorf("after reopening: got %q, %t", value, ok)
	}
}

func TestSQLiteClosed(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, _, err := s.Get("x"); err == nil {
		t.Error("Get on closed store succeeded")
	}
	if err := s.Set("x", "y"); err == nil {
		t.Error("Set on closed store succeeded")
	}
}
