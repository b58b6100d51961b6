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

// Package prefs stores user preferences as string key/value pairs.
//
// Keys should be namespaced by the component which owns them, for example
// "allangles.showLines".
package prefs

// Store is a key/value store for preferences.
type Store interface {
	// Get returns the value stored under key.  If the key is not present,
	// ok is false and err is nil.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Memory is a Store which keeps all values in memory.
// The zero value is an empty store, ready to use.
//
// A Memory store is not safe for concurrent use.
type Memory struct {
	values map[string]string
}

// Get implements the [Store] interface.
func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements the [Store] interface.
func (m *Memory) Set(key, value string) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
