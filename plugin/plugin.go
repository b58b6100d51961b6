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

// Package plugin connects the angle annotations to a host application.
//
// The host supplies a preference store for the visibility flags, and
// optionally a [Refresher] which redraws the edit view.  It calls
// [Plugin.Foreground] on every redraw and exposes the toggle actions from
// [Plugin.MenuItems] to the user.  All methods are expected to be called
// from the host's UI thread.
package plugin

import (
	"strconv"

	"seehuhn.de/go/angles/annotate"
	"seehuhn.de/go/angles/prefs"
)

// Preference keys for the visibility flags.
const (
	KeyShowLines   = "allangles.showLines"
	KeyShowHandles = "allangles.showHandles"
)

// Values used while a flag has never been set.
const (
	defaultShowLines   = true
	defaultShowHandles = false
)

// Refresher requests a redraw of the active edit view.
//
// Refreshing is advisory.  If there is no active view, Refresh does
// nothing, and the new state becomes visible on the next redraw.
type Refresher interface {
	Refresh()
}

// RefreshFunc adapts an ordinary function to the [Refresher] interface.
type RefreshFunc func()

// Refresh calls f.
func (f RefreshFunc) Refresh() {
	f()
}

type nopRefresher struct{}

func (nopRefresher) Refresh() {}

// Plugin holds the state of the angle annotation plugin.
type Plugin struct {
	store     prefs.Store
	refresher Refresher
	opt       annotate.Options
}

// Option configures a [Plugin].
type Option func(*Plugin)

// WithRefresher sets the function used to redraw the edit view after a
// flag has been toggled.
func WithRefresher(r Refresher) Option {
	return func(p *Plugin) {
		if r != nil {
			p.refresher = r
		}
	}
}

// WithOptions sets the appearance of the annotations.
func WithOptions(opt annotate.Options) Option {
	return func(p *Plugin) {
		p.opt = opt
	}
}

// New creates a plugin which keeps its visibility flags in store.
func New(store prefs.Store, opts ...Option) *Plugin {
	p := &Plugin{
		store:     store,
		refresher: nopRefresher{},
		opt:       annotate.DefaultOptions,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Flags returns the current visibility flags.
// If the preference store fails, the defaults are used.
func (p *Plugin) Flags() annotate.Flags {
	return annotate.Flags{
		ShowLines:   p.getBool(KeyShowLines, defaultShowLines),
		ShowHandles: p.getBool(KeyShowHandles, defaultShowHandles),
	}
}

// ToggleLines shows or hides the angles of straight line segments.
// The new state is returned.
func (p *Plugin) ToggleLines() bool {
	return p.toggle(KeyShowLines, defaultShowLines)
}

// ToggleHandles shows or hides the angles of curve handles.
// The new state is returned.
func (p *Plugin) ToggleHandles() bool {
	return p.toggle(KeyShowHandles, defaultShowHandles)
}

func (p *Plugin) toggle(key string, def bool) bool {
	val := !p.getBool(key, def)
	err := p.store.Set(key, strconv.FormatBool(val))
	if err != nil {
		Logger().Warn("cannot save preference", "key", key, "error", err)
	} else {
		Logger().Debug("toggled", "key", key, "value", val)
	}
	p.refresher.Refresh()
	return val
}

func (p *Plugin) getBool(key string, def bool) bool {
	s, ok, err := p.store.Get(key)
	if err != nil {
		Logger().Warn("cannot read preference", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		Logger().Warn("malformed preference", "key", key, "value", s)
		return def
	}
	return val
}

// Commands returns the draw commands for the current redraw.
// The flags are read from the preference store on every call.
func (p *Plugin) Commands(o annotate.Outline, zoom float64) []annotate.DrawCommand {
	return annotate.Render(o, zoom, p.Flags(), &p.opt)
}

// Foreground draws the angle annotations for o onto s.  This is the entry
// point called by the host on every redraw.  The zoom factor is the number
// of screen units per design unit.
func (p *Plugin) Foreground(o annotate.Outline, zoom float64, s annotate.Surface) {
	annotate.Issue(s, p.Commands(o, zoom))
}
