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
	"golang.org/x/text/language"
)

// Info describes the plugin to the host.
type Info struct {
	// Name is shown in the host's view menu.
	Name string

	// Description is shown in the general context menu.
	Description string
}

// MenuItem is a toggle command offered to the user.
type MenuItem struct {
	Title   string
	Checked bool
	Action  func()
}

type messages struct {
	name        string
	description string
	showLines   string
	hideLines   string
	showHandles string
	hideHandles string
}

// The first entry is used when no better match is found.
var supported = []language.Tag{
	language.English,
	language.German,
}

var catalog = []messages{
	{
		name:        "All Angles",
		description: "Show angles for all straight line segments on the layer.",
		showLines:   "Show Line Angles",
		hideLines:   "Hide Line Angles",
		showHandles: "Show Handle Angles",
		hideHandles: "Hide Handle Angles",
	},
	{
		name:        "Alle Winkel",
		description: "Zeigt die Winkel aller geraden Segmente der Ebene an.",
		showLines:   "Linienwinkel einblenden",
		hideLines:   "Linienwinkel ausblenden",
		showHandles: "Anfasserwinkel einblenden",
		hideHandles: "Anfasserwinkel ausblenden",
	},
}

var matcher = language.NewMatcher(supported)

func lookup(tag language.Tag) *messages {
	_, idx, _ := matcher.Match(tag)
	return &catalog[idx]
}

// Info returns the plugin metadata, localized for the given language.
func (p *Plugin) Info(tag language.Tag) Info {
	msg := lookup(tag)
	return Info{
		Name:        msg.name,
		Description: msg.description,
	}
}

// MenuItems returns the toggle commands, localized for the given language.
// The titles and check marks describe the state at the time of the call,
// so the host should fetch new items after every toggle.
func (p *Plugin) MenuItems(tag language.Tag) []MenuItem {
	msg := lookup(tag)
	flags := p.Flags()

	lines := MenuItem{
		Title:   msg.showLines,
		Checked: flags.ShowLines,
		Action:  func() { p.ToggleLines() },
	}
	if flags.ShowLines {
		lines.Title = msg.hideLines
	}

	handles := MenuItem{
		Title:   msg.showHandles,
		Checked: flags.ShowHandles,
		Action:  func() { p.ToggleHandles() },
	}
	if flags.ShowHandles {
		handles.Title = msg.hideHandles
	}

	return []MenuItem{lines, handles}
}
