// seehuhn.de/go/fontkit - a library for reading and matching OpenType/TrueType fonts
// Copyright (C) 2026  fontkit contributors
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

// Package maxp decodes the OpenType "maxp" table.
package maxp

import (
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "maxp"

// Info holds the glyph count, the only field this reader needs from maxp.
type Info struct {
	NumGlyphs uint16
}

// Read decodes a maxp table payload. Only the version-independent
// prefix (version, numGlyphs) is read; the remaining fields differ
// between versions 0.5 and 1.0 and are not needed here.
func Read(data []byte) (*Info, error) {
	c := cursor.New(data)
	if err := c.Skip(4); err != nil { // version
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	numGlyphs, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	return &Info{NumGlyphs: numGlyphs}, nil
}
