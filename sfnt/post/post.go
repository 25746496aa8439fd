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

// Package post decodes the fields of the OpenType "post" table this
// reader needs: the italic angle and the fixed-pitch flag. Glyph name
// tables (versions 2.0/2.5) are not decoded; they are irrelevant to
// metrics and classification.
package post

import (
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "post"

// Info holds the post table fields the classifier and face API use.
type Info struct {
	// ItalicAngle is a 16.16 fixed-point value, in degrees
	// counter-clockwise from the vertical.
	ItalicAngle  int32
	IsFixedPitch bool
}

// Read decodes a post table payload's fixed-length header. The
// version field is skipped rather than validated: every post version
// shares this prefix layout.
func Read(data []byte) (*Info, error) {
	c := cursor.New(data)
	if err := c.Skip(4); err != nil { // version
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	italicAngle, err := c.I32()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(2); err != nil { // underlinePosition
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(2); err != nil { // underlineThickness
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	isFixedPitch, err := c.U32()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	return &Info{ItalicAngle: italicAngle, IsFixedPitch: isFixedPitch != 0}, nil
}
