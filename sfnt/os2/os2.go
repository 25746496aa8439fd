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

// Package os2 decodes the fields of the OpenType "OS/2" table needed
// for weight/style classification: usWeightClass, the PANOSE vector,
// and fsSelection. Every OS/2 version from 0 through 5 shares this
// prefix, so no version check is required for the fields read here.
package os2

import (
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "OS/2"

// Info holds the OS/2 fields the classifier consumes.
type Info struct {
	WeightClass uint16
	Panose      [10]byte
	FSSelection uint16
}

// IsMonospaced reports the PANOSE monospace convention: family kind 2
// (Latin Text) with proportion 9 (Monospaced).
func (info *Info) IsMonospaced() bool {
	return info.Panose[0] == 2 && info.Panose[3] == 9
}

// Read decodes an OS/2 table payload.
func Read(data []byte) (*Info, error) {
	c := cursor.New(data)
	if err := c.Skip(4); err != nil { // version, xAvgCharWidth
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	weightClass, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(26); err != nil { // usWidthClass, fsType, 10 y-subscript/superscript/strikeout values, sFamilyClass
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	var panose [10]byte
	b, err := c.Bytes(10)
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	copy(panose[:], b)
	if err := c.Skip(20); err != nil { // ulUnicodeRange1..4 (16) + achVendID (4)
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	fsSelection, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	return &Info{WeightClass: weightClass, Panose: panose, FSSelection: fsSelection}, nil
}
