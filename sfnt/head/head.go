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

// Package head decodes the OpenType "head" table.
package head

import (
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const magicNumber = 0x5F0F3CF5
const tableTag = "head"

// Info is the subset of the head table the rest of the reader needs.
type Info struct {
	UnitsPerEm uint16
	BBox       [4]int16 // xMin, yMin, xMax, yMax
	MacStyle   uint16
}

// IsBold reports macStyle bit 0.
func (info *Info) IsBold() bool { return info.MacStyle&0x0001 != 0 }

// IsItalic reports macStyle bit 1.
func (info *Info) IsItalic() bool { return info.MacStyle&0x0002 != 0 }

// Read decodes a head table payload.
func Read(data []byte) (*Info, error) {
	c := cursor.New(data)
	if err := c.Skip(12); err != nil { // version, fontRevision, checkSumAdjustment
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	magic, err := c.U32()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if magic != magicNumber {
		return nil, sfnt.Wrap(sfnt.ErrBadMagic, tableTag, "bad magic number")
	}
	if err := c.Skip(2); err != nil { // flags
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	unitsPerEm, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(16); err != nil { // created, modified
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	var bbox [4]int16
	for i := range bbox {
		bbox[i], err = c.I16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
	}
	// pos is now 44: xMin,yMin,xMax,yMax consumed, macStyle follows directly.
	macStyle, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	return &Info{UnitsPerEm: unitsPerEm, BBox: bbox, MacStyle: macStyle}, nil
}
