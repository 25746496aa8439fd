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

// Package hmtx decodes the OpenType "hmtx" table: per-glyph horizontal
// advance width and left side bearing.
package hmtx

import (
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "hmtx"

// Glyph is one entry of the per-glyph metrics array.
type Glyph struct {
	HorzAdvance     uint16
	LeftSideBearing int16
}

// Decode reads numHMetrics explicit (advance, lsb) pairs followed by
// numGlyphs-numHMetrics left-side-bearing-only entries, whose advance
// repeats the last explicit value (the standard hmtx tail run).
func Decode(data []byte, numHMetrics, numGlyphs uint16) ([]Glyph, error) {
	c := cursor.New(data)
	glyphs := make([]Glyph, numGlyphs)

	var lastAdvance uint16
	var i uint16
	for ; i < numHMetrics && i < numGlyphs; i++ {
		adv, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		lsb, err := c.I16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		lastAdvance = adv
		glyphs[i] = Glyph{HorzAdvance: adv, LeftSideBearing: lsb}
	}
	for ; i < numGlyphs; i++ {
		lsb, err := c.I16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		glyphs[i] = Glyph{HorzAdvance: lastAdvance, LeftSideBearing: lsb}
	}

	return glyphs, nil
}
