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

// Package cmap decodes the OpenType "cmap" table, restricted to the
// single subtable this reader supports: format 4, the common
// BMP-only Windows/Unicode encoding.
package cmap

import (
	"errors"

	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "cmap"

var (
	// ErrNoSubtable means no Windows/Unicode encoding record was found.
	ErrNoSubtable = errors.New("cmap: no Windows/Unicode encoding record")
	// ErrUnsupportedFormat means the selected subtable was not format 4.
	ErrUnsupportedFormat = errors.New("cmap: unsupported subtable format")
	// ErrCorrupt means a structural invariant of format 4 was violated
	// (odd segCountX2/idRangeOffset, or an out-of-range glyph index).
	ErrCorrupt = errors.New("cmap: corrupt format-4 subtable")
)

// Range is a contiguous, inclusive span of codepoints covered by the
// chosen subtable.
type Range struct {
	Start, Stop rune
}

// Table is the decoded result: a codepoint-to-glyph map plus the
// covered ranges and the maximum codepoint seen.
type Table struct {
	GlyphForRune map[rune]uint16
	Ranges       []Range
	MaxCodepoint rune
}

// encodingRecord is one entry of the cmap header's subtable list.
type encodingRecord struct {
	platformID, encodingID uint16
	offset                 uint32
}

// isWindowsUnicode reports whether (platformID, encodingID) is one of
// the Windows/Unicode encodings this reader accepts.
func isWindowsUnicode(platformID, encodingID uint16) bool {
	if platformID != 3 {
		return false
	}
	switch encodingID {
	case 0, 1, 4:
		return true
	default:
		return false
	}
}

// Read decodes a cmap table payload: it walks the encoding record
// list, selects the first Windows/Unicode record, and decodes its
// subtable as format 4. numGlyphs bounds valid glyph indices.
func Read(data []byte, numGlyphs uint16) (*Table, error) {
	c := cursor.New(data)
	if err := c.Skip(2); err != nil { // version
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	numTables, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	var chosen *encodingRecord
	for i := uint16(0); i < numTables; i++ {
		platformID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		encodingID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		offset, err := c.U32()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		if chosen == nil && isWindowsUnicode(platformID, encodingID) {
			rec := encodingRecord{platformID, encodingID, offset}
			chosen = &rec
		}
	}
	if chosen == nil {
		return nil, sfnt.WrapErr(sfnt.ErrUnsupportedCmapFormat, tableTag, ErrNoSubtable)
	}

	if int(chosen.offset)+2 > len(data) {
		return nil, sfnt.WrapCursor(tableTag, cursor.ErrUnexpectedEnd)
	}
	format, err := cursor.U16At(data, int(chosen.offset))
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if format != 4 {
		return nil, sfnt.WrapErr(sfnt.ErrUnsupportedCmapFormat, tableTag, ErrUnsupportedFormat)
	}

	return decodeFormat4(data[chosen.offset:], numGlyphs)
}

// decodeFormat4 decodes a format-4 subtable starting at sub[0]. The
// segment range [startCount, endCount] is treated as inclusive, per
// the resolution of the source's half-open-vs-inclusive ambiguity.
func decodeFormat4(sub []byte, numGlyphs uint16) (*Table, error) {
	c := cursor.New(sub)
	if err := c.Skip(2); err != nil { // format, already known to be 4
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(2); err != nil { // length
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(2); err != nil { // language
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	segCountX2, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if segCountX2%2 != 0 {
		return nil, sfnt.WrapErr(sfnt.ErrCorruptCmap, tableTag, ErrCorrupt)
	}
	segCount := int(segCountX2 / 2)
	if err := c.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	endCount := make([]uint16, segCount)
	for i := range endCount {
		endCount[i], err = c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
	}
	if err := c.Skip(2); err != nil { // reservedPad
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	startCount := make([]uint16, segCount)
	for i := range startCount {
		startCount[i], err = c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
	}
	idDelta := make([]int16, segCount)
	for i := range idDelta {
		idDelta[i], err = c.I16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
	}

	// anchor is the byte offset of the start of the idRangeOffset
	// array within sub; it is the base for the pointer arithmetic
	// used when idRangeOffset[s] != 0.
	anchor := c.Pos()
	idRangeOffset := make([]uint16, segCount)
	for i := range idRangeOffset {
		idRangeOffset[i], err = c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
	}

	result := &Table{GlyphForRune: make(map[rune]uint16)}
	for s := 0; s < segCount; s++ {
		start, end := startCount[s], endCount[s]
		if start > end {
			continue
		}
		for ch := uint32(start); ch <= uint32(end); ch++ {
			var glyph uint16
			if idRangeOffset[s] == 0 {
				glyph = uint16(uint32(ch) + uint32(uint16(idDelta[s])))
			} else {
				if idRangeOffset[s]%2 != 0 {
					return nil, sfnt.WrapErr(sfnt.ErrCorruptCmap, tableTag, ErrCorrupt)
				}
				addr := anchor + 2*s + 2*int(ch-uint32(start)) + int(idRangeOffset[s])
				value, err := cursor.U16At(sub, addr)
				if err != nil {
					return nil, sfnt.WrapCursor(tableTag, err)
				}
				if value == 0 {
					if ch == 0xFFFF {
						break
					}
					continue
				}
				glyph = uint16(uint32(value) + uint32(uint16(idDelta[s])))
			}
			if glyph >= numGlyphs {
				return nil, sfnt.WrapErr(sfnt.ErrCorruptCmap, tableTag, ErrCorrupt)
			}
			result.GlyphForRune[rune(ch)] = glyph
			if rune(ch) > result.MaxCodepoint {
				result.MaxCodepoint = rune(ch)
			}
			if ch == 0xFFFF {
				break // avoid wrapping ch back to 0 on the sentinel segment
			}
		}
		if start <= end {
			result.Ranges = append(result.Ranges, Range{Start: rune(start), Stop: rune(end)})
		}
	}

	return result, nil
}
