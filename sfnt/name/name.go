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

// Package name decodes the OpenType "name" table: a list of
// (platform, encoding, language, nameID) records, each pointing into a
// shared storage area.
package name

import (
	"errors"
	"unicode/utf16"

	"golang.org/x/text/language"
	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "name"

// NameID constants from the OpenType "name" table specification.
const (
	CopyrightNotice      = 0
	FontFamily           = 1
	FontSubFamily        = 2
	UniqueFontIdentifier = 3
	FullFontName         = 4
	VersionString        = 5
	PostscriptName       = 6
	Trademark            = 7
	Manufacturer         = 8
	Designer             = 9
	Description          = 10
	PreferredFamily      = 16
	PreferredSubFamily   = 17
)

// ErrBadName is returned when a UTF-16 payload has an odd byte length.
var ErrBadName = errors.New("name: odd-length UTF-16 payload")

// Entry is one decoded name record.
type Entry struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// Table holds every decoded name record, keyed by NameID in the order
// they appeared in the table (the order Resolve relies on).
type Table struct {
	byID map[uint16][]Entry
}

// Read decodes a name table payload.
func Read(data []byte) (*Table, error) {
	c := cursor.New(data)
	format, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if format > 1 {
		return nil, sfnt.Wrap(sfnt.ErrUnsupportedFormat, tableTag, "unsupported name table format")
	}
	count, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	storageOffset, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	type rawRecord struct {
		platformID, encodingID, languageID, nameID, length, offset uint16
	}
	raw := make([]rawRecord, count)
	for i := range raw {
		platformID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		encodingID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		languageID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		nameID, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		length, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		offset, err := c.U16()
		if err != nil {
			return nil, sfnt.WrapCursor(tableTag, err)
		}
		raw[i] = rawRecord{platformID, encodingID, languageID, nameID, length, offset}
	}

	t := &Table{byID: make(map[uint16][]Entry)}
	for _, r := range raw {
		start := int(storageOffset) + int(r.offset)
		end := start + int(r.length)
		if start < 0 || end > len(data) || start > end {
			continue // malformed record offset; skip rather than fail the whole table
		}
		payload := data[start:end]

		var value string
		if r.platformID == 1 && r.encodingID == 0 {
			value = decodeMacRoman(payload)
		} else {
			if len(payload)%2 != 0 {
				return nil, sfnt.WrapErr(sfnt.ErrBadName, tableTag, ErrBadName)
			}
			value = decodeUTF16BE(payload)
		}

		entry := Entry{
			PlatformID: r.platformID,
			EncodingID: r.encodingID,
			LanguageID: r.languageID,
			NameID:     r.nameID,
			Value:      value,
		}
		t.byID[r.nameID] = append(t.byID[r.nameID], entry)
	}

	return t, nil
}

// entriesForTest exposes the raw per-nameID records for tests; callers
// outside the package use Resolve/Family/SubFamily instead.
func (t *Table) entriesForTest(nameID uint16) []Entry {
	return t.byID[nameID]
}

// Resolve returns the value of the first record with the given
// nameID, in on-disk record order, or "" if none exists.
func (t *Table) Resolve(nameID uint16) string {
	entries := t.byID[nameID]
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Value
}

// ResolvePreferred is like Resolve, but when multiple records share
// nameID in different languages, prefers the entry whose BCP-47
// language best matches one of prefs. Falls back to Resolve's
// first-record behavior when prefs is empty or none match.
func (t *Table) ResolvePreferred(nameID uint16, prefs []language.Tag) string {
	entries := t.byID[nameID]
	if len(entries) == 0 {
		return ""
	}
	if len(prefs) == 0 {
		return entries[0].Value
	}

	var candidateTags []language.Tag
	for _, e := range entries {
		candidateTags = append(candidateTags, windowsLanguageTag(e.PlatformID, e.LanguageID))
	}
	matcher := language.NewMatcher(candidateTags)
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return entries[0].Value
	}
	return entries[index].Value
}

// Family resolves the family name, preferring PreferredFamily (16)
// over FontFamily (1).
func (t *Table) Family() string {
	if v := t.Resolve(PreferredFamily); v != "" {
		return v
	}
	return t.Resolve(FontFamily)
}

// SubFamily resolves the sub-family name, preferring
// PreferredSubFamily (17) over FontSubFamily (2).
func (t *Table) SubFamily() string {
	if v := t.Resolve(PreferredSubFamily); v != "" {
		return v
	}
	return t.Resolve(FontSubFamily)
}

func decodeUTF16BE(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return string(utf16.Decode(units))
}

// windowsLanguageTag approximates a BCP-47 tag for a name record's
// language. Only the common Windows (platform 3) LCID values are
// recognized; anything else (including all Macintosh language codes)
// maps to language.Und, which never wins a locale preference match.
func windowsLanguageTag(platformID, languageID uint16) language.Tag {
	if platformID != 3 {
		return language.Und
	}
	switch languageID {
	case 0x0409:
		return language.AmericanEnglish
	case 0x0809:
		return language.BritishEnglish
	case 0x040C:
		return language.French
	case 0x0407:
		return language.German
	case 0x0410:
		return language.Italian
	case 0x0411:
		return language.Japanese
	case 0x0804:
		return language.SimplifiedChinese
	default:
		return language.Und
	}
}
