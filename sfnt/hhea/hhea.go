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

// Package hhea decodes the OpenType "hhea" table.
package hhea

import (
	"errors"

	"seehuhn.de/go/fontkit/internal/cursor"
	"seehuhn.de/go/fontkit/sfnt"
)

const tableTag = "hhea"

// ErrUnsupportedMetricFormat is returned when metricDataFormat is not 0.
var ErrUnsupportedMetricFormat = errors.New("hhea: unsupported metricDataFormat")

// Info is the subset of the horizontal header the rest of the reader needs.
type Info struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	NumberOfHMetrics uint16
}

// Read decodes an hhea table payload.
func Read(data []byte) (*Info, error) {
	c := cursor.New(data)
	if err := c.Skip(4); err != nil { // version
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	ascender, err := c.I16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	descender, err := c.I16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	lineGap, err := c.I16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if err := c.Skip(22); err != nil { // advanceWidthMax..caretOffset (7x2) + 4 reserved int16
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	metricDataFormat, err := c.I16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}
	if metricDataFormat != 0 {
		return nil, sfnt.WrapErr(sfnt.ErrUnsupportedFormat, tableTag, ErrUnsupportedMetricFormat)
	}
	numberOfHMetrics, err := c.U16()
	if err != nil {
		return nil, sfnt.WrapCursor(tableTag, err)
	}

	return &Info{
		Ascender:         ascender,
		Descender:        descender,
		LineGap:          lineGap,
		NumberOfHMetrics: numberOfHMetrics,
	}, nil
}
