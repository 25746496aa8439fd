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

package sfnt

import "seehuhn.de/go/fontkit/internal/cursor"

// Container describes the outer structure of a font file image: a
// single font at offset 0, or a TrueType Collection holding several
// fonts that share table data.
type Container struct {
	IsCollection bool
	Offsets      []uint32
}

// ReadContainer inspects the first bytes of data to determine whether
// it holds a single font or a TTC, and returns the offset-table
// location(s) of every font inside.
func ReadContainer(data []byte) (*Container, error) {
	c := cursor.New(data)
	tag, err := c.U32()
	if err != nil {
		return nil, WrapCursor("", err)
	}

	switch tag {
	case magicTrueType, magicOTTO:
		return &Container{IsCollection: false, Offsets: []uint32{0}}, nil
	case magicTTC:
		if err := c.Skip(4); err != nil { // ttcTag version, discarded
			return nil, WrapCursor("ttcf", err)
		}
		fontCount, err := c.U32()
		if err != nil {
			return nil, WrapCursor("ttcf", err)
		}
		offsets := make([]uint32, fontCount)
		for i := range offsets {
			offsets[i], err = c.U32()
			if err != nil {
				return nil, WrapCursor("ttcf", err)
			}
		}
		return &Container{IsCollection: true, Offsets: offsets}, nil
	default:
		return nil, Wrap(ErrBadMagic, "", "unrecognized container tag")
	}
}

// FontCount returns the number of fonts described by the container.
func (c *Container) FontCount() int { return len(c.Offsets) }

// OffsetFor returns the byte offset of the index'th font's offset
// table.
func (c *Container) OffsetFor(index int) (uint32, bool) {
	if index < 0 || index >= len(c.Offsets) {
		return 0, false
	}
	return c.Offsets[index], true
}
