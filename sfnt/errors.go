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

import (
	"errors"
	"fmt"

	"seehuhn.de/go/fontkit/internal/cursor"
)

// ErrorKind identifies one of the error conditions the reader can
// surface, matching the error taxonomy of the format.
type ErrorKind int

const (
	// ErrUnexpectedEnd means a cursor ran past the end of a buffer or slice.
	ErrUnexpectedEnd ErrorKind = iota + 1
	// ErrBadMagic means a container tag or head.magicNumber mismatched.
	ErrBadMagic
	// ErrTableMissing means a required table was absent from the directory.
	ErrTableMissing
	// ErrUnsupportedFormat means an hhea.metricDataFormat, name.format or
	// similar version field had an unrecognized value.
	ErrUnsupportedFormat
	// ErrUnsupportedCmapFormat means the chosen cmap subtable was not format 4.
	ErrUnsupportedCmapFormat
	// ErrCorruptCmap means segCountX2 or idRangeOffset was odd, or a glyph
	// index fell outside [0, numGlyphs).
	ErrCorruptCmap
	// ErrBadName means a name record's UTF-16 payload had odd byte length.
	ErrBadName
	// ErrEmptyFont means a glyph fallback was requested from a face with
	// zero glyphs.
	ErrEmptyFont
	// ErrNoFontAvailable means the registry held no descriptors at all.
	ErrNoFontAvailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEnd:
		return "unexpected end of data"
	case ErrBadMagic:
		return "bad magic"
	case ErrTableMissing:
		return "table missing"
	case ErrUnsupportedFormat:
		return "unsupported format"
	case ErrUnsupportedCmapFormat:
		return "unsupported cmap format"
	case ErrCorruptCmap:
		return "corrupt cmap"
	case ErrBadName:
		return "bad name record"
	case ErrEmptyFont:
		return "empty font"
	case ErrNoFontAvailable:
		return "no font available"
	default:
		return "unknown font error"
	}
}

// Error is the concrete error type returned by the packages under
// sfnt. Table carries the four-byte tag involved, if any; Detail adds
// free-form context.
type Error struct {
	Kind   ErrorKind
	Table  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Table != "" {
		msg += fmt.Sprintf(" (table %q)", e.Table)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether err's Kind matches kind, unwrapping as needed.
func Is(err error, kind ErrorKind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// Wrap constructs an Error with no underlying cause. Every sub-package
// under sfnt uses this (and WrapErr/WrapCursor below) rather than
// defining its own error type, so sfnt.Is(err, kind) is a reliable
// contract across the whole reader.
func Wrap(kind ErrorKind, table, detail string) *Error {
	return &Error{Kind: kind, Table: table, Detail: detail}
}

// WrapErr is like Wrap but preserves an existing sentinel error as the
// Unwrap target, so callers using errors.Is against a package-level
// sentinel keep working alongside sfnt.Is(err, kind).
func WrapErr(kind ErrorKind, table string, err error) *Error {
	return &Error{Kind: kind, Table: table, Err: err}
}

// WrapCursor translates a cursor error (always ErrUnexpectedEnd) into
// the public error type, tagging it with the table it occurred in.
func WrapCursor(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cursor.ErrUnexpectedEnd) {
		return &Error{Kind: ErrUnexpectedEnd, Table: table, Err: err}
	}
	return err
}
