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

// Package fontkit reads OpenType/TrueType font files and matches
// family/weight/style requests against a registry of known fonts. See
// the sfnt subpackage for the low-level table decoders this package
// orchestrates.
package fontkit

import (
	"sync"

	"golang.org/x/text/language"
	"seehuhn.de/go/fontkit/sfnt"
	"seehuhn.de/go/fontkit/sfnt/classify"
	"seehuhn.de/go/fontkit/sfnt/cmap"
	"seehuhn.de/go/fontkit/sfnt/head"
	"seehuhn.de/go/fontkit/sfnt/hhea"
	"seehuhn.de/go/fontkit/sfnt/hmtx"
	"seehuhn.de/go/fontkit/sfnt/maxp"
	"seehuhn.de/go/fontkit/sfnt/name"
	"seehuhn.de/go/fontkit/sfnt/os2"
	"seehuhn.de/go/fontkit/sfnt/post"
)

// BaselineKind names one of the baseline offsets Face.Baseline computes.
type BaselineKind int

const (
	BaselineTop BaselineKind = iota
	BaselineHanging
	BaselineMiddle
	BaselineAlphabetic
	BaselineBottom
)

// Face is one font contained in a font file image. The underlying
// byte buffer must outlive the Face and every value derived from it;
// every table slice aliases into it rather than copying.
//
// Metrics, cmap and classification are computed on first demand and
// cached: Face starts "unparsed" and transitions to "parsed" at most
// once, behind parseOnce, rather than through a mutable flag plus
// partially-initialized fields.
type Face struct {
	data      []byte
	dir       *sfnt.Directory
	offset    uint32
	fontIndex int

	parseOnce sync.Once
	parsed    *parsedTables
	parseErr  error
}

// parsedTables is the result of the one-shot full parse.
type parsedTables struct {
	head  *head.Info
	hhea  *hhea.Info
	maxp  *maxp.Info
	glyph []hmtx.Glyph
	post  *post.Info
	os2   *os2.Info
	name  *name.Table
	cmap  *cmap.Table
	class classify.Result
}

// Open parses the container at data and returns the index'th face.
// This only reads the container and the font's table directory; full
// metrics parsing is deferred until first use.
func Open(data []byte, index int) (*Face, error) {
	container, err := sfnt.ReadContainer(data)
	if err != nil {
		return nil, err
	}
	offset, ok := container.OffsetFor(index)
	if !ok {
		return nil, &sfnt.Error{Kind: sfnt.ErrTableMissing, Detail: "font index out of range"}
	}
	dir, err := sfnt.ReadDirectory(data, offset)
	if err != nil {
		return nil, err
	}
	return &Face{data: data, dir: dir, offset: offset, fontIndex: index}, nil
}

// Count returns the number of fonts in the container holding data,
// without parsing any of them.
func Count(data []byte) (int, error) {
	container, err := sfnt.ReadContainer(data)
	if err != nil {
		return 0, err
	}
	return container.FontCount(), nil
}

func (f *Face) ensureParsed() error {
	f.parseOnce.Do(func() {
		f.parsed, f.parseErr = f.parse()
	})
	return f.parseErr
}

func (f *Face) parse() (*parsedTables, error) {
	headData, err := f.dir.Get(sfnt.MakeTag("head"), f.data)
	if err != nil {
		return nil, err
	}
	headInfo, err := head.Read(headData)
	if err != nil {
		return nil, err
	}

	hheaData, err := f.dir.Get(sfnt.MakeTag("hhea"), f.data)
	if err != nil {
		return nil, err
	}
	hheaInfo, err := hhea.Read(hheaData)
	if err != nil {
		return nil, err
	}

	maxpData, err := f.dir.Get(sfnt.MakeTag("maxp"), f.data)
	if err != nil {
		return nil, err
	}
	maxpInfo, err := maxp.Read(maxpData)
	if err != nil {
		return nil, err
	}

	hmtxData, err := f.dir.Get(sfnt.MakeTag("hmtx"), f.data)
	if err != nil {
		return nil, err
	}
	glyphs, err := hmtx.Decode(hmtxData, hheaInfo.NumberOfHMetrics, maxpInfo.NumGlyphs)
	if err != nil {
		return nil, err
	}

	var postInfo *post.Info
	if postData, ok := f.dir.Find(sfnt.MakeTag("post"), f.data); ok {
		postInfo, err = post.Read(postData)
		if err != nil {
			return nil, err
		}
	}

	var os2Info *os2.Info
	if os2Data, ok := f.dir.Find(sfnt.MakeTag("OS/2"), f.data); ok {
		os2Info, err = os2.Read(os2Data)
		if err != nil {
			return nil, err
		}
	}

	var nameTable *name.Table
	if nameData, ok := f.dir.Find(sfnt.MakeTag("name"), f.data); ok {
		nameTable, err = name.Read(nameData)
		if err != nil {
			return nil, err
		}
	}

	var cmapTable *cmap.Table
	if cmapData, ok := f.dir.Find(sfnt.MakeTag("cmap"), f.data); ok {
		cmapTable, err = cmap.Read(cmapData, maxpInfo.NumGlyphs)
		if err != nil {
			return nil, err
		}
	}

	var subFamily string
	if nameTable != nil {
		subFamily = nameTable.SubFamily()
	}
	class := classify.Classify(classify.Source{
		OS2:       os2Info,
		Head:      headInfo,
		Post:      postInfo,
		SubFamily: subFamily,
	})

	return &parsedTables{
		head:  headInfo,
		hhea:  hheaInfo,
		maxp:  maxpInfo,
		glyph: glyphs,
		post:  postInfo,
		os2:   os2Info,
		name:  nameTable,
		cmap:  cmapTable,
		class: class,
	}, nil
}

// FamilyName returns the resolved family name ("" if the font has no
// name table, or no family record).
func (f *Face) FamilyName() string {
	if f.ensureParsed() != nil || f.parsed.name == nil {
		return ""
	}
	return f.parsed.name.Family()
}

// SubFamilyName returns the resolved sub-family name.
func (f *Face) SubFamilyName() string {
	if f.ensureParsed() != nil || f.parsed.name == nil {
		return ""
	}
	return f.parsed.name.SubFamily()
}

// FamilyNamePreferred is like FamilyName, but when the name table
// carries the family name in more than one language, it picks the
// entry that best matches prefs (in BCP-47 preference order) instead
// of always taking the first record on disk.
func (f *Face) FamilyNamePreferred(prefs []language.Tag) string {
	if f.ensureParsed() != nil || f.parsed.name == nil {
		return ""
	}
	if v := f.parsed.name.ResolvePreferred(name.PreferredFamily, prefs); v != "" {
		return v
	}
	return f.parsed.name.ResolvePreferred(name.FontFamily, prefs)
}

// FullName returns the full font name (NameID 4).
func (f *Face) FullName() string {
	if f.ensureParsed() != nil || f.parsed.name == nil {
		return ""
	}
	return f.parsed.name.Resolve(name.FullFontName)
}

// PostscriptName returns the PostScript name (NameID 6).
func (f *Face) PostscriptName() string {
	if f.ensureParsed() != nil || f.parsed.name == nil {
		return ""
	}
	return f.parsed.name.Resolve(name.PostscriptName)
}

// Weight returns the classified weight.
func (f *Face) Weight() (classify.Weight, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.class.Weight, nil
}

// Style returns the classified style.
func (f *Face) Style() (classify.Style, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.class.Style, nil
}

// IsMonospaced reports the classified monospace flag.
func (f *Face) IsMonospaced() (bool, error) {
	if err := f.ensureParsed(); err != nil {
		return false, err
	}
	return f.parsed.class.IsMonospaced, nil
}

// BBox returns the font bounding box (xMin, yMin, xMax, yMax).
func (f *Face) BBox() ([4]int16, error) {
	if err := f.ensureParsed(); err != nil {
		return [4]int16{}, err
	}
	return f.parsed.head.BBox, nil
}

// UnitsPerEm returns the font's design-space denominator.
func (f *Face) UnitsPerEm() (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.head.UnitsPerEm, nil
}

// Ascent, Descent and LineGap return the corresponding hhea fields.
func (f *Face) Ascent() (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.hhea.Ascender, nil
}

func (f *Face) Descent() (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.hhea.Descender, nil
}

func (f *Face) LineGap() (int16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.hhea.LineGap, nil
}

// ItalicAngleDegrees returns post.italicAngle converted from 16.16
// fixed point into degrees. Requires the post table.
func (f *Face) ItalicAngleDegrees() (float64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.parsed.post == nil {
		return 0, &sfnt.Error{Kind: sfnt.ErrTableMissing, Table: "post"}
	}
	return float64(f.parsed.post.ItalicAngle) / 65536, nil
}

// Baseline computes one of the five baseline offsets defined in terms
// of ascender/descender/units-per-em. "hanging" is a documented
// placeholder equal to the ascent; refining it would require the BASE
// table, which this reader does not decode.
func (f *Face) Baseline(kind BaselineKind) (float64, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	a := float64(f.parsed.hhea.Ascender)
	d := float64(f.parsed.hhea.Descender)
	u := float64(f.parsed.head.UnitsPerEm)
	actual := a - d
	if actual == 0 {
		return 0, nil
	}
	top := a * u / actual
	switch kind {
	case BaselineTop:
		return top, nil
	case BaselineHanging:
		return a, nil
	case BaselineMiddle:
		return 0.5 * (a + d) * u / actual, nil
	case BaselineAlphabetic:
		return 0, nil
	case BaselineBottom:
		return d * u / actual, nil
	default:
		return 0, nil
	}
}

// NumGlyphs returns maxp.numGlyphs.
func (f *Face) NumGlyphs() (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	return f.parsed.maxp.NumGlyphs, nil
}

// HasGlyph reports whether c was explicitly mapped by the cmap.
// Unlike GlyphIndex, it does not treat glyph 0 as present.
func (f *Face) HasGlyph(c rune) (bool, error) {
	if err := f.ensureParsed(); err != nil {
		return false, err
	}
	if f.parsed.cmap == nil {
		return false, nil
	}
	_, ok := f.parsed.cmap.GlyphForRune[c]
	return ok, nil
}

// GlyphIndex returns the glyph index mapped to c, or 0 if absent.
func (f *Face) GlyphIndex(c rune) (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.parsed.cmap == nil {
		return 0, nil
	}
	return f.parsed.cmap.GlyphForRune[c], nil
}

// LeftSideBearing returns the left side bearing of the glyph mapped
// to c (0 if c is unmapped or the index exceeds the glyph table).
func (f *Face) LeftSideBearing(c rune) (int16, error) {
	g, err := f.GlyphIndex(c)
	if err != nil {
		return 0, err
	}
	if int(g) >= len(f.parsed.glyph) {
		return 0, nil
	}
	return f.parsed.glyph[g].LeftSideBearing, nil
}

// HorizontalAdvance returns the horizontal advance of the glyph
// mapped to c (0 if c is unmapped or the index exceeds the glyph table).
func (f *Face) HorizontalAdvance(c rune) (uint16, error) {
	g, err := f.GlyphIndex(c)
	if err != nil {
		return 0, err
	}
	if int(g) >= len(f.parsed.glyph) {
		return 0, nil
	}
	return f.parsed.glyph[g].HorzAdvance, nil
}

// MeasureText sums the horizontal advance of every codepoint in s.
func (f *Face) MeasureText(s string) (int, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	total := 0
	for _, r := range s {
		adv, err := f.HorizontalAdvance(r)
		if err != nil {
			return 0, err
		}
		total += int(adv)
	}
	return total, nil
}

// fallbackCascade is the ordered list of substitute codepoints
// GlyphFor tries when c itself is unmapped.
var fallbackCascade = []rune{'\uFFFD', '\u007F', '?', ' '}

// GlyphFor implements the fallback cascade: c itself, then U+FFFD,
// U+007F, '?', ' ', and finally glyph 0. Fails with ErrEmptyFont only
// if the face has no glyphs at all.
func (f *Face) GlyphFor(c rune) (uint16, error) {
	if err := f.ensureParsed(); err != nil {
		return 0, err
	}
	if f.parsed.maxp.NumGlyphs == 0 {
		return 0, &sfnt.Error{Kind: sfnt.ErrEmptyFont}
	}
	if ok, _ := f.HasGlyph(c); ok {
		return f.GlyphIndex(c)
	}
	for _, fallback := range fallbackCascade {
		if ok, _ := f.HasGlyph(fallback); ok {
			return f.GlyphIndex(fallback)
		}
	}
	return 0, nil
}
