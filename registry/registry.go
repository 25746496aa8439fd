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

// Package registry indexes lightweight descriptors of every font
// discovered on the system and selects the best physical font for a
// (family, weight, style) request.
//
// Registry is always constructed explicitly by the host; there is no
// process-wide implicit singleton.
package registry

import (
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/fontkit"
	"seehuhn.de/go/fontkit/sfnt"
	"seehuhn.de/go/fontkit/sfnt/classify"
)

// KnownFont is a lightweight descriptor of one font contained in a
// file, recorded without fully parsing its metrics or cmap.
type KnownFont struct {
	Path       string
	FontIndex  int
	Family     string
	Weight     classify.Weight
	Style      classify.Style
	Monospaced bool
}

// matchKey identifies a cached match result.
type matchKey struct {
	family string
	weight classify.Weight
	style  classify.Style
}

// Registry aggregates KnownFont descriptors across every configured
// font directory and resolves match requests against them, caching
// resolved faces by (family, weight, style).
type Registry struct {
	fs FileSystem

	mu     sync.RWMutex
	fonts  []KnownFont
	cache  map[matchKey]*fontkit.Face
	loaded map[string][]byte // file path -> raw bytes, kept so Face buffers stay alive
}

// New creates an empty registry backed by fs. Pass DefaultFileSystem()
// for the platform's conventional font directories, or a test double.
func New(fs FileSystem) *Registry {
	return &Registry{
		fs:     fs,
		cache:  make(map[matchKey]*fontkit.Face),
		loaded: make(map[string][]byte),
	}
}

// SkipFunc is called for every font file that fails to parse during
// discovery; the offending file is skipped, not fatal.
type SkipFunc func(path string, err error)

// DiscoverFonts walks every directory fs.FontDirectories returns (the
// registry adds no second "local" pass of its own), and records a
// descriptor per font found in every accepted file. A file path
// reached through more than one directory is registered only once. Parse failures on individual files are swallowed and
// reported to onSkip, if non-nil, rather than aborting discovery.
func (r *Registry) DiscoverFonts(onSkip SkipFunc) error {
	seen := make(map[string]bool)
	for _, dir := range r.fs.FontDirectories() {
		paths, err := r.fs.Walk(dir)
		if err != nil {
			continue
		}
		for _, path := range paths {
			if seen[path] || !hasFontExtension(path) {
				continue
			}
			seen[path] = true

			data, err := r.fs.ReadAll(path)
			if err != nil {
				if onSkip != nil {
					onSkip(path, err)
				}
				continue
			}
			if err := r.registerFile(path, data, onSkip); err != nil {
				if onSkip != nil {
					onSkip(path, err)
				}
			}
		}
	}
	return nil
}

// hasFontExtension reports whether path ends in one of the four
// accepted, case-sensitive suffixes.
func hasFontExtension(path string) bool {
	for _, ext := range []string{".ttf", ".ttc", ".otf", ".otc"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// RegisterFile opens data (the bytes of path) as a font container and
// records a descriptor for every font it holds. A parse failure on
// any individual contained font is swallowed; other fonts in the same
// file are still recorded.
func (r *Registry) RegisterFile(path string, data []byte) error {
	return r.registerFile(path, data, nil)
}

func (r *Registry) registerFile(path string, data []byte, onSkip SkipFunc) error {
	count, err := fontkit.Count(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.loaded[path] = data
	r.mu.Unlock()

	for i := 0; i < count; i++ {
		face, err := fontkit.Open(data, i)
		if err != nil {
			if onSkip != nil {
				onSkip(path, err)
			}
			continue
		}
		family := face.FamilyName()
		weight, werr := face.Weight()
		style, serr := face.Style()
		mono, merr := face.IsMonospaced()
		if werr != nil || serr != nil || merr != nil {
			err := werr
			if err == nil {
				err = serr
			}
			if err == nil {
				err = merr
			}
			if onSkip != nil {
				onSkip(path, err)
			}
			continue
		}

		r.mu.Lock()
		r.fonts = append(r.fonts, KnownFont{
			Path:       path,
			FontIndex:  i,
			Family:     family,
			Weight:     weight,
			Style:      style,
			Monospaced: mono,
		})
		r.mu.Unlock()
	}
	return nil
}

// KnownFonts returns a copy of every descriptor currently recorded.
func (r *Registry) KnownFonts() []KnownFont {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]KnownFont, len(r.fonts))
	copy(out, r.fonts)
	return out
}

// Families returns the sorted set of distinct family names known to
// the registry, deduplicated case-insensitively but reported in the
// casing of the first descriptor seen for each family.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byKey := make(map[string]string, len(r.fonts))
	for _, f := range r.fonts {
		key := strings.ToLower(f.Family)
		if _, ok := byKey[key]; !ok {
			byKey[key] = f.Family
		}
	}
	names := maps.Values(byKey)
	sort.Strings(names)
	return names
}

// FindBestMatch resolves (family, weight, style) to a fully parsed
// Face using the scoring function below, caching the result. Returns
// ErrNoFontAvailable if the registry holds no descriptors at all.
func (r *Registry) FindBestMatch(family string, weight classify.Weight, style classify.Style) (*fontkit.Face, error) {
	key := matchKey{family: strings.ToLower(family), weight: weight, style: style}

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	n := len(r.fonts)
	r.mu.RUnlock()

	if n == 0 {
		return nil, &sfnt.Error{Kind: sfnt.ErrNoFontAvailable}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check the cache: another caller may have resolved this exact
	// key while we waited for the write lock.
	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}

	bestScore := math.MaxInt64
	bestIndex := -1
	for i, k := range r.fonts {
		s := score(key.family, weight, style, k)
		if s < bestScore {
			bestScore = s
			bestIndex = i
		}
	}
	if bestIndex < 0 {
		return nil, &sfnt.Error{Kind: sfnt.ErrNoFontAvailable}
	}

	winner := r.fonts[bestIndex]
	data := r.loaded[winner.Path]
	face, err := fontkit.Open(data, winner.FontIndex)
	if err != nil {
		return nil, err
	}

	r.cache[key] = face
	return face, nil
}

// score implements the matcher's scoring function exactly:
//   - +100000 if the family names differ (case-insensitive)
//   - + |weight - k.weight|
//   - +1 if style differs and the mismatch is italic<->oblique, else +10000
//
// Lower is better; ties are resolved by enumeration order (the first
// descriptor with the minimal score wins, since later ties do not
// strictly improve on bestScore).
func score(wantFamily string, wantWeight classify.Weight, wantStyle classify.Style, k KnownFont) int {
	s := 0
	if wantFamily != strings.ToLower(k.Family) {
		s += 100000
	}
	diff := int(wantWeight) - int(k.Weight)
	if diff < 0 {
		diff = -diff
	}
	s += diff
	if wantStyle != k.Style {
		if isItalicObliqueMismatch(wantStyle, k.Style) {
			s += 1
		} else {
			s += 10000
		}
	}
	return s
}

func isItalicObliqueMismatch(a, b classify.Style) bool {
	return (a == classify.StyleItalic && b == classify.StyleOblique) ||
		(a == classify.StyleOblique && b == classify.StyleItalic)
}
