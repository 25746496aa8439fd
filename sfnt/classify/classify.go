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

// Package classify derives a font's weight, style and monospace flag
// through the cascade: OS/2 first, then post+head, then sub-family
// substring heuristics. Each rule set is a tagged source, selected in
// order rather than through nested conditionals.
package classify

import (
	"strings"

	"seehuhn.de/go/fontkit/sfnt/head"
	"seehuhn.de/go/fontkit/sfnt/os2"
	"seehuhn.de/go/fontkit/sfnt/post"
)

// Weight is a CSS-like numeric weight class.
type Weight int

const (
	Thinest    Weight = 0
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Normal     Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

// Style is the slant classification of a font.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// Result is the outcome of classification.
type Result struct {
	Weight       Weight
	Style        Style
	IsMonospaced bool
}

// Source bundles the tables available for classification; any may be
// nil, modeling "OS/2 absent", "post absent", etc.
type Source struct {
	OS2       *os2.Info
	Head      *head.Info
	Post      *post.Info
	SubFamily string
}

// Classify runs the four-rule cascade in spec order, returning the
// result of the first applicable rule.
func Classify(src Source) Result {
	if src.OS2 != nil {
		return classifyFromOS2(src.OS2)
	}
	if src.Head != nil {
		return classifyFromHeadAndPost(src.Head, src.Post)
	}
	return classifyFromSubFamily(src.SubFamily)
}

func classifyFromOS2(o *os2.Info) Result {
	weight := Weight(roundWeightClass(o.WeightClass))

	var style Style
	const (
		italicBit   = 1 << 0
		obliqueBit  = 1 << 9
	)
	switch {
	case o.FSSelection&obliqueBit != 0:
		style = StyleOblique
	case o.FSSelection&italicBit != 0:
		style = StyleItalic
	default:
		style = StyleNormal
	}

	return Result{Weight: weight, Style: style, IsMonospaced: o.IsMonospaced()}
}

// roundWeightClass implements usWeightClass -> nearest hundred,
// half-up: (usWeightClass + 50) / 100 * 100, using integer division.
func roundWeightClass(usWeightClass uint16) int {
	return int(usWeightClass+50) / 100 * 100
}

// classifyFromHeadAndPost covers rules 2 and 3 together: when OS/2 is
// absent, monospace comes from post.isFixedPitch if post is present,
// and weight/style fall back to head.macStyle. There is no oblique
// signal available at this level, so fsSelection's distinction is
// unreachable here by construction.
func classifyFromHeadAndPost(h *head.Info, p *post.Info) Result {
	var weight Weight
	var style Style
	if h.IsBold() {
		weight = Bold
	} else {
		weight = Normal
	}
	if h.IsItalic() {
		style = StyleItalic
	} else {
		style = StyleNormal
	}

	var monospaced bool
	if p != nil {
		monospaced = p.IsFixedPitch
	}

	return Result{Weight: weight, Style: style, IsMonospaced: monospaced}
}

// classifyFromSubFamily is the last-chance heuristic: case-insensitive
// substring matching on the sub-family name, tried in the documented
// priority order.
func classifyFromSubFamily(subFamily string) Result {
	s := strings.ToLower(subFamily)

	weight := Normal
	switch {
	case strings.Contains(s, "thin"):
		weight = Thin
	case strings.Contains(s, "ultra light"), strings.Contains(s, "ultralight"), strings.Contains(s, "hairline"):
		weight = Thinest
	case strings.Contains(s, "extralight"):
		weight = ExtraLight
	case strings.Contains(s, "light"):
		weight = Light
	case strings.Contains(s, "demi bold"), strings.Contains(s, "semibold"):
		weight = SemiBold
	case strings.Contains(s, "extrabold"):
		weight = ExtraBold
	case strings.Contains(s, "bold"), strings.Contains(s, "heavy"):
		weight = Bold
	case strings.Contains(s, "medium"):
		weight = Medium
	case strings.Contains(s, "black"), strings.Contains(s, "negreta"):
		weight = Black
	}

	style := StyleNormal
	switch {
	case strings.Contains(s, "italic"):
		style = StyleItalic
	case strings.Contains(s, "oblique"):
		style = StyleOblique
	}

	return Result{Weight: weight, Style: style}
}
