package fontkit

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// TestOpenRealFont drives the full parse pipeline against the embedded
// Go Regular TTF, the same fixture the teacher's own sfnt tests load
// real fonts from, rather than only synthetic per-table buffers.
func TestOpenRealFont(t *testing.T) {
	face, err := Open(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	unitsPerEm, err := face.UnitsPerEm()
	if err != nil {
		t.Fatalf("UnitsPerEm: %v", err)
	}
	if unitsPerEm == 0 {
		t.Fatal("UnitsPerEm() = 0; want nonzero")
	}

	numGlyphs, err := face.NumGlyphs()
	if err != nil {
		t.Fatalf("NumGlyphs: %v", err)
	}
	if numGlyphs == 0 {
		t.Fatal("NumGlyphs() = 0; want nonzero")
	}

	family := face.FamilyName()
	if family == "" {
		t.Error("FamilyName() = \"\"; want a resolved family name")
	}

	weight, err := face.Weight()
	if err != nil {
		t.Fatalf("Weight: %v", err)
	}
	style, err := face.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	t.Logf("family=%q weight=%v style=%v unitsPerEm=%d numGlyphs=%d",
		family, weight, style, unitsPerEm, numGlyphs)

	g, err := face.GlyphFor('A')
	if err != nil {
		t.Fatalf("GlyphFor('A'): %v", err)
	}
	if g == 0 {
		t.Error("GlyphFor('A') = 0; want a mapped glyph for a basic Latin letter")
	}

	width, err := face.MeasureText("AV")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if width == 0 {
		t.Error("MeasureText(\"AV\") = 0; want a positive advance sum")
	}
}

// TestFamilyNamePreferred checks that the locale-preference path falls
// back to the same value FamilyName reports when a font carries only a
// single-language family record, which is the case for goregular.TTF.
func TestFamilyNamePreferred(t *testing.T) {
	face, err := Open(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := face.FamilyName()
	got := face.FamilyNamePreferred([]language.Tag{language.German, language.AmericanEnglish})
	if got != want {
		t.Errorf("FamilyNamePreferred = %q; want %q (falls back to the sole record)", got, want)
	}
}

func TestCountRealFont(t *testing.T) {
	n, err := Count(goregular.TTF)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count() = %d; want 1 for a bare (non-collection) font file", n)
	}
}
