package classify

import (
	"testing"

	"seehuhn.de/go/fontkit/sfnt/head"
	"seehuhn.de/go/fontkit/sfnt/os2"
)

func TestWeightRounding(t *testing.T) {
	cases := []struct {
		usWeightClass uint16
		want          Weight
	}{
		{449, Normal},
		{450, Medium},
	}
	for _, tc := range cases {
		got := classifyFromOS2(&os2.Info{WeightClass: tc.usWeightClass})
		if got.Weight != tc.want {
			t.Errorf("weight(%d) = %d; want %d", tc.usWeightClass, got.Weight, tc.want)
		}
	}
}

func TestPanoseMonospace(t *testing.T) {
	mono := &os2.Info{Panose: [10]byte{2, 0, 0, 9}}
	if !classifyFromOS2(mono).IsMonospaced {
		t.Fatal("panose [2,x,x,9] should be monospaced")
	}
	notMono := &os2.Info{Panose: [10]byte{2, 0, 0, 8}}
	if classifyFromOS2(notMono).IsMonospaced {
		t.Fatal("panose [2,x,x,8] should not be monospaced")
	}
}

func TestFSSelectionObliqueWinsTie(t *testing.T) {
	o := &os2.Info{FSSelection: 0x0001 | 0x0200}
	if got := classifyFromOS2(o).Style; got != StyleOblique {
		t.Fatalf("style = %v; want StyleOblique when both italic and oblique bits are set", got)
	}
}

func TestHeadFallback(t *testing.T) {
	h := &head.Info{MacStyle: 0x0003} // bold + italic
	got := classifyFromHeadAndPost(h, nil)
	if got.Weight != Bold || got.Style != StyleItalic {
		t.Fatalf("got %+v; want bold italic", got)
	}
}

func TestSubFamilyCascade(t *testing.T) {
	cases := []struct {
		subFamily  string
		wantWeight Weight
		wantStyle  Style
	}{
		{"Regular", Normal, StyleNormal},
		{"Bold Italic", Bold, StyleItalic},
		{"Ultra Light", Thinest, StyleNormal},
		{"ExtraLight", ExtraLight, StyleNormal},
		{"SemiBold Oblique", SemiBold, StyleOblique},
		{"Black", Black, StyleNormal},
		{"Negreta", Black, StyleNormal},
		{"Heavy", Bold, StyleNormal},
	}
	for _, tc := range cases {
		got := classifyFromSubFamily(tc.subFamily)
		if got.Weight != tc.wantWeight || got.Style != tc.wantStyle {
			t.Errorf("classify(%q) = %+v; want weight=%d style=%d", tc.subFamily, got, tc.wantWeight, tc.wantStyle)
		}
	}
}

func TestClassifyCascadeOrder(t *testing.T) {
	// OS/2 present must win even when head/post disagree.
	result := Classify(Source{
		OS2:       &os2.Info{WeightClass: 700},
		Head:      &head.Info{MacStyle: 0}, // would say normal
		SubFamily: "Light",                 // would say light
	})
	if result.Weight != Bold {
		t.Fatalf("OS/2 rule did not take priority: got %+v", result)
	}
}
