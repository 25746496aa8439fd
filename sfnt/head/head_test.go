package head

import (
	"testing"

	"seehuhn.de/go/fontkit/sfnt"
)

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func be32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

func buildHead(unitsPerEm uint16, bbox [4]int16, macStyle uint16) []byte {
	var data []byte
	data = append(data, make([]byte, 12)...) // version, fontRevision, checkSumAdjustment
	data = append(data, be32(magicNumber)...)
	data = append(data, be16(0)...) // flags
	data = append(data, be16(unitsPerEm)...)
	data = append(data, make([]byte, 16)...) // created, modified
	for _, v := range bbox {
		data = append(data, be16(uint16(v))...)
	}
	data = append(data, be16(macStyle)...)
	return data
}

func TestReadHead(t *testing.T) {
	data := buildHead(2048, [4]int16{-200, -300, 1700, 1900}, 0x0003)
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d; want 2048", info.UnitsPerEm)
	}
	want := [4]int16{-200, -300, 1700, 1900}
	if info.BBox != want {
		t.Errorf("BBox = %v; want %v", info.BBox, want)
	}
	if !info.IsBold() || !info.IsItalic() {
		t.Errorf("macStyle 0x0003 should report bold and italic")
	}
}

func TestReadHeadBadMagic(t *testing.T) {
	data := buildHead(1000, [4]int16{}, 0)
	data[12] ^= 0xFF // corrupt the magic number
	if _, err := Read(data); !sfnt.Is(err, sfnt.ErrBadMagic) {
		t.Fatalf("Read with corrupted magic number = %v; want ErrBadMagic", err)
	}
}

func TestIsBoldIsItalicBits(t *testing.T) {
	info := &Info{MacStyle: 0x0000}
	if info.IsBold() || info.IsItalic() {
		t.Fatal("macStyle 0 should report neither bold nor italic")
	}
	info = &Info{MacStyle: 0x0002}
	if info.IsBold() {
		t.Fatal("macStyle bit 1 alone should not report bold")
	}
	if !info.IsItalic() {
		t.Fatal("macStyle bit 1 should report italic")
	}
}
