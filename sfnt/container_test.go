package sfnt

import "testing"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func TestReadContainerSingleFont(t *testing.T) {
	data := append(be32(magicTrueType), make([]byte, 8)...)
	c, err := ReadContainer(data)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if c.IsCollection {
		t.Fatal("expected single-font container")
	}
	if c.FontCount() != 1 {
		t.Fatalf("FontCount = %d; want 1", c.FontCount())
	}
	off, ok := c.OffsetFor(0)
	if !ok || off != 0 {
		t.Fatalf("OffsetFor(0) = %d, %v; want 0, true", off, ok)
	}
}

func TestReadContainerOTTO(t *testing.T) {
	data := be32(magicOTTO)
	c, err := ReadContainer(data)
	if err != nil || c.IsCollection {
		t.Fatalf("ReadContainer(OTTO) = %+v, %v", c, err)
	}
}

func TestReadContainerTTCZeroFonts(t *testing.T) {
	var data []byte
	data = append(data, be32(magicTTC)...)
	data = append(data, be32(0x00010000)...) // ttc version
	data = append(data, be32(0)...)          // font count
	c, err := ReadContainer(data)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if !c.IsCollection || c.FontCount() != 0 {
		t.Fatalf("got %+v; want empty collection", c)
	}
}

func TestReadContainerTTC(t *testing.T) {
	var data []byte
	data = append(data, be32(magicTTC)...)
	data = append(data, be32(0x00010000)...)
	data = append(data, be32(2)...)
	data = append(data, be32(12)...)
	data = append(data, be32(200)...)
	c, err := ReadContainer(data)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if c.FontCount() != 2 {
		t.Fatalf("FontCount = %d; want 2", c.FontCount())
	}
	off, _ := c.OffsetFor(1)
	if off != 200 {
		t.Fatalf("OffsetFor(1) = %d; want 200", off)
	}
}

func TestReadContainerBadMagic(t *testing.T) {
	if _, err := ReadContainer(be32(0xDEADBEEF)); !Is(err, ErrBadMagic) {
		t.Fatalf("ReadContainer(bad magic) = %v; want ErrBadMagic", err)
	}
}

func TestReadContainerShortFile(t *testing.T) {
	if _, err := ReadContainer(nil); !Is(err, ErrUnexpectedEnd) {
		t.Fatalf("ReadContainer(empty) = %v; want ErrUnexpectedEnd", err)
	}
	if _, err := ReadContainer([]byte{0x00, 0x01, 0x00}); !Is(err, ErrUnexpectedEnd) {
		t.Fatalf("ReadContainer(3 bytes) = %v; want ErrUnexpectedEnd", err)
	}
}
