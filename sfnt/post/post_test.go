package post

import "testing"

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func be32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

func buildPost(italicAngle int32, isFixedPitch uint32) []byte {
	var data []byte
	data = append(data, make([]byte, 4)...) // version
	data = append(data, be32(uint32(italicAngle))...)
	data = append(data, be16(0)...) // underlinePosition
	data = append(data, be16(0)...) // underlineThickness
	data = append(data, be32(isFixedPitch)...)
	return data
}

func TestReadPost(t *testing.T) {
	data := buildPost(-0x00080000, 1) // -8.0 degrees in 16.16 fixed point
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.ItalicAngle != -0x00080000 {
		t.Errorf("ItalicAngle = %#x; want %#x", info.ItalicAngle, -0x00080000)
	}
	if !info.IsFixedPitch {
		t.Error("IsFixedPitch = false; want true")
	}
}

func TestReadPostNotFixedPitch(t *testing.T) {
	data := buildPost(0, 0)
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.IsFixedPitch {
		t.Error("IsFixedPitch = true; want false")
	}
}
