package os2

import "testing"

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func buildOS2(weightClass uint16, panose [10]byte, fsSelection uint16) []byte {
	var data []byte
	data = append(data, make([]byte, 4)...) // version, xAvgCharWidth
	data = append(data, be16(weightClass)...)
	data = append(data, make([]byte, 26)...) // usWidthClass..sFamilyClass
	data = append(data, panose[:]...)
	data = append(data, make([]byte, 20)...) // ulUnicodeRange1..4 + achVendID
	data = append(data, be16(fsSelection)...)
	return data
}

func TestReadOS2(t *testing.T) {
	panose := [10]byte{2, 0, 0, 9, 0, 0, 0, 0, 0, 0}
	data := buildOS2(700, panose, 0x0021)
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.WeightClass != 700 {
		t.Errorf("WeightClass = %d; want 700", info.WeightClass)
	}
	if info.Panose != panose {
		t.Errorf("Panose = %v; want %v", info.Panose, panose)
	}
	if info.FSSelection != 0x0021 {
		t.Errorf("FSSelection = %#x; want %#x", info.FSSelection, 0x0021)
	}
	if !info.IsMonospaced() {
		t.Error("IsMonospaced() = false; want true for panose[0]=2, panose[3]=9")
	}
}

func TestIsMonospacedRequiresBothFields(t *testing.T) {
	info := &Info{Panose: [10]byte{2, 0, 0, 8}}
	if info.IsMonospaced() {
		t.Fatal("panose[3]=8 should not be monospaced")
	}
	info = &Info{Panose: [10]byte{3, 0, 0, 9}}
	if info.IsMonospaced() {
		t.Fatal("panose[0]=3 should not be monospaced")
	}
}
