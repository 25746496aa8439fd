package sfnt

import "testing"

func TestDirectoryFind(t *testing.T) {
	payload := []byte("headpayload")
	dir := &Directory{
		Records: []Record{
			{Tag: MakeTag("cmap"), Offset: 0, Length: 0},
			{Tag: MakeTag("head"), Offset: 20, Length: uint32(len(payload))},
			{Tag: MakeTag("name"), Offset: 0, Length: 0},
		},
	}
	data := make([]byte, 20+len(payload))
	copy(data[20:], payload)

	got, ok := dir.Find(MakeTag("head"), data)
	if !ok || string(got) != "headpayload" {
		t.Fatalf("Find(head) = %q, %v; want %q, true", got, ok, payload)
	}

	if _, ok := dir.Find(MakeTag("OS/2"), data); ok {
		t.Fatal("Find(OS/2) found a nonexistent table")
	}

	if _, err := dir.Get(MakeTag("OS/2"), data); !Is(err, ErrTableMissing) {
		t.Fatalf("Get(OS/2) = %v; want ErrTableMissing", err)
	}
}

func TestTagStringRoundTrip(t *testing.T) {
	if got := TagString(MakeTag("head")); got != "head" {
		t.Fatalf("TagString(MakeTag(head)) = %q; want head", got)
	}
}

func TestReadDirectorySorted(t *testing.T) {
	var data []byte
	data = append(data, be32(magicTrueType)...)
	data = append(data, 0x00, 0x02) // numTables = 2
	data = append(data, make([]byte, 6)...)
	// record 1: "aaaa" at offset 44 (12-byte header + 2 16-byte records), length 4
	data = append(data, []byte("aaaa")...)
	data = append(data, be32(0)...)
	data = append(data, be32(44)...)
	data = append(data, be32(4)...)
	// record 2: "bbbb" at offset 48, length 4
	data = append(data, []byte("bbbb")...)
	data = append(data, be32(0)...)
	data = append(data, be32(48)...)
	data = append(data, be32(4)...)
	data = append(data, []byte("AAAABBBB")...)

	dir, err := ReadDirectory(data, 0)
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	got, ok := dir.Find(MakeTag("bbbb"), data)
	if !ok || string(got) != "BBBB" {
		t.Fatalf("Find(bbbb) = %q, %v", got, ok)
	}
}
