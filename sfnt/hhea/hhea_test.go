package hhea

import (
	"errors"
	"testing"
)

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

// buildHhea assembles a full 36-byte hhea table: version, ascender,
// descender, lineGap, advanceWidthMax, minLeftSideBearing,
// minRightSideBearing, xMaxExtent, caretSlopeRise, caretSlopeRun,
// caretOffset, 4 reserved int16, metricDataFormat, numberOfHMetrics.
func buildHhea(ascender, descender, lineGap int16, metricDataFormat int16, numberOfHMetrics uint16) []byte {
	var data []byte
	data = append(data, make([]byte, 4)...) // version
	data = append(data, be16(uint16(ascender))...)
	data = append(data, be16(uint16(descender))...)
	data = append(data, be16(uint16(lineGap))...)
	data = append(data, make([]byte, 22)...) // advanceWidthMax..caretOffset (7x2) + 4 reserved int16
	data = append(data, be16(uint16(metricDataFormat))...)
	data = append(data, be16(numberOfHMetrics)...)
	return data
}

func TestReadHhea(t *testing.T) {
	data := buildHhea(1900, -400, 90, 0, 512)
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Ascender != 1900 || info.Descender != -400 || info.LineGap != 90 {
		t.Errorf("got ascender=%d descender=%d lineGap=%d; want 1900,-400,90",
			info.Ascender, info.Descender, info.LineGap)
	}
	if info.NumberOfHMetrics != 512 {
		t.Errorf("NumberOfHMetrics = %d; want 512", info.NumberOfHMetrics)
	}
}

func TestReadHheaUnsupportedMetricFormat(t *testing.T) {
	data := buildHhea(0, 0, 0, 1, 0)
	if _, err := Read(data); !errors.Is(err, ErrUnsupportedMetricFormat) {
		t.Fatalf("Read = %v; want ErrUnsupportedMetricFormat", err)
	}
}
