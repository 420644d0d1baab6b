package grib1

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// BinaryDataSection is the binary data section (4) of an edition 1
// GRIB message, grounded on pupygrib's edition1.bds.BinaryDataSection
// and its SimpleGridDataSection subtype (data/template50.go in the
// reference Go codebase uses the same reference+scale formula for
// GRIB2 simple packing).
type BinaryDataSection struct {
	Length            uint32
	DataFlag          uint8
	BinaryScaleFactor int32
	ReferenceValue    float64
	BitsPerValue      uint8

	rawData []byte // section bytes at and after the packed values, for lazy unpack
}

// IsSimplePacked reports whether this section uses the only packing
// scheme this reader understands (dataFlag high nibble 0x00), matching
// pupygrib's edition1.bds.get_section dispatch {0x00: SimpleGridDataSection}.
func (s *BinaryDataSection) IsSimplePacked() bool {
	return s.DataFlag&0xF0 == 0x00
}

// ParseBinaryDataSection parses section 4 of an edition 1 GRIB message.
func ParseBinaryDataSection(data []byte) (*BinaryDataSection, error) {
	if len(data) < 11 {
		return nil, fmt.Errorf("grib1 binary data section must be at least 11 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint24()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 4 length mismatch: header says %d bytes, have %d", length, len(data))
	}

	s := &BinaryDataSection{Length: length}
	s.DataFlag, _ = r.Uint8()
	binScale, err := r.Int16()
	if err != nil {
		return nil, fmt.Errorf("section 4: binary scale factor: %w", err)
	}
	s.BinaryScaleFactor = binScale
	refValue, err := r.Grib1Float()
	if err != nil {
		return nil, fmt.Errorf("section 4: reference value: %w", err)
	}
	s.ReferenceValue = refValue
	s.BitsPerValue, _ = r.Uint8()

	rest, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	s.rawData = rest

	return s, nil
}
