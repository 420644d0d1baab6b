package grib1

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// BitMapSection is the bit-map section (3) of an edition 1 GRIB
// message, grounded on pupygrib's edition1.bitmap.BitMapSection.
type BitMapSection struct {
	Length                          uint32
	NumberOfUnusedBitsAtEndOfSection uint8
	TableReference                  uint16
	Bitmap                           []bool // true = data value present
}

// ParseBitMapSection parses section 3 of an edition 1 GRIB message.
// Catalogued bit-maps (tableReference > 0) are rejected as unsupported,
// matching pupygrib's BitMapField.get_value.
func ParseBitMapSection(data []byte) (*BitMapSection, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("grib1 bit-map section must be at least 6 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint24()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 3 length mismatch: header says %d bytes, have %d", length, len(data))
	}

	s := &BitMapSection{Length: length}
	s.NumberOfUnusedBitsAtEndOfSection, _ = r.Uint8()
	s.TableReference, _ = r.Uint16()

	if s.TableReference > 0 {
		return nil, fmt.Errorf("section 3: catalogued bit-maps (tableReference=%d) are not supported", s.TableReference)
	}

	packed, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, fmt.Errorf("section 3: bitmap bytes: %w", err)
	}

	totalBits := len(packed) * 8
	usableBits := totalBits - int(s.NumberOfUnusedBitsAtEndOfSection)
	if usableBits < 0 {
		return nil, fmt.Errorf("section 3: numberOfUnusedBitsAtEndOfSection %d exceeds available bits %d",
			s.NumberOfUnusedBitsAtEndOfSection, totalBits)
	}

	bitmap := make([]bool, usableBits)
	for i := 0; i < usableBits; i++ {
		byteIdx := i / 8
		bitIdx := 7 - (i % 8)
		bitmap[i] = packed[byteIdx]&(1<<uint(bitIdx)) != 0
	}
	s.Bitmap = bitmap

	return s, nil
}
