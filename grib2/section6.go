package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// BitMapSection is the bit-map section (6) of an edition 2 GRIB
// message. Structurally this is grounded on teacher's
// section/section6.go; pupygrib's own edition2.BitMapSection (see
// original_source) decodes only the two header fields and leaves the
// payload alone, because pupygrib defers value decoding to its
// template-dispatched data section entirely. The bitmap itself isn't
// template-specific, though — its layout is fixed regardless of grid
// or product template — so unlike the rest of this package it's
// decoded in full here rather than left as an opaque byte range.
type BitMapSection struct {
	Length          uint32
	BitmapIndicator uint8
	Bitmap          []bool // nil when BitmapIndicator != 0
}

// ParseBitMapSection parses section 6 of an edition 2 GRIB message.
// numGridPoints (from the grid definition section) is required to know
// how many bits to read when BitmapIndicator is 0.
func ParseBitMapSection(data []byte, numGridPoints uint32) (*BitMapSection, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("grib2 bit-map section must be at least 6 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 6 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	indicator, err := r.Uint8()
	if err != nil {
		return nil, err
	}

	var bitmap []bool
	switch indicator {
	case 0:
		packed, err := r.Bytes(r.Remaining())
		if err != nil {
			return nil, err
		}
		bitmap, err = unpackBitmap(packed, numGridPoints)
		if err != nil {
			return nil, fmt.Errorf("section 6: %w", err)
		}
	case 254:
		return nil, fmt.Errorf("section 6: bitmap indicator 254 (previously defined bitmap) is not supported")
	case 255:
		bitmap = nil
	default:
		return nil, fmt.Errorf("section 6: unsupported bitmap indicator %d", indicator)
	}

	return &BitMapSection{Length: length, BitmapIndicator: indicator, Bitmap: bitmap}, nil
}

// unpackBitmap reads numGridPoints single-bit flags out of the
// section's bit-map payload, one data presence bit per grid point,
// most significant bit first. It walks data with the same
// bin.BitReader bit-cursor the simple-packing sample unpacker uses,
// since a bitmap is just a degenerate case of bit-packed values at
// width 1.
func unpackBitmap(data []byte, numGridPoints uint32) ([]bool, error) {
	expectedBytes := (numGridPoints + 7) / 8
	if uint32(len(data)) < expectedBytes {
		return nil, fmt.Errorf("bitmap data too short: need %d bytes for %d grid points, got %d",
			expectedBytes, numGridPoints, len(data))
	}

	br := bin.NewBitReader(data)
	bitmap := make([]bool, numGridPoints)
	for i := uint32(0); i < numGridPoints; i++ {
		bit, err := br.ReadBits(1)
		if err != nil {
			return nil, fmt.Errorf("bit %d: %w", i, err)
		}
		bitmap[i] = bit != 0
	}
	return bitmap, nil
}

// HasBitmap reports whether this section carries an explicit bitmap.
func (s *BitMapSection) HasBitmap() bool {
	return s.Bitmap != nil
}

// CountValidPoints returns the number of grid points with valid data.
func (s *BitMapSection) CountValidPoints() int {
	n := 0
	for _, valid := range s.Bitmap {
		if valid {
			n++
		}
	}
	return n
}
