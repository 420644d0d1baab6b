package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// DataSection is the data section (7) of an edition 2 GRIB message.
// Its packed payload is kept as opaque bytes: decoding it requires the
// data representation template from section 5, which this reader
// doesn't interpret (spec.md §4.5). Grounded on pupygrib's
// edition2.DataSection and teacher's section/section7.go (already
// framing-only there).
type DataSection struct {
	Length uint32
	Data   []byte
}

// ParseDataSection parses section 7 of an edition 2 GRIB message.
func ParseDataSection(data []byte) (*DataSection, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("grib2 data section must be at least 5 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 7 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	packed, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}

	return &DataSection{Length: length, Data: packed}, nil
}
