package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// LocalUseSection is the local use section (2) of an edition 2 GRIB
// message: optional, center-specific opaque bytes. Grounded on
// pupygrib's edition2.LocalUseSection and teacher's section/section2.go.
type LocalUseSection struct {
	Length uint32
	Data   []byte
}

// ParseLocalUseSection parses section 2 of an edition 2 GRIB message.
func ParseLocalUseSection(data []byte) (*LocalUseSection, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("grib2 local use section must be at least 5 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 2 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	localData, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}

	return &LocalUseSection{Length: length, Data: localData}, nil
}

// IsEmpty reports whether the section carries no local use data.
func (s *LocalUseSection) IsEmpty() bool {
	return len(s.Data) == 0
}
