// Package grib2 parses edition 2 GRIB message framing: the section
// chain from the indicator through the end trailer, with each
// section's structural header fields (lengths, template numbers,
// counts), but not template-specific grid/product/data decoding, which
// is out of scope for this reader.
package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
	"github.com/mmp/wxgrib/tables"
)

// IndicatorSection is the indicator section (0) of an edition 2 GRIB
// message: 16 fixed bytes identifying the message, its discipline, and
// its total length. Grounded on pupygrib's edition2.IndicatorSection.
type IndicatorSection struct {
	Discipline    uint8
	EditionNumber uint8
	TotalLength   uint64
}

// ParseIndicatorSection parses the 16-byte indicator section.
func ParseIndicatorSection(data []byte) (*IndicatorSection, error) {
	if len(data) != 16 {
		return nil, fmt.Errorf("grib2 indicator section must be 16 bytes, got %d", len(data))
	}
	if data[0] != 'G' || data[1] != 'R' || data[2] != 'I' || data[3] != 'B' {
		return nil, fmt.Errorf("invalid GRIB magic number: got %q, expected \"GRIB\"", string(data[0:4]))
	}

	r := bin.NewReader(data)
	r.Skip(6) // magic (4) + 2 reserved bytes
	discipline, _ := r.Uint8()
	edition, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	if edition != 2 {
		return nil, fmt.Errorf("unsupported GRIB edition: got %d, expected 2", edition)
	}
	totalLength, err := r.Uint64()
	if err != nil {
		return nil, err
	}

	return &IndicatorSection{Discipline: discipline, EditionNumber: edition, TotalLength: totalLength}, nil
}

// DisciplineName returns the human-readable name for the discipline code (WMO Table 0.0).
func (s *IndicatorSection) DisciplineName() string {
	return tables.GetDisciplineName(int(s.Discipline))
}

// EndSection is the end section (8) of an edition 2 GRIB message: the
// fixed 4-byte "7777" trailer.
type EndSection struct {
	EndOfMessage []byte
}

// ParseEndSection parses the 4-byte end section.
func ParseEndSection(data []byte) (*EndSection, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("grib2 end section must be 4 bytes, got %d", len(data))
	}
	return &EndSection{EndOfMessage: append([]byte(nil), data...)}, nil
}
