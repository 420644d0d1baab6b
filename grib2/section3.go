package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// GridDefinitionSection is the grid definition section (3) of an
// edition 2 GRIB message. Only the structural header is decoded — the
// template-specific grid definition (Table 3.1) is kept as opaque
// bytes, since GRIB2 coordinate reconstruction is out of scope for this
// reader (spec.md §4.5). Grounded on pupygrib's
// edition2.GridDescriptionSection and trimmed from teacher's
// section/section3.go, which decoded the template into a grid.Grid.
type GridDefinitionSection struct {
	Length                  uint32
	Source                  uint8
	NumDataPoints            uint32
	NumOctetsOptionalList    uint8
	InterpretOptionalList    uint8
	TemplateNumber           uint16
	TemplateData             []byte // opaque; not decoded
}

// ParseGridDefinitionSection parses section 3 of an edition 2 GRIB message.
func ParseGridDefinitionSection(data []byte) (*GridDefinitionSection, error) {
	if len(data) < 14 {
		return nil, fmt.Errorf("grib2 grid definition section must be at least 14 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 3 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	s := &GridDefinitionSection{Length: length}
	s.Source, _ = r.Uint8()
	s.NumDataPoints, _ = r.Uint32()
	s.NumOctetsOptionalList, _ = r.Uint8()
	s.InterpretOptionalList, _ = r.Uint8()
	s.TemplateNumber, _ = r.Uint16()

	templateData, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	s.TemplateData = templateData

	return s, nil
}
