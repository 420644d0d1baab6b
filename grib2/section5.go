package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// DataRepresentationSection is the data representation section (5) of
// an edition 2 GRIB message. Only the structural header is decoded —
// the template-specific packing parameters (Table 5.0) are kept as
// opaque bytes, since GRIB2 value decode is out of scope for this
// reader (spec.md §4.5). Grounded on pupygrib's
// edition2.DataRepresentationSection and trimmed from teacher's
// section/section5.go, which decoded the template into a
// data.Representation.
type DataRepresentationSection struct {
	Length                     uint32
	NumDataValues              uint32
	DataRepresentationTemplate uint16
	TemplateData               []byte // opaque; not decoded
}

// ParseDataRepresentationSection parses section 5 of an edition 2 GRIB message.
func ParseDataRepresentationSection(data []byte) (*DataRepresentationSection, error) {
	if len(data) < 11 {
		return nil, fmt.Errorf("grib2 data representation section must be at least 11 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 5 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	s := &DataRepresentationSection{Length: length}
	s.NumDataValues, _ = r.Uint32()
	s.DataRepresentationTemplate, _ = r.Uint16()

	templateData, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	s.TemplateData = templateData

	return s, nil
}
