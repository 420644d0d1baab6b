package grib2

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// ProductDefinitionSection is the product definition section (4) of an
// edition 2 GRIB message. Only the structural header is decoded — the
// template-specific product definition (Table 4.0) is kept as opaque
// bytes, since GRIB2 product/value decode is out of scope for this
// reader (spec.md §4.5). Grounded on pupygrib's
// edition2.ProductDefinitionSection and trimmed from teacher's
// section/section4.go, which decoded the template into a product.Product.
type ProductDefinitionSection struct {
	Length                    uint32
	CoordinateValuesCount     uint16
	ProductDefinitionTemplate uint16
	TemplateData              []byte // opaque; not decoded
}

// ParseProductDefinitionSection parses section 4 of an edition 2 GRIB message.
func ParseProductDefinitionSection(data []byte) (*ProductDefinitionSection, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("grib2 product definition section must be at least 9 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 4 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}

	s := &ProductDefinitionSection{Length: length}
	s.CoordinateValuesCount, _ = r.Uint16()
	s.ProductDefinitionTemplate, _ = r.Uint16()

	templateData, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	s.TemplateData = templateData

	return s, nil
}
