// Package grib2 parses edition 2 GRIB messages. Per spec.md §4.5, this
// is framing-only: every section's structural header is decoded (so
// callers can inspect centre, discipline, template numbers, and walk
// the section chain), but template-specific grid/product/data
// decoding is out of scope.
package grib2

import (
	"fmt"
	"time"

	"github.com/mmp/wxgrib/internal/field"
)

// Message is a single parsed edition 2 GRIB message.
type Message struct {
	name string
	buf  []byte

	indicator *field.Lazy[*IndicatorSection]
	ids       *field.Lazy[*IdentificationSection]
	loc       *field.Lazy[*LocalUseSection]
	gds       *field.Lazy[*GridDefinitionSection]
	pds       *field.Lazy[*ProductDefinitionSection]
	drs       *field.Lazy[*DataRepresentationSection]
	bitmap    *field.Lazy[*BitMapSection]
	data      *field.Lazy[*DataSection]
	end       *field.Lazy[*EndSection]
}

// NewMessage wraps the raw bytes of one complete edition 2 GRIB message
// (from "GRIB" through "7777") for lazy decoding. name is a diagnostic
// label (typically the source file name), may be empty.
func NewMessage(buf []byte, name string) *Message {
	m := &Message{name: name, buf: buf}

	m.indicator = field.NewLazy(func() (*IndicatorSection, error) {
		if len(buf) < 16 {
			return nil, fmt.Errorf("message too short for indicator section: %d bytes", len(buf))
		}
		return ParseIndicatorSection(buf[0:16])
	})

	m.ids = field.NewLazy(func() (*IdentificationSection, error) {
		return parseSectionAt32(buf, 16, ParseIdentificationSection)
	})

	m.loc = field.NewLazy(func() (*LocalUseSection, error) {
		idsEnd, err := m.idsEnd()
		if err != nil {
			return nil, err
		}
		if idsEnd+5 > len(buf) || buf[idsEnd+4] != 2 {
			return nil, nil
		}
		return parseSectionAt32(buf, idsEnd, ParseLocalUseSection)
	})

	m.gds = field.NewLazy(func() (*GridDefinitionSection, error) {
		offset, err := m.gdsOffset()
		if err != nil {
			return nil, err
		}
		return parseSectionAt32(buf, offset, ParseGridDefinitionSection)
	})

	m.pds = field.NewLazy(func() (*ProductDefinitionSection, error) {
		gds, err := m.gds.Get()
		if err != nil {
			return nil, err
		}
		offset, err := m.gdsOffset()
		if err != nil {
			return nil, err
		}
		offset += int(gds.Length)
		return parseSectionAt32(buf, offset, ParseProductDefinitionSection)
	})

	m.drs = field.NewLazy(func() (*DataRepresentationSection, error) {
		pdsEnd, err := m.pdsEnd()
		if err != nil {
			return nil, err
		}
		if pdsEnd+5 > len(buf) || buf[pdsEnd+4] != 5 {
			return nil, nil
		}
		return parseSectionAt32(buf, pdsEnd, ParseDataRepresentationSection)
	})

	m.bitmap = field.NewLazy(func() (*BitMapSection, error) {
		offset, err := m.bitmapOffset()
		if err != nil {
			return nil, err
		}
		gds, err := m.gds.Get()
		if err != nil {
			return nil, err
		}
		length, err := sectionLength32(buf, offset)
		if err != nil {
			return nil, err
		}
		if offset+length > len(buf) {
			return nil, fmt.Errorf("section at offset %d claims length %d, exceeds message bounds", offset, length)
		}
		return ParseBitMapSection(buf[offset:offset+length], gds.NumDataPoints)
	})

	m.data = field.NewLazy(func() (*DataSection, error) {
		bm, err := m.bitmap.Get()
		if err != nil {
			return nil, err
		}
		offset, err := m.bitmapOffset()
		if err != nil {
			return nil, err
		}
		offset += int(bm.Length)
		return parseSectionAt32(buf, offset, ParseDataSection)
	})

	m.end = field.NewLazy(func() (*EndSection, error) {
		data, err := m.data.Get()
		if err != nil {
			return nil, err
		}
		offset, err := m.dataOffset()
		if err != nil {
			return nil, err
		}
		offset += int(data.Length)
		if offset+4 > len(buf) {
			return nil, fmt.Errorf("message too short for end section at offset %d", offset)
		}
		return ParseEndSection(buf[offset : offset+4])
	})

	return m
}

func sectionLength32(buf []byte, offset int) (int, error) {
	if offset+4 > len(buf) {
		return 0, fmt.Errorf("message too short for section length at offset %d", offset)
	}
	return int(uint32(buf[offset])<<24 | uint32(buf[offset+1])<<16 | uint32(buf[offset+2])<<8 | uint32(buf[offset+3])), nil
}

func parseSectionAt32[T any](buf []byte, offset int, parse func([]byte) (T, error)) (T, error) {
	var zero T
	length, err := sectionLength32(buf, offset)
	if err != nil {
		return zero, err
	}
	if offset+length > len(buf) {
		return zero, fmt.Errorf("section at offset %d claims length %d, exceeds message bounds", offset, length)
	}
	return parse(buf[offset : offset+length])
}

func (m *Message) idsEnd() (int, error) {
	ids, err := m.ids.Get()
	if err != nil {
		return 0, err
	}
	return 16 + int(ids.Length), nil
}

// gdsOffset walks prevsection = loc or ids, matching pupygrib's
// edition2.Edition2.gds: "self.loc or self.ids".
func (m *Message) gdsOffset() (int, error) {
	idsEnd, err := m.idsEnd()
	if err != nil {
		return 0, err
	}
	loc, err := m.loc.Get()
	if err != nil {
		return 0, err
	}
	if loc != nil {
		return idsEnd + int(loc.Length), nil
	}
	return idsEnd, nil
}

func (m *Message) pdsEnd() (int, error) {
	gds, err := m.gds.Get()
	if err != nil {
		return 0, err
	}
	offset, err := m.gdsOffset()
	if err != nil {
		return 0, err
	}
	offset += int(gds.Length)
	pds, err := m.pds.Get()
	if err != nil {
		return 0, err
	}
	return offset + int(pds.Length), nil
}

// bitmapOffset walks prevsection = drs or pds, matching pupygrib's
// edition2.Edition2.bitmap: "self.drs or self.pds".
func (m *Message) bitmapOffset() (int, error) {
	pdsEnd, err := m.pdsEnd()
	if err != nil {
		return 0, err
	}
	drs, err := m.drs.Get()
	if err != nil {
		return 0, err
	}
	if drs != nil {
		return pdsEnd + int(drs.Length), nil
	}
	return pdsEnd, nil
}

func (m *Message) dataOffset() (int, error) {
	offset, err := m.bitmapOffset()
	if err != nil {
		return 0, err
	}
	bm, err := m.bitmap.Get()
	if err != nil {
		return 0, err
	}
	return offset + int(bm.Length), nil
}

// Name returns the diagnostic source name associated with this message.
func (m *Message) Name() string { return m.name }

// Edition always returns 2.
func (m *Message) Edition() int { return 2 }

func (m *Message) Indicator() (*IndicatorSection, error)             { return m.indicator.Get() }
func (m *Message) Identification() (*IdentificationSection, error)   { return m.ids.Get() }
func (m *Message) LocalUse() (*LocalUseSection, error)                { return m.loc.Get() }
func (m *Message) GridDefinition() (*GridDefinitionSection, error)    { return m.gds.Get() }
func (m *Message) ProductDefinition() (*ProductDefinitionSection, error) {
	return m.pds.Get()
}
func (m *Message) DataRepresentation() (*DataRepresentationSection, error) {
	return m.drs.Get()
}
func (m *Message) BitMap() (*BitMapSection, error) { return m.bitmap.Get() }
func (m *Message) Data() (*DataSection, error)     { return m.data.Get() }
func (m *Message) End() (*EndSection, error)       { return m.end.Get() }

// Section returns the message's section at the given index (0 =
// indicator, 1 = identification, 2 = local use, 3 = grid definition,
// 4 = product definition, 5 = data representation, 6 = bit-map,
// 7 = data, 8 = end). An index outside [0, 8] returns an error,
// matching pupygrib's Edition2.__getitem__ raising IndexError for an
// out-of-range section number rather than silently returning nil.
func (m *Message) Section(index int) (interface{}, error) {
	switch index {
	case 0:
		return m.Indicator()
	case 1:
		return m.Identification()
	case 2:
		return m.LocalUse()
	case 3:
		return m.GridDefinition()
	case 4:
		return m.ProductDefinition()
	case 5:
		return m.DataRepresentation()
	case 6:
		return m.BitMap()
	case 7:
		return m.Data()
	case 8:
		return m.End()
	default:
		return nil, fmt.Errorf("grib2: no such section %d", index)
	}
}

// GetTime returns the message's reference time, grounded on
// pupygrib's edition2.Edition2.get_time.
func (m *Message) GetTime() (time.Time, error) {
	ids, err := m.ids.Get()
	if err != nil {
		return time.Time{}, err
	}
	return ids.ReferenceTime, nil
}

// GetCoordinates always returns an error: GRIB2 coordinate
// reconstruction is out of scope for this reader (spec.md §4.5),
// matching pupygrib's edition2.Edition2.get_coordinates, which raises
// NotImplementedError unconditionally.
func (m *Message) GetCoordinates() (interface{}, error) {
	return nil, fmt.Errorf("grib2: coordinate reconstruction is not supported")
}

// GetValues always returns an error: GRIB2 value decoding is out of
// scope for this reader (spec.md §4.5), matching pupygrib's
// edition2.Edition2.get_values, which raises NotImplementedError
// unconditionally.
func (m *Message) GetValues() (interface{}, error) {
	return nil, fmt.Errorf("grib2: value decoding is not supported")
}
