// Package grib1 decodes edition 1 GRIB messages in full: framing,
// product definition, grid description, bit-map, and binary data
// sections, plus value reconstruction and coordinate generation.
//
// The section chain is assembled lazily, mirroring pupygrib's
// edition1.Edition1 cached-property chain: each section's offset is
// computed from the previous section's end, and a section's bytes are
// only decoded the first time a caller asks for it.
package grib1

import (
	"fmt"
	"math"
	"time"

	"github.com/mmp/wxgrib/internal/field"
)

// Message is a single parsed edition 1 GRIB message.
type Message struct {
	name string
	buf  []byte

	indicator *field.Lazy[*IndicatorSection]
	pds       *field.Lazy[*ProductDefinitionSection]
	gds       *field.Lazy[*GridDescriptionSection]
	bitmap    *field.Lazy[*BitMapSection]
	bds       *field.Lazy[*BinaryDataSection]
	end       *field.Lazy[*EndSection]
}

// NewMessage wraps the raw bytes of one complete edition 1 GRIB message
// (from "GRIB" through "7777") for lazy decoding. name is a diagnostic
// label (typically the source file name) carried through from the
// stream reader; it may be empty.
func NewMessage(buf []byte, name string) *Message {
	m := &Message{name: name, buf: buf}

	m.indicator = field.NewLazy(func() (*IndicatorSection, error) {
		if len(buf) < 8 {
			return nil, fmt.Errorf("message too short for indicator section: %d bytes", len(buf))
		}
		return ParseIndicatorSection(buf[0:8])
	})

	m.pds = field.NewLazy(func() (*ProductDefinitionSection, error) {
		return parseSectionAt(buf, 8, ParseProductDefinitionSection)
	})

	m.gds = field.NewLazy(func() (*GridDescriptionSection, error) {
		pds, err := m.pds.Get()
		if err != nil {
			return nil, err
		}
		if !pds.HasGridDescription() {
			return nil, nil
		}
		offset, err := m.gdsOffset()
		if err != nil {
			return nil, err
		}
		return parseSectionAt(buf, offset, ParseGridDescriptionSection)
	})

	m.bitmap = field.NewLazy(func() (*BitMapSection, error) {
		pds, err := m.pds.Get()
		if err != nil {
			return nil, err
		}
		if !pds.HasBitmap() {
			return nil, nil
		}
		offset, err := m.bitmapOffset()
		if err != nil {
			return nil, err
		}
		return parseSectionAt(buf, offset, ParseBitMapSection)
	})

	m.bds = field.NewLazy(func() (*BinaryDataSection, error) {
		offset, err := m.bdsOffset()
		if err != nil {
			return nil, err
		}
		return parseSectionAt(buf, offset, ParseBinaryDataSection)
	})

	m.end = field.NewLazy(func() (*EndSection, error) {
		offset, err := m.endOffset()
		if err != nil {
			return nil, err
		}
		if offset+4 > len(buf) {
			return nil, fmt.Errorf("message too short for end section at offset %d", offset)
		}
		return ParseEndSection(buf[offset : offset+4])
	})

	return m
}

// parseSectionAt reads a section's 3-byte length prefix at offset, then
// parses the whole section with parse.
func parseSectionAt[T any](buf []byte, offset int, parse func([]byte) (T, error)) (T, error) {
	var zero T
	if offset+3 > len(buf) {
		return zero, fmt.Errorf("message too short for section length at offset %d", offset)
	}
	length := int(uint32(buf[offset])<<16 | uint32(buf[offset+1])<<8 | uint32(buf[offset+2]))
	if offset+length > len(buf) {
		return zero, fmt.Errorf("section at offset %d claims length %d, exceeds message bounds", offset, length)
	}
	return parse(buf[offset : offset+length])
}

// gdsOffset, bitmapOffset, bdsOffset and endOffset each compute the
// byte offset a section would start at, walking the chain
// pds -> gds? -> bitmap? -> bds -> end exactly as pupygrib's
// get_section cached-property chain does with "(self.gds or self.pds).end"
// and "(self.bitmap or self.gds or self.pds).end". Each depends only on
// sections strictly before it, so none of these recurse back into the
// lazy field they help compute.

func (m *Message) gdsOffset() (int, error) {
	pds, err := m.pds.Get()
	if err != nil {
		return 0, err
	}
	return 8 + int(pds.Length), nil
}

func (m *Message) bitmapOffset() (int, error) {
	pds, err := m.pds.Get()
	if err != nil {
		return 0, err
	}
	offset := 8 + int(pds.Length)
	if pds.HasGridDescription() {
		gds, err := m.gds.Get()
		if err != nil {
			return 0, err
		}
		offset += int(gds.Length)
	}
	return offset, nil
}

func (m *Message) bdsOffset() (int, error) {
	pds, err := m.pds.Get()
	if err != nil {
		return 0, err
	}
	offset, err := m.bitmapOffset()
	if err != nil {
		return 0, err
	}
	if pds.HasBitmap() {
		bm, err := m.bitmap.Get()
		if err != nil {
			return 0, err
		}
		offset += int(bm.Length)
	}
	return offset, nil
}

func (m *Message) endOffset() (int, error) {
	offset, err := m.bdsOffset()
	if err != nil {
		return 0, err
	}
	bds, err := m.bds.Get()
	if err != nil {
		return 0, err
	}
	return offset + int(bds.Length), nil
}

// Name returns the diagnostic source name associated with this message,
// or "" if none was given.
func (m *Message) Name() string { return m.name }

// Edition always returns 1.
func (m *Message) Edition() int { return 1 }

// Indicator returns the message's indicator section.
func (m *Message) Indicator() (*IndicatorSection, error) { return m.indicator.Get() }

// ProductDefinition returns the message's product definition section.
func (m *Message) ProductDefinition() (*ProductDefinitionSection, error) { return m.pds.Get() }

// GridDescription returns the message's grid description section, or
// nil if section1Flags indicates none is present.
func (m *Message) GridDescription() (*GridDescriptionSection, error) { return m.gds.Get() }

// BitMap returns the message's bit-map section, or nil if
// section1Flags indicates none is present.
func (m *Message) BitMap() (*BitMapSection, error) { return m.bitmap.Get() }

// BinaryData returns the message's binary data section.
func (m *Message) BinaryData() (*BinaryDataSection, error) { return m.bds.Get() }

// End returns the message's end section.
func (m *Message) End() (*EndSection, error) { return m.end.Get() }

// Section returns the message's section at the given index (0 =
// indicator, 1 = product definition, 2 = grid description, 3 = bit-map,
// 4 = binary data, 5 = end). An index outside [0, 5] returns an error,
// matching pupygrib's Edition1.__getitem__ raising IndexError for an
// out-of-range section number rather than silently returning nil.
func (m *Message) Section(index int) (interface{}, error) {
	switch index {
	case 0:
		return m.Indicator()
	case 1:
		return m.ProductDefinition()
	case 2:
		return m.GridDescription()
	case 3:
		return m.BitMap()
	case 4:
		return m.BinaryData()
	case 5:
		return m.End()
	default:
		return nil, fmt.Errorf("grib1: no such section %d", index)
	}
}

// GetTime returns the message's reference time, grounded on
// pupygrib's edition1.Edition1.get_time: centuryOfReferenceTimeOfData
// combines with yearOfCentury, with a special case when yearOfCentury
// is 100 (used as a sentinel for "year 00 of the century").
func (m *Message) GetTime() (time.Time, error) {
	pds, err := m.pds.Get()
	if err != nil {
		return time.Time{}, err
	}
	century := int(pds.CenturyOfReferenceTimeOfData)
	var year int
	if pds.YearOfCentury == 100 {
		year = century * 100
	} else {
		year = (century-1)*100 + int(pds.YearOfCentury)
	}
	return time.Date(year, time.Month(pds.Month), int(pds.Day), int(pds.Hour), int(pds.Minute), 0, 0, time.UTC), nil
}

// GetCoordinates returns the message's latitude/longitude mesh. It
// returns an error if the message has no (decodable) grid description
// section, matching pupygrib's NotImplementedError for catalogued
// grids.
func (m *Message) GetCoordinates() (*Coordinates, error) {
	gds, err := m.gds.Get()
	if err != nil {
		return nil, err
	}
	if gds == nil {
		return nil, fmt.Errorf("grib1: message has no grid description section (catalogued grids are not supported)")
	}
	if !gds.LatLon.Valid {
		return nil, fmt.Errorf("grib1: grid description data representation type %d is not supported", gds.DataRepresentationType)
	}
	return gds.LatLon.Coordinates()
}

// GetValues returns the message's reconstructed, scaled data values as
// a 2-D grid, applying the bit-map mask (when present) before reordering
// for scanning mode, grounded on pupygrib's edition1.Edition1.get_values.
// The grid is (Nj, Ni) shaped for i-consecutive scans and (Ni, Nj)
// shaped for j-consecutive scans (scanning mode bit 0x20); see
// LatLonGridSection.Reshape. Only simple grid-point packing is decoded;
// any other packing returns an error.
func (m *Message) GetValues() ([][]float64, error) {
	pds, err := m.pds.Get()
	if err != nil {
		return nil, err
	}
	bds, err := m.bds.Get()
	if err != nil {
		return nil, err
	}
	if !bds.IsSimplePacked() {
		return nil, fmt.Errorf("grib1: data flag 0x%02x: only simple grid-point packing is supported", bds.DataFlag)
	}
	bm, err := m.bitmap.Get()
	if err != nil {
		return nil, err
	}
	gds, err := m.gds.Get()
	if err != nil {
		return nil, err
	}

	numGridPoints := 0
	if gds != nil && gds.LatLon.Valid {
		numGridPoints = int(gds.LatLon.Ni) * int(gds.LatLon.Nj)
	}

	var rawCount int
	if bm != nil {
		rawCount = countSet(bm.Bitmap)
	} else {
		rawCount = numGridPoints
	}

	raw, err := bds.ReconstructValues(rawCount)
	if err != nil {
		return nil, err
	}
	scaled := pds.ScaleValues(raw)

	var full []float64
	if bm != nil {
		if len(bm.Bitmap) != numGridPoints {
			return nil, fmt.Errorf("grib1: bitmap length %d does not match grid size %d", len(bm.Bitmap), numGridPoints)
		}
		if len(scaled) < rawCount {
			return nil, fmt.Errorf("grib1: bitmap marks %d points present but data section holds %d values", rawCount, len(scaled))
		}
		full = make([]float64, numGridPoints)
		cursor := 0
		for i, present := range bm.Bitmap {
			if present {
				full[i] = scaled[cursor]
				cursor++
			} else {
				full[i] = math.NaN()
			}
		}
	} else {
		full = scaled
	}

	if gds == nil || !gds.LatLon.Valid {
		return nil, fmt.Errorf("grib1: message has no grid description section (catalogued grids are not supported)")
	}
	return gds.LatLon.Reshape(full)
}

func countSet(bits []bool) int {
	n := 0
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}
