package grib2

import (
	"fmt"
	"time"

	"github.com/mmp/wxgrib/internal/bin"
	"github.com/mmp/wxgrib/tables"
)

// IdentificationSection is the identification section (1) of an
// edition 2 GRIB message, grounded on pupygrib's
// edition2.IdentificationSection (teacher's section/section1.go ported
// to internal/bin and trimmed of its own time-field validation, since
// pupygrib performs none and this reader follows suit).
type IdentificationSection struct {
	Length                uint32
	Centre                uint16
	SubCentre             uint16
	TablesVersion         uint8
	LocalTablesVersion    uint8
	SignificanceOfRefTime uint8
	ReferenceTime         time.Time
	ProductionStatus      uint8
	TypeOfData            uint8
}

// ParseIdentificationSection parses section 1 of an edition 2 GRIB message.
func ParseIdentificationSection(data []byte) (*IdentificationSection, error) {
	if len(data) < 21 {
		return nil, fmt.Errorf("grib2 identification section must be at least 21 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint32()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 1 length mismatch: header says %d bytes, have %d", length, len(data))
	}
	if err := r.Skip(1); err != nil { // numberOfSection
		return nil, err
	}

	s := &IdentificationSection{Length: length}
	s.Centre, _ = r.Uint16()
	s.SubCentre, _ = r.Uint16()
	s.TablesVersion, _ = r.Uint8()
	s.LocalTablesVersion, _ = r.Uint8()
	s.SignificanceOfRefTime, _ = r.Uint8()

	year, _ := r.Uint16()
	month, _ := r.Uint8()
	day, _ := r.Uint8()
	hour, _ := r.Uint8()
	minute, _ := r.Uint8()
	second, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	s.ReferenceTime = time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, time.UTC)

	s.ProductionStatus, _ = r.Uint8()
	typeOfData, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	s.TypeOfData = typeOfData

	return s, nil
}

// CenterName returns the human-readable name of the originating centre.
func (s *IdentificationSection) CenterName() string {
	return tables.GetCenterName(int(s.Centre))
}

// TimeSignificanceName returns the human-readable name of the reference time significance.
func (s *IdentificationSection) TimeSignificanceName() string {
	return tables.GetTimeSignificanceName(int(s.SignificanceOfRefTime))
}

// ProductionStatusName returns the human-readable name of the production status.
func (s *IdentificationSection) ProductionStatusName() string {
	return tables.GetProductionStatusName(int(s.ProductionStatus))
}

// DataTypeName returns the human-readable name of the type of processed data.
func (s *IdentificationSection) DataTypeName() string {
	return tables.GetDataTypeName(int(s.TypeOfData))
}
