package grib1

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// GridDescriptionSection is the grid description section (2) of an
// edition 1 GRIB message, grounded on pupygrib's
// edition1.gds.GridDescriptionSection.
type GridDescriptionSection struct {
	Length                            uint32
	NumberOfVerticalCoordinateValues  uint8
	PVLLocation                       uint8
	DataRepresentationType            uint8

	// Populated only when DataRepresentationType is 0 (lat/lon) or 10
	// (rotated lat/lon); LatLon.Valid is false otherwise.
	LatLon LatLonGridSection
}

// LatLonGridSection is a latitude/longitude grid section (data
// representation type 0), or its rotated variant (type 10), grounded on
// pupygrib's LatitudeLongitudeGridSection / RotatedLatitudeLongitudeGridSection.
type LatLonGridSection struct {
	Valid bool

	Ni                          uint16
	Nj                          uint16
	LatitudeOfFirstGridPoint    int32 // millidegrees
	LongitudeOfFirstGridPoint  int32 // millidegrees
	ResolutionAndComponentFlags uint8
	LatitudeOfLastGridPoint    int32 // millidegrees
	LongitudeOfLastGridPoint   int32 // millidegrees
	IDirectionIncrement        uint16
	JDirectionIncrement        uint16
	ScanningMode                uint8

	// Rotated (type 10) only.
	Rotated                  bool
	LatitudeOfSouthernPole   int32 // millidegrees
	LongitudeOfSouthernPole  int32 // millidegrees
	AngleOfRotationInDegrees float64
}

// ParseGridDescriptionSection parses section 2 of an edition 1 GRIB
// message, decoding the lat/lon (and rotated lat/lon) subtype when the
// data representation type indicates one, matching pupygrib's
// edition1.gds.get_section dispatch table {0: LatitudeLongitudeGridSection,
// 10: RotatedLatitudeLongitudeGridSection}.
func ParseGridDescriptionSection(data []byte) (*GridDescriptionSection, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("grib1 grid description section must be at least 6 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint24()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 2 length mismatch: header says %d bytes, have %d", length, len(data))
	}

	s := &GridDescriptionSection{Length: length}
	s.NumberOfVerticalCoordinateValues, _ = r.Uint8()
	s.PVLLocation, _ = r.Uint8()
	s.DataRepresentationType, _ = r.Uint8()

	switch s.DataRepresentationType {
	case 0, 10:
		ll, err := parseLatLonGrid(data, s.DataRepresentationType == 10)
		if err != nil {
			return nil, fmt.Errorf("section 2: lat/lon grid: %w", err)
		}
		s.LatLon = *ll
	}

	return s, nil
}

func parseLatLonGrid(data []byte, rotated bool) (*LatLonGridSection, error) {
	minLen := 28
	if rotated {
		minLen = 42
	}
	if len(data) < minLen {
		return nil, fmt.Errorf("must be at least %d bytes, got %d", minLen, len(data))
	}
	r := bin.NewReader(data)
	if err := r.SetOffset(6); err != nil {
		return nil, err
	}

	ll := &LatLonGridSection{Valid: true, Rotated: rotated}
	ll.Ni, _ = r.Uint16()
	ll.Nj, _ = r.Uint16()

	lat1, err := r.Int24()
	if err != nil {
		return nil, err
	}
	ll.LatitudeOfFirstGridPoint = lat1
	lon1, err := r.Int24()
	if err != nil {
		return nil, err
	}
	ll.LongitudeOfFirstGridPoint = lon1

	ll.ResolutionAndComponentFlags, _ = r.Uint8()

	lat2, err := r.Int24()
	if err != nil {
		return nil, err
	}
	ll.LatitudeOfLastGridPoint = lat2
	lon2, err := r.Int24()
	if err != nil {
		return nil, err
	}
	ll.LongitudeOfLastGridPoint = lon2

	ll.IDirectionIncrement, _ = r.Uint16()
	ll.JDirectionIncrement, _ = r.Uint16()
	ll.ScanningMode, _ = r.Uint8()

	if rotated {
		if err := r.SetOffset(32); err != nil {
			return nil, err
		}
		southPoleLat, err := r.Int24()
		if err != nil {
			return nil, err
		}
		ll.LatitudeOfSouthernPole = southPoleLat
		southPoleLon, err := r.Int24()
		if err != nil {
			return nil, err
		}
		ll.LongitudeOfSouthernPole = southPoleLon
		angle, err := r.Grib1Float()
		if err != nil {
			return nil, err
		}
		ll.AngleOfRotationInDegrees = angle
	}

	return ll, nil
}
