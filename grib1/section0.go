package grib1

import (
	"fmt"

	"github.com/mmp/wxgrib/internal/bin"
)

// IndicatorSection is the indicator section (0) of an edition 1 GRIB
// message: a fixed 8 bytes identifying the message as GRIB1 and giving
// its total length. Grounded on pupygrib's edition1.IndicatorSection.
type IndicatorSection struct {
	Identifier    []byte // always "GRIB"
	TotalLength   uint32 // 24-bit total message length, including this section
	EditionNumber uint8
}

// ParseIndicatorSection parses the 8-byte indicator section.
func ParseIndicatorSection(data []byte) (*IndicatorSection, error) {
	if len(data) != 8 {
		return nil, fmt.Errorf("grib1 indicator section must be 8 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	identifier, _ := r.Bytes(4)
	totalLength, _ := r.Uint24()
	edition, err := r.Uint8()
	if err != nil {
		return nil, err
	}

	return &IndicatorSection{
		Identifier:    identifier,
		TotalLength:   totalLength,
		EditionNumber: edition,
	}, nil
}

// EndSection is the end section (5) of an edition 1 GRIB message: the
// fixed 4-byte "7777" trailer.
type EndSection struct {
	EndOfMessage []byte
}

// ParseEndSection parses the 4-byte end section.
func ParseEndSection(data []byte) (*EndSection, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("grib1 end section must be 4 bytes, got %d", len(data))
	}
	return &EndSection{EndOfMessage: append([]byte(nil), data...)}, nil
}
