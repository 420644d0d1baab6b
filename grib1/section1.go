package grib1

import (
	"fmt"
	"math"

	"github.com/mmp/wxgrib/internal/bin"
	"github.com/mmp/wxgrib/tables"
)

// splitLevelTypes are the indicatorOfTypeOfLevel codes whose level is
// encoded as a pair of single-byte bounds rather than one uint16, per
// pupygrib's edition1.pds.LevelField.split_level_types.
var splitLevelTypes = map[uint8]bool{
	101: true, 104: true, 106: true, 108: true, 110: true,
	112: true, 114: true, 116: true, 120: true, 121: true,
	128: true, 141: true,
}

// Level is the decoded value of a product definition section's level
// field: either a single 16-bit value, or a (lower, upper) pair of
// 8-bit bounds for the level types pupygrib.edition1.pds.LevelField
// treats as split.
type Level struct {
	Split bool
	Value uint16 // valid when !Split
	Lower uint8  // valid when Split
	Upper uint8  // valid when Split
}

func (l Level) String() string {
	if l.Split {
		return fmt.Sprintf("%d-%d", l.Lower, l.Upper)
	}
	return fmt.Sprintf("%d", l.Value)
}

// ProductDefinitionSection is the product definition section (1) of an
// edition 1 GRIB message, grounded on pupygrib's
// edition1.pds.ProductDefinitionSection.
type ProductDefinitionSection struct {
	Length                                uint32
	Table2Version                         uint8
	Centre                                uint8
	GeneratingProcessIdentifier           uint8
	GridDefinition                        uint8
	Section1Flags                         uint8
	IndicatorOfParameter                  uint8
	IndicatorOfTypeOfLevel                uint8
	LevelValue                            Level
	YearOfCentury                         uint8
	Month                                 uint8
	Day                                   uint8
	Hour                                  uint8
	Minute                                uint8
	UnitOfTimeRange                       uint8
	P1                                    uint8
	P2                                    uint8
	TimeRangeIndicator                    uint8
	NumberIncludedInAverage               uint16
	NumberMissingFromAveragesOrAccumulations uint8
	CenturyOfReferenceTimeOfData          uint8
	SubCentre                             uint8
	DecimalScaleFactor                    int32

	// Local section fields (only valid if Length > 40)
	HasLocalDefinition  bool
	LocalDefinitionNumber uint8

	// MATCH v1.0 local product fields (only valid if IsMatchV1)
	IsMatchV1          bool
	GeneratingProcess  uint8
	Sort               uint8
	TimeRepres         uint8
	LandType           uint8
	SuplScale          int32
	MolarMass          uint16
	LogTransform       uint8
	Threshold          int32
	TotalSizeClasses   uint8
	SizeClassNumber    uint8
	IntegerScaleFactor int32
	LowerRange         uint16
	UpperRange         uint16
	MeanSize           uint16
	STDV               uint16
}

// LevelTypeName returns the name of the fixed surface type
// IndicatorOfTypeOfLevel denotes, per WMO code table 4.5 (edition 1
// reuses edition 2's fixed-surface table for this field). GRIB1 has no
// per-edition table of its own for this code, so this shares edition
// 2's table from the tables package rather than duplicating it.
func (s *ProductDefinitionSection) LevelTypeName() string {
	return tables.GetLevelName(int(s.IndicatorOfTypeOfLevel))
}

// LevelTypeUnit returns the unit associated with IndicatorOfTypeOfLevel,
// or "" if the level type carries no unit (e.g. "Surface") or is
// unrecognized.
func (s *ProductDefinitionSection) LevelTypeUnit() string {
	return tables.GetLevelUnit(int(s.IndicatorOfTypeOfLevel))
}

// HasGridDescription reports whether section1Flags indicates a grid
// description section (2) follows.
func (s *ProductDefinitionSection) HasGridDescription() bool {
	return s.Section1Flags&0x80 != 0
}

// HasBitmap reports whether section1Flags indicates a bit-map section
// (3) follows.
func (s *ProductDefinitionSection) HasBitmap() bool {
	return s.Section1Flags&0x40 != 0
}

// ScaleValues applies the product definition's decimal scaling (and,
// for MATCH v1.0 products, the log transform) to a slice of raw values
// already reconstructed from the data section, per pupygrib's
// _scale_values methods.
func (s *ProductDefinitionSection) ScaleValues(values []float64) []float64 {
	scale := math.Pow(10, -float64(s.DecimalScaleFactor))
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = scale * v
	}
	if s.IsMatchV1 && s.LogTransform != 0 {
		for i, v := range out {
			out[i] = math.Exp(v)
		}
	}
	return out
}

// ParseProductDefinitionSection parses section 1 of an edition 1 GRIB
// message, dispatching to the MATCH v1.0 local subtype when the
// (centre, subCentre, localDefinitionNumber) triple matches, exactly
// as pupygrib.edition1.pds.get_section does.
func ParseProductDefinitionSection(data []byte) (*ProductDefinitionSection, error) {
	if len(data) < 28 {
		return nil, fmt.Errorf("grib1 product definition section must be at least 28 bytes, got %d", len(data))
	}
	r := bin.NewReader(data)

	length, _ := r.Uint24()
	if int(length) != len(data) {
		return nil, fmt.Errorf("section 1 length mismatch: header says %d bytes, have %d", length, len(data))
	}

	s := &ProductDefinitionSection{Length: length}

	s.Table2Version, _ = r.Uint8()
	s.Centre, _ = r.Uint8()
	s.GeneratingProcessIdentifier, _ = r.Uint8()
	s.GridDefinition, _ = r.Uint8()
	s.Section1Flags, _ = r.Uint8()
	s.IndicatorOfParameter, _ = r.Uint8()
	s.IndicatorOfTypeOfLevel, _ = r.Uint8()

	if splitLevelTypes[s.IndicatorOfTypeOfLevel] {
		lower, _ := r.Uint8()
		upper, _ := r.Uint8()
		s.LevelValue = Level{Split: true, Lower: lower, Upper: upper}
	} else {
		v, _ := r.Uint16()
		s.LevelValue = Level{Value: v}
	}

	s.YearOfCentury, _ = r.Uint8()
	s.Month, _ = r.Uint8()
	s.Day, _ = r.Uint8()
	s.Hour, _ = r.Uint8()
	s.Minute, _ = r.Uint8()
	s.UnitOfTimeRange, _ = r.Uint8()
	s.P1, _ = r.Uint8()
	s.P2, _ = r.Uint8()
	s.TimeRangeIndicator, _ = r.Uint8()
	s.NumberIncludedInAverage, _ = r.Uint16()
	s.NumberMissingFromAveragesOrAccumulations, _ = r.Uint8()
	s.CenturyOfReferenceTimeOfData, _ = r.Uint8()
	s.SubCentre, _ = r.Uint8()
	decimalScale, err := r.Int16()
	if err != nil {
		return nil, fmt.Errorf("section 1: decimal scale factor: %w", err)
	}
	s.DecimalScaleFactor = decimalScale

	if length <= 40 {
		return s, nil
	}

	s.HasLocalDefinition = true
	if int(length) < 41 {
		return s, nil
	}
	if err := r.SetOffset(40); err != nil {
		return s, nil
	}
	localDefNum, err := r.Uint8()
	if err != nil {
		return s, nil
	}
	s.LocalDefinitionNumber = localDefNum

	if s.Centre == 82 && s.SubCentre == 0 && s.LocalDefinitionNumber == 2 && int(length) >= 70 {
		if err := parseMatchV1(s, data); err != nil {
			return nil, fmt.Errorf("section 1: MATCH v1.0 fields: %w", err)
		}
	}

	return s, nil
}

// parseMatchV1 decodes the MATCH v1.0 local product definition fields,
// grounded on pupygrib's edition1.pds.MatchV1ProductSection.
func parseMatchV1(s *ProductDefinitionSection, data []byte) error {
	s.IsMatchV1 = true
	r := bin.NewReader(data)

	if err := r.SetOffset(41); err != nil {
		return err
	}
	s.GeneratingProcess, _ = r.Uint8()
	s.Sort, _ = r.Uint8()
	s.TimeRepres, _ = r.Uint8()
	s.LandType, _ = r.Uint8()
	suplScale, err := r.Int16()
	if err != nil {
		return err
	}
	s.SuplScale = suplScale
	s.MolarMass, _ = r.Uint16()

	if err := r.SetOffset(49); err != nil {
		return err
	}
	s.LogTransform, _ = r.Uint8()
	threshold, err := r.Int16()
	if err != nil {
		return err
	}
	s.Threshold = threshold

	if err := r.SetOffset(59); err != nil {
		return err
	}
	s.TotalSizeClasses, _ = r.Uint8()
	s.SizeClassNumber, _ = r.Uint8()
	integerScale, err := r.Int8()
	if err != nil {
		return err
	}
	s.IntegerScaleFactor = integerScale
	s.LowerRange, _ = r.Uint16()
	s.UpperRange, _ = r.Uint16()
	s.MeanSize, _ = r.Uint16()
	s.STDV, _ = r.Uint16()

	return nil
}
