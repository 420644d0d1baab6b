package grib1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSection1(t *testing.T, indicatorOfTypeOfLevel uint8, levelBytes [2]byte, flags uint8, decimalScale int16) []byte {
	t.Helper()
	data := make([]byte, 28)
	data[0], data[1], data[2] = 0x00, 0x00, 0x1C // length = 28
	data[3] = 3                                  // Table2Version
	data[4] = 7                                  // Centre
	data[5] = 81                                 // GeneratingProcessIdentifier
	data[6] = 255                                // GridDefinition
	data[7] = flags                              // Section1Flags
	data[8] = 11                                 // IndicatorOfParameter
	data[9] = indicatorOfTypeOfLevel
	data[10], data[11] = levelBytes[0], levelBytes[1]
	data[12] = 26 // YearOfCentury
	data[13] = 7  // Month
	data[14] = 31 // Day
	data[15] = 12 // Hour
	data[16] = 0  // Minute
	data[17] = 1  // UnitOfTimeRange
	data[18] = 0  // P1
	data[19] = 0  // P2
	data[20] = 0  // TimeRangeIndicator
	data[21], data[22] = 0, 0
	data[23] = 0  // NumberMissing...
	data[24] = 21 // CenturyOfReferenceTimeOfData
	data[25] = 0  // SubCentre
	data[26] = byte(decimalScale >> 8)
	data[27] = byte(decimalScale)
	return data
}

func TestParseProductDefinitionSectionNonSplitLevel(t *testing.T) {
	data := buildSection1(t, 100, [2]byte{0x03, 0x52}, 0x00, 2)
	pds, err := ParseProductDefinitionSection(data)
	require.NoError(t, err)
	assert.False(t, pds.LevelValue.Split, "level type 100 must not be split")
	assert.EqualValues(t, 0x0352, pds.LevelValue.Value)
	assert.Equal(t, "850", pds.LevelValue.String())
	assert.False(t, pds.HasGridDescription(), "flags 0x00 imply no grid description")
	assert.False(t, pds.HasBitmap(), "flags 0x00 imply no bitmap")
	assert.False(t, pds.HasLocalDefinition, "length 28 must not carry a local definition")
	assert.Equal(t, "Isobaric", pds.LevelTypeName())
	assert.Equal(t, "Pa", pds.LevelTypeUnit())
}

func TestLevelTypeNameAndUnitUnknownCode(t *testing.T) {
	data := buildSection1(t, 99, [2]byte{0, 0}, 0x00, 0)
	pds, err := ParseProductDefinitionSection(data)
	require.NoError(t, err)
	assert.Equal(t, "Unknown level type (99)", pds.LevelTypeName())
	assert.Equal(t, "", pds.LevelTypeUnit())
}

func TestParseProductDefinitionSectionSplitLevel(t *testing.T) {
	data := buildSection1(t, 112, [2]byte{2, 10}, 0xC0, 0)
	pds, err := ParseProductDefinitionSection(data)
	require.NoError(t, err)
	assert.True(t, pds.LevelValue.Split, "level type 112 must be split")
	assert.EqualValues(t, 2, pds.LevelValue.Lower)
	assert.EqualValues(t, 10, pds.LevelValue.Upper)
	assert.Equal(t, "2-10", pds.LevelValue.String())
	assert.True(t, pds.HasGridDescription(), "flags 0xC0 imply grid description present")
	assert.True(t, pds.HasBitmap(), "flags 0xC0 imply bitmap present")
}

func TestParseProductDefinitionSectionTooShort(t *testing.T) {
	_, err := ParseProductDefinitionSection(make([]byte, 27))
	require.Error(t, err)
}

func TestParseProductDefinitionSectionLengthMismatch(t *testing.T) {
	data := buildSection1(t, 100, [2]byte{0, 1}, 0, 0)
	data[2] = 0x1D // claim length 29 while buffer is 28 bytes
	_, err := ParseProductDefinitionSection(data)
	require.Error(t, err)
}

func TestScaleValues(t *testing.T) {
	pds := &ProductDefinitionSection{DecimalScaleFactor: 2}
	got := pds.ScaleValues([]float64{100, 200})
	assert.Equal(t, []float64{1, 2}, got)
}

func TestScaleValuesMatchV1LogTransform(t *testing.T) {
	pds := &ProductDefinitionSection{DecimalScaleFactor: 0, IsMatchV1: true, LogTransform: 1}
	got := pds.ScaleValues([]float64{0})
	assert.InDelta(t, 1.0, got[0], 1e-9, "exp(0) == 1")
}
