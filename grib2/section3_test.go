package grib2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridDefinitionSection(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x11, // length = 17
		3,                      // numberOfSection
		0,                      // source
		0x00, 0x00, 0x00, 0x0C, // numDataPoints = 12
		0, // numOctetsOptionalList
		0, // interpretOptionalList
		0x00, 0x00, // templateNumber = 0 (lat/lon)
		0xAA, 0xBB, 0xCC, // opaque template data
	}
	s, err := ParseGridDefinitionSection(data)
	require.NoError(t, err)
	assert.EqualValues(t, 12, s.NumDataPoints)
	assert.EqualValues(t, 0, s.TemplateNumber)
	assert.Len(t, s.TemplateData, 3)
}

func TestParseGridDefinitionSectionTooShort(t *testing.T) {
	_, err := ParseGridDefinitionSection(make([]byte, 13))
	require.Error(t, err)
}

func TestParseGridDefinitionSectionLengthMismatch(t *testing.T) {
	data := make([]byte, 14)
	data[3] = 0x0F // claim length 15
	_, err := ParseGridDefinitionSection(data)
	require.Error(t, err)
}
