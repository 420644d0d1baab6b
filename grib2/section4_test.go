package grib2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductDefinitionSection(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x0C, // length = 12
		4,          // numberOfSection
		0x00, 0x00, // coordinateValuesCount
		0x00, 0x00, // productDefinitionTemplate = 0
		0xAA, 0xBB, 0xCC, // opaque template data
	}
	s, err := ParseProductDefinitionSection(data)
	require.NoError(t, err)
	assert.EqualValues(t, 0, s.ProductDefinitionTemplate)
	assert.Len(t, s.TemplateData, 3)
}

func TestParseProductDefinitionSectionTooShort(t *testing.T) {
	_, err := ParseProductDefinitionSection(make([]byte, 8))
	require.Error(t, err)
}
