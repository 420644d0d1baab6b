package grib2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBitMapSectionExplicit(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x08, // length = 8
		6,          // numberOfSection
		0,          // bitmapIndicator = 0 (explicit bitmap follows)
		0xB0, 0xC0, // packed bits for 12 grid points
	}
	s, err := ParseBitMapSection(data, 12)
	require.NoError(t, err)
	assert.True(t, s.HasBitmap())
	assert.Equal(t, 5, s.CountValidPoints())
	require.Len(t, s.Bitmap, 12)
	want := []bool{true, false, true, true, false, false, false, false, true, true, false, false}
	assert.Equal(t, want, s.Bitmap)
}

func TestParseBitMapSectionNoBitmap(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x06, 6, 255}
	s, err := ParseBitMapSection(data, 12)
	require.NoError(t, err)
	assert.False(t, s.HasBitmap(), "indicator 255 means no bitmap")
}

func TestParseBitMapSectionPreviouslyDefinedRejected(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x06, 6, 254}
	_, err := ParseBitMapSection(data, 12)
	require.Error(t, err)
}

func TestParseBitMapSectionUnsupportedIndicator(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x06, 6, 5}
	_, err := ParseBitMapSection(data, 12)
	require.Error(t, err)
}

func TestParseBitMapSectionDataTooShort(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x07, 6, 0, 0xFF}
	_, err := ParseBitMapSection(data, 100)
	require.Error(t, err)
}

func TestParseBitMapSectionTooShort(t *testing.T) {
	_, err := ParseBitMapSection(make([]byte, 5), 12)
	require.Error(t, err)
}
