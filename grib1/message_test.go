package grib1

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndicator(totalLength uint32) []byte {
	return []byte{
		'G', 'R', 'I', 'B',
		byte(totalLength >> 16), byte(totalLength >> 8), byte(totalLength),
		0x01,
	}
}

// buildSimpleMessage assembles a minimal message with no grid description
// and no bit-map: indicator + pds(28, flags=0x00) + bds(14, 3 samples) + end.
func buildSimpleMessage(t *testing.T) []byte {
	t.Helper()
	pds := buildSection1(t, 100, [2]byte{0x03, 0x52}, 0x00, 0)
	bds := []byte{
		0x00, 0x00, 0x0E,
		0x00,
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x08,
		0x01, 0x02, 0x03,
	}
	end := []byte("7777")
	total := 8 + len(pds) + len(bds) + len(end)
	buf := buildIndicator(uint32(total))
	buf = append(buf, pds...)
	buf = append(buf, bds...)
	buf = append(buf, end...)
	return buf
}

func TestMessageBasicChainNoGridNoBitmap(t *testing.T) {
	buf := buildSimpleMessage(t)
	m := NewMessage(buf, "test.grib")

	assert.Equal(t, "test.grib", m.Name())
	assert.Equal(t, 1, m.Edition())

	ind, err := m.Indicator()
	require.NoError(t, err)
	assert.EqualValues(t, 1, ind.EditionNumber)

	gds, err := m.GridDescription()
	require.NoError(t, err)
	assert.Nil(t, gds, "GridDescription() should be nil when section1Flags has no grid description bit")

	bm, err := m.BitMap()
	require.NoError(t, err)
	assert.Nil(t, bm, "BitMap() should be nil when section1Flags has no bit-map bit")

	end, err := m.End()
	require.NoError(t, err)
	assert.Equal(t, "7777", string(end.EndOfMessage))

	_, err = m.GetCoordinates()
	require.Error(t, err, "expected error from GetCoordinates() when no grid description section is present")
}

func TestMessageGetTime(t *testing.T) {
	buf := buildSimpleMessage(t)
	m := NewMessage(buf, "")
	got, err := m.GetTime()
	require.NoError(t, err)
	want := time.Date(2026, time.July, 31, 12, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "GetTime() = %v, want %v", got, want)
}

func TestMessageSectionDispatch(t *testing.T) {
	buf := buildSimpleMessage(t)
	m := NewMessage(buf, "")

	for i := 0; i <= 5; i++ {
		_, err := m.Section(i)
		assert.NoError(t, err, "Section(%d)", i)
	}
	_, err := m.Section(6)
	assert.Error(t, err, "expected error for out-of-range section index 6")
	_, err = m.Section(-1)
	assert.Error(t, err, "expected error for negative section index")
}

// buildFullMessage assembles a message with grid description and bit-map
// sections present, for exercising GetValues()'s bitmap-masking and
// scanning-mode reshape path.
func buildFullMessage(t *testing.T) []byte {
	t.Helper()
	pds := buildSection1(t, 100, [2]byte{0x03, 0x52}, 0xC0, 0)
	gds := []byte{
		0x00, 0x00, 0x1C,
		0x00, 0x00, 0x00,
		0x00, 0x04, // Ni = 4
		0x00, 0x03, // Nj = 3
		0x00, 0x27, 0x10,
		0x00, 0x4E, 0x20,
		0x00,
		0x00, 0x1B, 0x58,
		0x00, 0x59, 0xD8,
		0x03, 0xE8,
		0x03, 0xE8,
		0x00, // ScanningMode = 0
	}
	bitmap := []byte{
		0x00, 0x00, 0x08,
		0x04,
		0x00, 0x00,
		0xB0, 0xC0, // 5 of 12 bits set: positions 0,2,3,8,9
	}
	bds := []byte{
		0x00, 0x00, 0x10,
		0x00,
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x08,
		10, 20, 30, 40, 50,
	}
	end := []byte("7777")
	total := 8 + len(pds) + len(gds) + len(bitmap) + len(bds) + len(end)
	buf := buildIndicator(uint32(total))
	buf = append(buf, pds...)
	buf = append(buf, gds...)
	buf = append(buf, bitmap...)
	buf = append(buf, bds...)
	buf = append(buf, end...)
	return buf
}

func TestMessageGetValuesWithBitmap(t *testing.T) {
	buf := buildFullMessage(t)
	m := NewMessage(buf, "")

	grid, err := m.GetValues()
	require.NoError(t, err)
	require.Len(t, grid, 3)
	require.Len(t, grid[0], 4)

	want := [][]float64{
		{10, math.NaN(), 20, 30},
		{math.NaN(), math.NaN(), math.NaN(), math.NaN()},
		{40, 50, math.NaN(), math.NaN()},
	}
	for r := range want {
		for c := range want[r] {
			wv, gv := want[r][c], grid[r][c]
			if math.IsNaN(wv) {
				assert.True(t, math.IsNaN(gv), "grid[%d][%d] = %v, want NaN", r, c, gv)
				continue
			}
			assert.Equal(t, wv, gv, "grid[%d][%d]", r, c)
		}
	}
}

func TestMessageGetCoordinatesWithGrid(t *testing.T) {
	buf := buildFullMessage(t)
	m := NewMessage(buf, "")
	coords, err := m.GetCoordinates()
	require.NoError(t, err)
	assert.Len(t, coords.Lats, 3)
	assert.Len(t, coords.Lons, 3)
}

func TestMessageIndicatorTooShort(t *testing.T) {
	m := NewMessage([]byte{'G', 'R'}, "")
	_, err := m.Indicator()
	require.Error(t, err)
}
