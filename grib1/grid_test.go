package grib1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatLonGridCoordinates(t *testing.T) {
	g := &LatLonGridSection{
		Valid: true, Ni: 3, Nj: 2,
		LongitudeOfFirstGridPoint: 0,
		LongitudeOfLastGridPoint:  20000,
		LatitudeOfFirstGridPoint:  10000,
		LatitudeOfLastGridPoint:   0,
		ScanningMode:              0,
	}
	coords, err := g.Coordinates()
	require.NoError(t, err)
	require.Len(t, coords.Lats, 2)
	require.Len(t, coords.Lons, 2)

	wantLons := []float64{0, 10, 20}
	for _, row := range coords.Lons {
		assert.Equal(t, wantLons, row)
	}
	assert.Equal(t, 10.0, coords.Lats[0][0])
	assert.Equal(t, 0.0, coords.Lats[1][0])
}

func TestLatLonGridCoordinatesInvalid(t *testing.T) {
	g := &LatLonGridSection{Valid: false}
	_, err := g.Coordinates()
	require.Error(t, err)
}

func TestLatLonGridCoordinatesBadDimensions(t *testing.T) {
	g := &LatLonGridSection{Valid: true, Ni: 0, Nj: 2}
	_, err := g.Coordinates()
	require.Error(t, err)
}

func TestReshapeIConsecutiveDefault(t *testing.T) {
	g := &LatLonGridSection{Ni: 3, Nj: 2, ScanningMode: 0x00}
	values := []float64{1, 2, 3, 4, 5, 6}
	grid, err := g.Reshape(values)
	require.NoError(t, err)
	// i-consecutive, no flips: shape is (Nj, Ni).
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, grid)
}

func TestReshapeJConsecutive(t *testing.T) {
	g := &LatLonGridSection{Ni: 3, Nj: 2, ScanningMode: 0x20}
	values := []float64{1, 2, 3, 4, 5, 6}
	grid, err := g.Reshape(values)
	require.NoError(t, err)
	// j-consecutive: shape is (Ni, Nj), the asymmetric-shape behavior
	// carried over unchanged from the reference implementation.
	require.Len(t, grid, 3)
	require.Len(t, grid[0], 2)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, grid)
}

func TestReshapeNegativeIDirection(t *testing.T) {
	g := &LatLonGridSection{Ni: 3, Nj: 1, ScanningMode: 0x80}
	values := []float64{1, 2, 3}
	grid, err := g.Reshape(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, grid[0])
}

func TestReshapeValueCountMismatch(t *testing.T) {
	g := &LatLonGridSection{Ni: 3, Nj: 2}
	_, err := g.Reshape([]float64{1, 2, 3})
	require.Error(t, err)
}
