package grib1

import "fmt"

// Coordinates holds the reconstructed latitude/longitude mesh for a
// lat/lon grid, in degrees. Both grids are always (Nj, Ni) shaped
// (outer index j, inner index i), matching pupygrib's
// numpy.meshgrid(longitudes, latitudes) output — independent of
// scanning mode, which only swaps the linspace endpoints, never the
// mesh's own axis order.
type Coordinates struct {
	Lats [][]float64
	Lons [][]float64
}

const millidegree = 1.0 / 1000.0

// Coordinates builds the latitude/longitude mesh for the grid,
// grounded on pupygrib's LatitudeLongitudeGridSection._get_coordinates:
// evenly spaced steps between the first and last grid point, with the
// linspace endpoints swapped when the scanning mode says the
// corresponding axis runs in the opposite direction.
func (g *LatLonGridSection) Coordinates() (*Coordinates, error) {
	if !g.Valid {
		return nil, fmt.Errorf("grid description section has no lat/lon grid")
	}
	ni, nj := int(g.Ni), int(g.Nj)
	if ni <= 0 || nj <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions Ni=%d Nj=%d", ni, nj)
	}

	lon0 := float64(g.LongitudeOfFirstGridPoint) * millidegree
	lon1 := float64(g.LongitudeOfLastGridPoint) * millidegree
	if g.ScanningMode&0x80 != 0 { // points scan in -i direction
		lon0, lon1 = lon1, lon0
	}
	longitudes := linspace(lon0, lon1, ni)

	lat0 := float64(g.LatitudeOfFirstGridPoint) * millidegree
	lat1 := float64(g.LatitudeOfLastGridPoint) * millidegree
	if g.ScanningMode&0x40 != 0 { // points scan in +j direction
		lat0, lat1 = lat1, lat0
	}
	latitudes := linspace(lat0, lat1, nj)

	lons := make([][]float64, nj)
	lats := make([][]float64, nj)
	for j := 0; j < nj; j++ {
		lons[j] = append([]float64(nil), longitudes...)
		row := make([]float64, ni)
		for i := range row {
			row[i] = latitudes[j]
		}
		lats[j] = row
	}

	return &Coordinates{Lats: lats, Lons: lons}, nil
}

func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = start + step*float64(i)
	}
	return out
}

// Reshape reorders a flat, storage-order sample slice into a 2-D grid,
// undoing the scanning mode's effect on storage order. Grounded
// directly on pupygrib's LatitudeLongitudeGridSection._order_values,
// including its notable property (spec.md §9 Open Question, recorded
// in DESIGN.md): the returned shape is (Ni, Nj) for j-consecutive scans
// and (Nj, Ni) otherwise — the two scanning conventions are not
// normalized to a common axis order.
func (g *LatLonGridSection) Reshape(values []float64) ([][]float64, error) {
	ni, nj := int(g.Ni), int(g.Nj)
	if len(values) != ni*nj {
		return nil, fmt.Errorf("value count %d does not match grid size %d (Ni=%d, Nj=%d)",
			len(values), ni*nj, ni, nj)
	}

	arr := values

	if g.ScanningMode&0x20 != 0 { // consecutive points in j direction
		if g.ScanningMode&0x40 != 0 { // points scan in +j direction
			arr = reverse(arr)
		}
		grid := reshapeRowMajor(arr, ni, nj)
		if g.ScanningMode&0x80 != 0 { // points scan in -i direction
			grid = fliplr(grid)
		}
		return grid, nil
	}

	// consecutive points in i direction
	if g.ScanningMode&0x80 != 0 { // points scan in -i direction
		arr = reverse(arr)
	}
	grid := reshapeRowMajor(arr, nj, ni)
	if g.ScanningMode&0x40 != 0 { // points scan in +j direction
		grid = flipud(grid)
	}
	return grid, nil
}

func reshapeRowMajor(flat []float64, rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		grid[r] = append([]float64(nil), flat[r*cols:(r+1)*cols]...)
	}
	return grid
}

func reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

func fliplr(grid [][]float64) [][]float64 {
	out := make([][]float64, len(grid))
	for r, row := range grid {
		out[r] = reverse(row)
	}
	return out
}

func flipud(grid [][]float64) [][]float64 {
	out := make([][]float64, len(grid))
	for r, row := range grid {
		out[len(grid)-1-r] = row
	}
	return out
}
