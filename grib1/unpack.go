package grib1

import (
	"math"

	"github.com/mmp/wxgrib/internal/bin"
)

// UnpackRawSamples unpacks the section's raw (unscaled) integer
// samples, per spec.md §4.4.3: a bitsPerValue of 0 means a constant
// field and yields no samples; widths 8/12/16/24/32/64 are bit-packed
// consecutively across the remaining section bytes (after stripping the
// trailing unused bits declared in dataFlag's low nibble), grounded on
// pupygrib's edition1.bds.SimpleGridDataField.get_value.
func (s *BinaryDataSection) UnpackRawSamples() ([]uint64, error) {
	if s.BitsPerValue == 0 {
		return nil, nil
	}

	unusedBytes := int(s.DataFlag&0x0F) / 8
	data := s.rawData
	if unusedBytes > 0 && unusedBytes <= len(data) {
		data = data[:len(data)-unusedBytes]
	}

	return bin.UnpackSamples(data, int(s.BitsPerValue))
}

// ReconstructValues turns the section's raw samples into physical
// values via value = referenceValue + sample * 2^binaryScaleFactor,
// grounded on pupygrib's edition1.bds.SimpleGridDataSection._unpack_values.
// A constant field (bitsPerValue == 0) yields a slice of length n all
// equal to referenceValue.
func (s *BinaryDataSection) ReconstructValues(n int) ([]float64, error) {
	if s.BitsPerValue == 0 {
		values := make([]float64, n)
		for i := range values {
			values[i] = s.ReferenceValue
		}
		return values, nil
	}

	samples, err := s.UnpackRawSamples()
	if err != nil {
		return nil, err
	}

	scale := pow2(s.BinaryScaleFactor)
	values := make([]float64, len(samples))
	for i, raw := range samples {
		values[i] = s.ReferenceValue + float64(raw)*scale
	}
	return values, nil
}

// pow2 computes 2^e for an arbitrary (possibly negative) signed-magnitude
// exponent, avoiding math.Pow's float rounding for the common small
// positive-exponent case GRIB1 binary scale factors mostly use.
func pow2(e int32) float64 {
	if e >= 64 {
		return math.Ldexp(1, int(e))
	}
	if e >= 0 {
		return float64(uint64(1) << uint(e))
	}
	result := 1.0
	for i := int32(0); i < -e; i++ {
		result /= 2
	}
	return result
}
