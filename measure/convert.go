package measure

import (
	"strconv"

	"github.com/ARM-software/golang-units/units/commonerrors"
)

// FactorRatio returns the multiplier re-expressing a value given in `from`
// into `to`. Identity conversions return exactly 1 so converting a quantity to
// its own unit never drifts. Both descriptors must belong to the same
// dimension; use [Convert] when that is not statically guaranteed.
func FactorRatio(from, to Descriptor) float64 {
	if from == to {
		return 1.0
	}
	return from.Factor / to.Factor
}

// RoundFactor rounds a conversion factor to 14 significant digits, within the
// ~15 significant digits of a float64. This cancels the drift of factor
// ratios such as ft/in (12.000000000000002) while keeping enough precision
// for ratios of any magnitude to round-trip.
func RoundFactor(factor float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(factor, 'e', 13, 64), 64)
	if err != nil {
		return factor
	}
	return rounded
}

// Convert re-expresses v, a value given in `from`, as a value in `to`. It
// fails with ErrIncompatibleDimension when the descriptors belong to
// different dimensions. This is the dynamic counterpart of the statically
// checked To methods of the dimension packages, for callers holding raw
// descriptors.
func Convert(v float64, from, to Descriptor) (float64, error) {
	if from.Dimension != to.Dimension {
		return 0, commonerrors.Newf(commonerrors.ErrIncompatibleDimension, "cannot convert %v to %v", from.Dimension, to.Dimension)
	}
	return v * FactorRatio(from, to), nil
}
