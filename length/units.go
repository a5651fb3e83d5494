// Package length defines quantities of physical length, area and volume
// expressed in a fixed catalogue of units.
//
// Each unit is defined relative to the metre with a conversion factor.
// Quantities keep the unit they were created with: arithmetic never rescales a
// value to a base unit and combining quantities expressed in different units
// requires an explicit conversion with To.
package length

import (
	"github.com/ARM-software/golang-units/units/commonerrors"
	"github.com/ARM-software/golang-units/units/measure"
	"github.com/ARM-software/golang-units/units/multiplication"
)

// Unit is a unit of length from the package catalogue. The zero value does
// not describe any unit and cannot be used to create quantities.
type Unit struct {
	d measure.Descriptor
}

// Descriptor returns the unit descriptor record.
func (u Unit) Descriptor() measure.Descriptor {
	return u.d
}

// Symbol returns the unit display symbol.
func (u Unit) Symbol() string {
	return u.d.Symbol
}

// FactorTo returns the multiplier converting a value in u into `to`. Length
// factors are rounded to 14 significant digits so that ratios of catalogue
// factors (e.g. foot to inch) come out whole.
func (u Unit) FactorTo(to Unit) float64 {
	return measure.RoundFactor(measure.FactorRatio(u.d, to.d))
}

var (
	// Kilometre / Kilometer
	Kilometre = mustUnit("km", multiplication.Kilo)
	// Metre / Meter (base unit)
	Metre = mustUnit("m", 1)
	// Decimetre / Decimeter
	Decimetre = mustUnit("dm", multiplication.Deci)
	// Centimetre / Centimeter
	Centimetre = mustUnit("cm", multiplication.Centi)
	// Millimetre / Millimeter
	Millimetre = mustUnit("mm", multiplication.Milli)
	// Micrometre / Micrometer
	Micrometre = mustUnit("μm", multiplication.Micro)
	// Nanometre / Nanometer
	Nanometre = mustUnit("nm", multiplication.Nano)
	// Mile
	Mile = mustUnit("mi", 1609.344)
	// Yard
	Yard = mustUnit("yd", 0.9144)
	// Foot
	Foot = mustUnit("ft", 0.3048)
	// Inch
	Inch = mustUnit("in", 0.0254)
)

// Units returns the catalogue of length units.
func Units() []Unit {
	return []Unit{Kilometre, Metre, Decimetre, Centimetre, Millimetre, Micrometre, Nanometre, Mile, Yard, Foot, Inch}
}

func mustUnit(symbol string, factor float64) Unit {
	d, err := measure.New(measure.Length, symbol, factor)
	if err != nil {
		panic(err)
	}
	return Unit{d: d}
}

func undefinedUnit() error {
	return commonerrors.New(commonerrors.ErrUndefined, "unit is not defined")
}

func incompatibleUnits(a, b Unit) error {
	return commonerrors.Newf(commonerrors.ErrIncompatibleUnits, "cannot combine quantities in '%v' and '%v' without an explicit conversion", a.Symbol(), b.Symbol())
}
