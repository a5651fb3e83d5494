// Package mass defines quantities of physical mass expressed in a fixed
// catalogue of units.
//
// Each unit is defined relative to the gram with a conversion factor.
package mass

import (
	"github.com/ARM-software/golang-units/units/commonerrors"
	"github.com/ARM-software/golang-units/units/measure"
	"github.com/ARM-software/golang-units/units/multiplication"
)

// Unit is a unit of mass from the package catalogue. The zero value does not
// describe any unit and cannot be used to create quantities.
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

// FactorTo returns the multiplier converting a value in u into `to`.
func (u Unit) FactorTo(to Unit) float64 {
	return measure.FactorRatio(u.d, to.d)
}

var (
	// Tonne (metric ton)
	Tonne = mustUnit("t", multiplication.Mega)
	// Kilogram
	Kilogram = mustUnit("kg", multiplication.Kilo)
	// Gram (base unit)
	Gram = mustUnit("g", 1)
	// Decigram
	Decigram = mustUnit("dg", multiplication.Deci)
	// Centigram
	Centigram = mustUnit("cg", multiplication.Centi)
	// Milligram
	Milligram = mustUnit("mg", multiplication.Milli)
	// Microgram
	Microgram = mustUnit("μg", multiplication.Micro)
	// Nanogram
	Nanogram = mustUnit("ng", multiplication.Nano)
	// Pound (imperial)
	Pound = mustUnit("lb", 453.59237)
	// Slug (imperial)
	Slug = mustUnit("sl", 14593.903)
	// Dalton (unified atomic mass)
	Dalton = mustUnit("Da", 1.66053906660e-24)
)

// Units returns the catalogue of mass units.
func Units() []Unit {
	return []Unit{Tonne, Kilogram, Gram, Decigram, Centigram, Milligram, Microgram, Nanogram, Pound, Slug, Dalton}
}

func mustUnit(symbol string, factor float64) Unit {
	d, err := measure.New(measure.Mass, symbol, factor)
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
