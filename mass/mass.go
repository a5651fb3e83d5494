package mass

import "github.com/ARM-software/golang-units/units/measure"

// Mass is a measurement of physical mass: a value paired with the unit it is
// expressed in.
type Mass struct {
	value float64
	unit  Unit
}

// Of returns a mass of v expressed in the given unit. The value is stored as
// provided, it is not rescaled to any base unit.
func Of(v float64, u Unit) (Mass, error) {
	if !u.d.IsDefined() {
		return Mass{}, undefinedUnit()
	}
	return Mass{value: v, unit: u}, nil
}

// Tonnes returns a mass expressed in tonnes.
func Tonnes(v float64) Mass { return Mass{value: v, unit: Tonne} }

// Kilograms returns a mass expressed in kilograms.
func Kilograms(v float64) Mass { return Mass{value: v, unit: Kilogram} }

// Grams returns a mass expressed in grams.
func Grams(v float64) Mass { return Mass{value: v, unit: Gram} }

// Decigrams returns a mass expressed in decigrams.
func Decigrams(v float64) Mass { return Mass{value: v, unit: Decigram} }

// Centigrams returns a mass expressed in centigrams.
func Centigrams(v float64) Mass { return Mass{value: v, unit: Centigram} }

// Milligrams returns a mass expressed in milligrams.
func Milligrams(v float64) Mass { return Mass{value: v, unit: Milligram} }

// Micrograms returns a mass expressed in micrograms.
func Micrograms(v float64) Mass { return Mass{value: v, unit: Microgram} }

// Nanograms returns a mass expressed in nanograms.
func Nanograms(v float64) Mass { return Mass{value: v, unit: Nanogram} }

// Pounds returns a mass expressed in pounds.
func Pounds(v float64) Mass { return Mass{value: v, unit: Pound} }

// Slugs returns a mass expressed in slugs.
func Slugs(v float64) Mass { return Mass{value: v, unit: Slug} }

// Daltons returns a mass expressed in daltons.
func Daltons(v float64) Mass { return Mass{value: v, unit: Dalton} }

// Value returns the number of units the mass measures.
func (m Mass) Value() float64 {
	return m.value
}

// Unit returns the unit the mass is expressed in.
func (m Mass) Unit() Unit {
	return m.unit
}

// To converts the mass to the given unit. Converting to the unit the mass is
// already expressed in returns it unchanged.
func (m Mass) To(u Unit) Mass {
	if m.unit == u {
		return m
	}
	return Mass{value: m.value * m.unit.FactorTo(u), unit: u}
}

// Add returns the sum of two masses expressed in the same unit. Masses in
// different units are never summed silently: convert one of them first.
func (m Mass) Add(other Mass) (Mass, error) {
	if m.unit != other.unit {
		return Mass{}, incompatibleUnits(m.unit, other.unit)
	}
	return Mass{value: m.value + other.value, unit: m.unit}, nil
}

// Sub returns the difference of two masses expressed in the same unit.
func (m Mass) Sub(other Mass) (Mass, error) {
	if m.unit != other.unit {
		return Mass{}, incompatibleUnits(m.unit, other.unit)
	}
	return Mass{value: m.value - other.value, unit: m.unit}, nil
}

// Neg returns the mass with its value negated.
func (m Mass) Neg() Mass {
	return Mass{value: -m.value, unit: m.unit}
}

// Mul scales the mass by a scalar.
func (m Mass) Mul(scalar float64) Mass {
	return Mass{value: m.value * scalar, unit: m.unit}
}

// Div divides the mass by a scalar.
func (m Mass) Div(scalar float64) Mass {
	return Mass{value: m.value / scalar, unit: m.unit}
}

// Ratio returns the dimensionless ratio of two masses. The units may differ:
// the receiver is re-expressed in the other mass's unit before dividing.
func (m Mass) Ratio(other Mass) float64 {
	return m.value * m.unit.FactorTo(other.unit) / other.value
}

// String renders the mass as "<value> <symbol>", e.g. "2.5 kg".
func (m Mass) String() string {
	return measure.Format(m.value, m.unit.Symbol())
}
