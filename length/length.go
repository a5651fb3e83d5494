package length

import "github.com/ARM-software/golang-units/units/measure"

// Length is a measurement of physical length, distance or range: a value
// paired with the unit it is expressed in.
type Length struct {
	value float64
	unit  Unit
}

// Of returns a length of v expressed in the given unit. The value is stored
// as provided, it is not rescaled to any base unit.
func Of(v float64, u Unit) (Length, error) {
	if !u.d.IsDefined() {
		return Length{}, undefinedUnit()
	}
	return Length{value: v, unit: u}, nil
}

// Kilometres returns a length expressed in kilometres.
func Kilometres(v float64) Length { return Length{value: v, unit: Kilometre} }

// Metres returns a length expressed in metres.
func Metres(v float64) Length { return Length{value: v, unit: Metre} }

// Decimetres returns a length expressed in decimetres.
func Decimetres(v float64) Length { return Length{value: v, unit: Decimetre} }

// Centimetres returns a length expressed in centimetres.
func Centimetres(v float64) Length { return Length{value: v, unit: Centimetre} }

// Millimetres returns a length expressed in millimetres.
func Millimetres(v float64) Length { return Length{value: v, unit: Millimetre} }

// Micrometres returns a length expressed in micrometres.
func Micrometres(v float64) Length { return Length{value: v, unit: Micrometre} }

// Nanometres returns a length expressed in nanometres.
func Nanometres(v float64) Length { return Length{value: v, unit: Nanometre} }

// Miles returns a length expressed in miles.
func Miles(v float64) Length { return Length{value: v, unit: Mile} }

// Yards returns a length expressed in yards.
func Yards(v float64) Length { return Length{value: v, unit: Yard} }

// Feet returns a length expressed in feet.
func Feet(v float64) Length { return Length{value: v, unit: Foot} }

// Inches returns a length expressed in inches.
func Inches(v float64) Length { return Length{value: v, unit: Inch} }

// Value returns the number of units the length measures.
func (l Length) Value() float64 {
	return l.value
}

// Unit returns the unit the length is expressed in.
func (l Length) Unit() Unit {
	return l.unit
}

// To converts the length to the given unit. Converting to the unit the length
// is already expressed in returns it unchanged.
func (l Length) To(u Unit) Length {
	if l.unit == u {
		return l
	}
	return Length{value: l.value * l.unit.FactorTo(u), unit: u}
}

// Add returns the sum of two lengths expressed in the same unit. Lengths in
// different units are never summed silently: convert one of them first.
func (l Length) Add(other Length) (Length, error) {
	if l.unit != other.unit {
		return Length{}, incompatibleUnits(l.unit, other.unit)
	}
	return Length{value: l.value + other.value, unit: l.unit}, nil
}

// Sub returns the difference of two lengths expressed in the same unit.
func (l Length) Sub(other Length) (Length, error) {
	if l.unit != other.unit {
		return Length{}, incompatibleUnits(l.unit, other.unit)
	}
	return Length{value: l.value - other.value, unit: l.unit}, nil
}

// Neg returns the length with its value negated.
func (l Length) Neg() Length {
	return Length{value: -l.value, unit: l.unit}
}

// Mul scales the length by a scalar.
func (l Length) Mul(scalar float64) Length {
	return Length{value: l.value * scalar, unit: l.unit}
}

// Div divides the length by a scalar.
func (l Length) Div(scalar float64) Length {
	return Length{value: l.value / scalar, unit: l.unit}
}

// Ratio returns the dimensionless ratio of two lengths. The units may differ:
// the receiver is re-expressed in the other length's unit before dividing.
func (l Length) Ratio(other Length) float64 {
	return l.value * l.unit.FactorTo(other.unit) / other.value
}

// Times returns the area swept by two lengths expressed in the same unit.
func (l Length) Times(other Length) (Area, error) {
	if l.unit != other.unit {
		return Area{}, incompatibleUnits(l.unit, other.unit)
	}
	return Area{value: l.value * other.value, unit: l.unit}, nil
}

// String renders the length as "<value> <symbol>", e.g. "25.5 cm".
func (l Length) String() string {
	return measure.Format(l.value, l.unit.Symbol())
}
