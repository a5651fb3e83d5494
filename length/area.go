package length

import "github.com/ARM-software/golang-units/units/measure"

// Area is a measurement of physical area, derived from a length unit squared.
type Area struct {
	value float64
	unit  Unit
}

// AreaOf returns an area of v expressed in the given unit squared.
func AreaOf(v float64, u Unit) (Area, error) {
	if !u.d.IsDefined() {
		return Area{}, undefinedUnit()
	}
	return Area{value: v, unit: u}, nil
}

// Value returns the number of square units the area measures.
func (a Area) Value() float64 {
	return a.value
}

// Unit returns the unit the area is expressed in.
func (a Area) Unit() Unit {
	return a.unit
}

// To converts the area to the given unit squared.
func (a Area) To(u Unit) Area {
	if a.unit == u {
		return a
	}
	factor := a.unit.FactorTo(u)
	return Area{value: a.value * factor * factor, unit: u}
}

// Add returns the sum of two areas expressed in the same unit.
func (a Area) Add(other Area) (Area, error) {
	if a.unit != other.unit {
		return Area{}, incompatibleUnits(a.unit, other.unit)
	}
	return Area{value: a.value + other.value, unit: a.unit}, nil
}

// Sub returns the difference of two areas expressed in the same unit.
func (a Area) Sub(other Area) (Area, error) {
	if a.unit != other.unit {
		return Area{}, incompatibleUnits(a.unit, other.unit)
	}
	return Area{value: a.value - other.value, unit: a.unit}, nil
}

// Neg returns the area with its value negated.
func (a Area) Neg() Area {
	return Area{value: -a.value, unit: a.unit}
}

// Mul scales the area by a scalar.
func (a Area) Mul(scalar float64) Area {
	return Area{value: a.value * scalar, unit: a.unit}
}

// Div divides the area by a scalar.
func (a Area) Div(scalar float64) Area {
	return Area{value: a.value / scalar, unit: a.unit}
}

// Times returns the volume swept by the area and a length expressed in the
// same unit.
func (a Area) Times(l Length) (Volume, error) {
	if a.unit != l.unit {
		return Volume{}, incompatibleUnits(a.unit, l.unit)
	}
	return Volume{value: a.value * l.value, unit: a.unit}, nil
}

// Over returns the length covering the area at the given width, both
// expressed in the same unit.
func (a Area) Over(l Length) (Length, error) {
	if a.unit != l.unit {
		return Length{}, incompatibleUnits(a.unit, l.unit)
	}
	return Length{value: a.value / l.value, unit: a.unit}, nil
}

// String renders the area as "<value> <symbol>²", e.g. "18.5 in²".
func (a Area) String() string {
	return measure.Format(a.value, a.unit.Symbol()+"²")
}
