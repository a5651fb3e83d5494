package length

import "github.com/ARM-software/golang-units/units/measure"

// Volume is a measurement of physical volume, derived from a length unit
// cubed.
type Volume struct {
	value float64
	unit  Unit
}

// VolumeOf returns a volume of v expressed in the given unit cubed.
func VolumeOf(v float64, u Unit) (Volume, error) {
	if !u.d.IsDefined() {
		return Volume{}, undefinedUnit()
	}
	return Volume{value: v, unit: u}, nil
}

// Value returns the number of cubic units the volume measures.
func (v Volume) Value() float64 {
	return v.value
}

// Unit returns the unit the volume is expressed in.
func (v Volume) Unit() Unit {
	return v.unit
}

// To converts the volume to the given unit cubed.
func (v Volume) To(u Unit) Volume {
	if v.unit == u {
		return v
	}
	factor := v.unit.FactorTo(u)
	return Volume{value: v.value * factor * factor * factor, unit: u}
}

// Add returns the sum of two volumes expressed in the same unit.
func (v Volume) Add(other Volume) (Volume, error) {
	if v.unit != other.unit {
		return Volume{}, incompatibleUnits(v.unit, other.unit)
	}
	return Volume{value: v.value + other.value, unit: v.unit}, nil
}

// Sub returns the difference of two volumes expressed in the same unit.
func (v Volume) Sub(other Volume) (Volume, error) {
	if v.unit != other.unit {
		return Volume{}, incompatibleUnits(v.unit, other.unit)
	}
	return Volume{value: v.value - other.value, unit: v.unit}, nil
}

// Neg returns the volume with its value negated.
func (v Volume) Neg() Volume {
	return Volume{value: -v.value, unit: v.unit}
}

// Mul scales the volume by a scalar.
func (v Volume) Mul(scalar float64) Volume {
	return Volume{value: v.value * scalar, unit: v.unit}
}

// Div divides the volume by a scalar.
func (v Volume) Div(scalar float64) Volume {
	return Volume{value: v.value / scalar, unit: v.unit}
}

// Over returns the length of the volume over the given area, both expressed
// in the same unit.
func (v Volume) Over(a Area) (Length, error) {
	if v.unit != a.unit {
		return Length{}, incompatibleUnits(v.unit, a.unit)
	}
	return Length{value: v.value / a.value, unit: v.unit}, nil
}

// OverLength returns the area of the volume over the given length, both
// expressed in the same unit.
func (v Volume) OverLength(l Length) (Area, error) {
	if v.unit != l.unit {
		return Area{}, incompatibleUnits(v.unit, l.unit)
	}
	return Area{value: v.value / l.value, unit: v.unit}, nil
}

// String renders the volume as "<value> <symbol>³", e.g. "2.5 yd³".
func (v Volume) String() string {
	return measure.Format(v.value, v.unit.Symbol()+"³")
}
