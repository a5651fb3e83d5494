package chrono

import "github.com/ARM-software/golang-units/units/measure"

// Frequency is a measurement of temporal frequency for repeating events: the
// reciprocal of a period. A frequency of v in unit u counts v repetitions per
// u and renders with the unit's inverse symbol, e.g. "60 ㎐" per second.
type Frequency struct {
	value float64
	unit  Unit
}

// Per returns a frequency of v repetitions per given unit.
func Per(v float64, u Unit) (Frequency, error) {
	if !u.d.IsDefined() {
		return Frequency{}, undefinedUnit()
	}
	return Frequency{value: v, unit: u}, nil
}

// PerSecond returns a frequency of v repetitions per second (v hertz).
func PerSecond(v float64) Frequency { return Frequency{value: v, unit: Second} }

// PerMinute returns a frequency of v repetitions per minute.
func PerMinute(v float64) Frequency { return Frequency{value: v, unit: Minute} }

// PerHour returns a frequency of v repetitions per hour.
func PerHour(v float64) Frequency { return Frequency{value: v, unit: Hour} }

// PerDay returns a frequency of v repetitions per day.
func PerDay(v float64) Frequency { return Frequency{value: v, unit: Day} }

// Value returns the number of repetitions per unit.
func (f Frequency) Value() float64 {
	return f.value
}

// Unit returns the time unit the frequency is the reciprocal of.
func (f Frequency) Unit() Unit {
	return f.unit
}

// To converts the frequency to repetitions per the given unit, dividing by
// the period factor ratio: a thousand repetitions per second is one per
// millisecond ("1 ㎑").
func (f Frequency) To(u Unit) Frequency {
	if f.unit == u {
		return f
	}
	return Frequency{value: f.value / f.unit.FactorTo(u), unit: u}
}

// Add returns the sum of two frequencies expressed in the same unit.
// Frequencies in different units are never summed silently: convert one of
// them first.
func (f Frequency) Add(other Frequency) (Frequency, error) {
	if f.unit != other.unit {
		return Frequency{}, incompatibleUnits(f.unit, other.unit)
	}
	return Frequency{value: f.value + other.value, unit: f.unit}, nil
}

// Sub returns the difference of two frequencies expressed in the same unit.
func (f Frequency) Sub(other Frequency) (Frequency, error) {
	if f.unit != other.unit {
		return Frequency{}, incompatibleUnits(f.unit, other.unit)
	}
	return Frequency{value: f.value - other.value, unit: f.unit}, nil
}

// Neg returns the frequency with its value negated.
func (f Frequency) Neg() Frequency {
	return Frequency{value: -f.value, unit: f.unit}
}

// Mul scales the frequency by a scalar.
func (f Frequency) Mul(scalar float64) Frequency {
	return Frequency{value: f.value * scalar, unit: f.unit}
}

// Div divides the frequency by a scalar.
func (f Frequency) Div(scalar float64) Frequency {
	return Frequency{value: f.value / scalar, unit: f.unit}
}

// Ratio returns the dimensionless ratio of two frequencies. The units may
// differ: the receiver is re-expressed in the other frequency's unit before
// dividing.
func (f Frequency) Ratio(other Frequency) float64 {
	return f.value / f.unit.FactorTo(other.unit) / other.value
}

// DivideInto returns the period of n repetitions at this frequency, keeping
// the frequency's unit: PerMinute(1).DivideInto(2) is "2 min".
func (f Frequency) DivideInto(n float64) Period {
	return Period{value: n / f.value, unit: f.unit}
}

// String renders the frequency with the unit's inverse symbol, e.g. "60 ㎐"
// or "2 /d".
func (f Frequency) String() string {
	return measure.Format(f.value, f.unit.InverseSymbol())
}
