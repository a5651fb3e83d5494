package chrono

import "github.com/ARM-software/golang-units/units/measure"

// Period is a measurement of a duration or interval of time: a value paired
// with the unit it is expressed in.
type Period struct {
	value float64
	unit  Unit
}

// Of returns a period of v expressed in the given unit. The value is stored
// as provided, it is not rescaled to any base unit.
func Of(v float64, u Unit) (Period, error) {
	if !u.d.IsDefined() {
		return Period{}, undefinedUnit()
	}
	return Period{value: v, unit: u}, nil
}

// Gigaseconds returns a period expressed in gigaseconds.
func Gigaseconds(v float64) Period { return Period{value: v, unit: Gigasecond} }

// Megaseconds returns a period expressed in megaseconds.
func Megaseconds(v float64) Period { return Period{value: v, unit: Megasecond} }

// Kiloseconds returns a period expressed in kiloseconds.
func Kiloseconds(v float64) Period { return Period{value: v, unit: Kilosecond} }

// Fortnights returns a period expressed in fortnights.
func Fortnights(v float64) Period { return Period{value: v, unit: Fortnight} }

// Weeks returns a period expressed in weeks.
func Weeks(v float64) Period { return Period{value: v, unit: Week} }

// Days returns a period expressed in days.
func Days(v float64) Period { return Period{value: v, unit: Day} }

// Hours returns a period expressed in hours.
func Hours(v float64) Period { return Period{value: v, unit: Hour} }

// Minutes returns a period expressed in minutes.
func Minutes(v float64) Period { return Period{value: v, unit: Minute} }

// Seconds returns a period expressed in seconds.
func Seconds(v float64) Period { return Period{value: v, unit: Second} }

// Deciseconds returns a period expressed in deciseconds.
func Deciseconds(v float64) Period { return Period{value: v, unit: Decisecond} }

// Milliseconds returns a period expressed in milliseconds.
func Milliseconds(v float64) Period { return Period{value: v, unit: Millisecond} }

// Microseconds returns a period expressed in microseconds.
func Microseconds(v float64) Period { return Period{value: v, unit: Microsecond} }

// Nanoseconds returns a period expressed in nanoseconds.
func Nanoseconds(v float64) Period { return Period{value: v, unit: Nanosecond} }

// Picoseconds returns a period expressed in picoseconds.
func Picoseconds(v float64) Period { return Period{value: v, unit: Picosecond} }

// Value returns the number of units the period measures.
func (p Period) Value() float64 {
	return p.value
}

// Unit returns the unit the period is expressed in.
func (p Period) Unit() Unit {
	return p.unit
}

// To converts the period to the given unit. Converting to the unit the period
// is already expressed in returns it unchanged.
func (p Period) To(u Unit) Period {
	if p.unit == u {
		return p
	}
	return Period{value: p.value * p.unit.FactorTo(u), unit: u}
}

// Add returns the sum of two periods expressed in the same unit. Periods in
// different units are never summed silently: convert one of them first.
func (p Period) Add(other Period) (Period, error) {
	if p.unit != other.unit {
		return Period{}, incompatibleUnits(p.unit, other.unit)
	}
	return Period{value: p.value + other.value, unit: p.unit}, nil
}

// Sub returns the difference of two periods expressed in the same unit.
func (p Period) Sub(other Period) (Period, error) {
	if p.unit != other.unit {
		return Period{}, incompatibleUnits(p.unit, other.unit)
	}
	return Period{value: p.value - other.value, unit: p.unit}, nil
}

// Neg returns the period with its value negated.
func (p Period) Neg() Period {
	return Period{value: -p.value, unit: p.unit}
}

// Mul scales the period by a scalar.
func (p Period) Mul(scalar float64) Period {
	return Period{value: p.value * scalar, unit: p.unit}
}

// Div divides the period by a scalar.
func (p Period) Div(scalar float64) Period {
	return Period{value: p.value / scalar, unit: p.unit}
}

// Ratio returns the dimensionless ratio of two periods. The units may differ:
// the receiver is re-expressed in the other period's unit before dividing.
func (p Period) Ratio(other Period) float64 {
	return p.value * p.unit.FactorTo(other.unit) / other.value
}

// DivideInto returns the frequency of n repetitions per period, keeping the
// period's unit: Seconds(1).DivideInto(60) is "60 ㎐".
func (p Period) DivideInto(n float64) Frequency {
	return Frequency{value: n / p.value, unit: p.unit}
}

// String renders the period as "<value> <symbol>", e.g. "22.8 s".
func (p Period) String() string {
	return measure.Format(p.value, p.unit.Symbol())
}
