// Package speed defines the compound quantity of speed: a length per period
// of time. A speed keeps both the length unit and the time unit it was
// created with, so "55 mi/h" stays expressed in miles per hour until
// explicitly converted.
package speed

import (
	"github.com/ARM-software/golang-units/units/chrono"
	"github.com/ARM-software/golang-units/units/commonerrors"
	"github.com/ARM-software/golang-units/units/length"
	"github.com/ARM-software/golang-units/units/measure"
)

// Speed is a measurement of speed tagged with the length and time units it is
// expressed in, numerator first.
type Speed struct {
	value  float64
	length length.Unit
	period chrono.Unit
}

// New returns a speed of v expressed in the given length unit per time unit.
func New(v float64, lu length.Unit, pu chrono.Unit) (Speed, error) {
	if !lu.Descriptor().IsDefined() || !pu.Descriptor().IsDefined() {
		return Speed{}, commonerrors.New(commonerrors.ErrUndefined, "unit is not defined")
	}
	return Speed{value: v, length: lu, period: pu}, nil
}

// Over returns the speed covering a length within a period. Both quantities
// keep their unit: 55 miles over 1 hour is "55 mi/h", never rescaled to any
// base unit.
func Over(l length.Length, p chrono.Period) Speed {
	return Speed{value: l.Value() / p.Value(), length: l.Unit(), period: p.Unit()}
}

// Product returns the speed of a length travelled at a frequency: 15 metres
// at 3 per decisecond is "45 m/ds".
func Product(l length.Length, f chrono.Frequency) Speed {
	return Speed{value: l.Value() * f.Value(), length: l.Unit(), period: f.Unit()}
}

// Value returns the number of length units per time unit.
func (s Speed) Value() float64 {
	return s.value
}

// LengthUnit returns the numerator unit the speed is expressed in.
func (s Speed) LengthUnit() length.Unit {
	return s.length
}

// PeriodUnit returns the denominator unit the speed is expressed in.
func (s Speed) PeriodUnit() chrono.Unit {
	return s.period
}

// To converts the speed to the given length unit per time unit. Converting to
// the units the speed is already expressed in returns it unchanged.
func (s Speed) To(lu length.Unit, pu chrono.Unit) Speed {
	if s.length == lu && s.period == pu {
		return s
	}
	factor := s.length.FactorTo(lu) / s.period.FactorTo(pu)
	return Speed{value: s.value * factor, length: lu, period: pu}
}

// Add returns the sum of two speeds expressed in the same units. Speeds in
// different units are never summed silently: convert one of them first.
func (s Speed) Add(other Speed) (Speed, error) {
	if s.length != other.length || s.period != other.period {
		return Speed{}, s.incompatibleUnits(other)
	}
	return Speed{value: s.value + other.value, length: s.length, period: s.period}, nil
}

// Sub returns the difference of two speeds expressed in the same units.
func (s Speed) Sub(other Speed) (Speed, error) {
	if s.length != other.length || s.period != other.period {
		return Speed{}, s.incompatibleUnits(other)
	}
	return Speed{value: s.value - other.value, length: s.length, period: s.period}, nil
}

// Neg returns the speed with its value negated.
func (s Speed) Neg() Speed {
	return Speed{value: -s.value, length: s.length, period: s.period}
}

// Mul scales the speed by a scalar.
func (s Speed) Mul(scalar float64) Speed {
	return Speed{value: s.value * scalar, length: s.length, period: s.period}
}

// Div divides the speed by a scalar.
func (s Speed) Div(scalar float64) Speed {
	return Speed{value: s.value / scalar, length: s.length, period: s.period}
}

// Ratio returns the dimensionless ratio of two speeds. The units may differ:
// the receiver is re-expressed in the other speed's units before dividing.
func (s Speed) Ratio(other Speed) float64 {
	factor := s.length.FactorTo(other.length) / s.period.FactorTo(other.period)
	return s.value * factor / other.value
}

// Symbol returns the compound unit symbol, numerator first, e.g. "mi/h".
func (s Speed) Symbol() string {
	return s.length.Symbol() + "/" + s.period.Symbol()
}

// String renders the speed as "<value> <length symbol>/<time symbol>",
// e.g. "55 mi/h".
func (s Speed) String() string {
	return measure.Format(s.value, s.Symbol())
}

func (s Speed) incompatibleUnits(other Speed) error {
	return commonerrors.Newf(commonerrors.ErrIncompatibleUnits, "cannot combine quantities in '%v' and '%v' without an explicit conversion", s.Symbol(), other.Symbol())
}
