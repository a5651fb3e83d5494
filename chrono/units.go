// Package chrono defines quantities of time: periods and their reciprocal,
// frequencies, expressed in a fixed catalogue of units.
//
// Each unit is defined relative to the second with a conversion factor and
// carries the symbol of its reciprocal, used when formatting frequencies: a
// frequency per second renders with the hertz glyph ("60 ㎐") while a
// frequency per day renders as "2 /d".
package chrono

import (
	"github.com/ARM-software/golang-units/units/commonerrors"
	"github.com/ARM-software/golang-units/units/measure"
	"github.com/ARM-software/golang-units/units/multiplication"
)

// Unit is a unit of time from the package catalogue. The zero value does not
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

// InverseSymbol returns the display symbol of the unit's reciprocal.
func (u Unit) InverseSymbol() string {
	return u.d.Inverse
}

// FactorTo returns the multiplier converting a value in u into `to`.
func (u Unit) FactorTo(to Unit) float64 {
	return measure.FactorRatio(u.d, to.d)
}

// Each unit's inverse symbol names its physical reciprocal: one event per
// millisecond is a kilohertz, one event per gigasecond is a nanohertz.
var (
	// Gigasecond
	Gigasecond = mustUnit("Gs", "nHz", multiplication.Giga)
	// Megasecond
	Megasecond = mustUnit("Ms", "μHz", multiplication.Mega)
	// Kilosecond
	Kilosecond = mustUnit("Ks", "mHz", multiplication.Kilo)
	// Fortnight (14 days)
	Fortnight = mustUnit("fortnight", "/fortnight", 14*24*60*60)
	// Week
	Week = mustUnit("wk", "/wk", 7*24*60*60)
	// Day
	Day = mustUnit("d", "/d", 24*60*60)
	// Hour
	Hour = mustUnit("h", "/h", 60*60)
	// Minute
	Minute = mustUnit("min", "/min", 60)
	// Second (base unit); its reciprocal is the hertz glyph
	Second = mustUnit("s", "㎐", 1)
	// Decisecond
	Decisecond = mustUnit("ds", "daHz", multiplication.Deci)
	// Millisecond
	Millisecond = mustUnit("ms", "㎑", multiplication.Milli)
	// Microsecond
	Microsecond = mustUnit("μs", "㎒", multiplication.Micro)
	// Nanosecond
	Nanosecond = mustUnit("ns", "㎓", multiplication.Nano)
	// Picosecond
	Picosecond = mustUnit("ps", "㎔", multiplication.Pico)
)

// Units returns the catalogue of time units.
func Units() []Unit {
	return []Unit{Gigasecond, Megasecond, Kilosecond, Fortnight, Week, Day, Hour, Minute, Second, Decisecond, Millisecond, Microsecond, Nanosecond, Picosecond}
}

func mustUnit(symbol, inverse string, factor float64) Unit {
	d, err := measure.New(measure.Time, symbol, factor)
	if err != nil {
		panic(err)
	}
	return Unit{d: d.WithInverse(inverse)}
}

func undefinedUnit() error {
	return commonerrors.New(commonerrors.ErrUndefined, "unit is not defined")
}

func incompatibleUnits(a, b Unit) error {
	return commonerrors.Newf(commonerrors.ErrIncompatibleUnits, "cannot combine quantities in '%v' and '%v' without an explicit conversion", a.Symbol(), b.Symbol())
}
