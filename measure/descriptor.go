// Package measure defines the data model shared by every unit catalogue: the
// dimension identifiers, the unit descriptor record, the conversion engine and
// the quantity formatter.
//
// The dimension packages (length, chrono, mass, speed) wrap descriptors into
// dimension-specific unit types so that mixing dimensions is rejected at
// compile time. The dynamic [Convert] entry point is the runtime fallback for
// callers working with raw descriptors; it checks dimensions itself and is the
// only conversion surface which can fail.
package measure

// Dimension identifies a family of mutually convertible units.
type Dimension string

const (
	Length Dimension = "length"
	Time   Dimension = "time"
	Mass   Dimension = "mass"
)

// Descriptor describes one unit of measure: the dimension it belongs to, its
// display symbol and the factor converting one unit to the dimension's base
// unit (e.g. 0.3048 for a foot when the base is the metre). The base unit of a
// dimension has factor 1.
//
// Inverse, when set, is the symbol of the unit's reciprocal (e.g. "㎐" for the
// second) and is used when formatting reciprocal quantities.
type Descriptor struct {
	Dimension Dimension
	Symbol    string
	Inverse   string
	Factor    float64
}

// New returns a descriptor for a unit of the given dimension. It fails with
// ErrInvalid if the symbol is empty or the factor is not a strictly positive
// finite number.
func New(dimension Dimension, symbol string, factor float64) (Descriptor, error) {
	d := Descriptor{Dimension: dimension, Symbol: symbol, Factor: factor}
	return d, d.Validate()
}

// WithInverse returns a copy of the descriptor carrying the symbol of its
// reciprocal unit.
func (d Descriptor) WithInverse(symbol string) Descriptor {
	d.Inverse = symbol
	return d
}

// IsDefined states whether the descriptor describes an actual unit rather
// than being a zero value.
func (d Descriptor) IsDefined() bool {
	return d != Descriptor{}
}
