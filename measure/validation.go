package measure

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-units/units/commonerrors"
)

// Validate checks that the descriptor defines a usable unit: a dimension, a
// symbol and a strictly positive finite conversion factor. Any violation is
// reported as a commonerrors.ErrInvalid since a bad descriptor is a defect in
// the unit definition, not a recoverable runtime condition.
func (d Descriptor) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Dimension, validation.Required),
		validation.Field(&d.Symbol, validation.Required),
		validation.Field(&d.Factor, validation.Required, validation.By(isPositiveFinite)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid unit descriptor")
	}
	return nil
}

func isPositiveFinite(vRaw any) error {
	v, ok := vRaw.(float64)
	if !ok {
		return commonerrors.Newf(commonerrors.ErrInvalid, "unsupported type for factor validation: %T", vRaw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return commonerrors.New(commonerrors.ErrInvalid, "must be a finite number")
	}
	if v <= 0 {
		return commonerrors.New(commonerrors.ErrInvalid, "must be strictly positive")
	}
	return nil
}
