package chrono

import (
	"math"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-units/units/commonerrors"
	"github.com/ARM-software/golang-units/units/commonerrors/errortest"
	"github.com/ARM-software/golang-units/units/measure"
)

func TestCatalogue(t *testing.T) {
	units := Units()
	require.NotEmpty(t, units)
	symbols := mapset.NewSet[string]()
	inverses := mapset.NewSet[string]()
	for i := range units {
		u := units[i]
		t.Run(u.Symbol(), func(t *testing.T) {
			assert.NoError(t, u.Descriptor().Validate())
			assert.Equal(t, measure.Time, u.Descriptor().Dimension)
			assert.NotEmpty(t, u.InverseSymbol())
			assert.True(t, symbols.Add(u.Symbol()), "duplicate symbol %v", u.Symbol())
			assert.True(t, inverses.Add(u.InverseSymbol()), "duplicate inverse symbol %v", u.InverseSymbol())
		})
	}
	assert.Equal(t, 1.0, Second.Descriptor().Factor)
}

func TestPeriodDisplay(t *testing.T) {
	assert.Equal(t, "23.7 s", Seconds(23.7).String())
	assert.Equal(t, "3.25 h", Hours(3.25).String())
	assert.Equal(t, "15 min", Minutes(15).String())
	assert.Equal(t, "50.6 ms", Milliseconds(50.6).String())
	assert.Equal(t, "1 fortnight", Fortnights(1).String())
	assert.Equal(t, "NaN s", Seconds(math.NaN()).String())
}

func TestFrequencyDisplay(t *testing.T) {
	// per second renders with the hertz glyph
	assert.Equal(t, "60 ㎐", PerSecond(60).String())
	assert.Equal(t, "50 ㎐", PerSecond(50).String())
	assert.Equal(t, "2 /d", PerDay(2).String())
	assert.Equal(t, "5 /h", PerHour(5).String())
	// inverse symbols name the unit's physical reciprocal
	f, err := Per(3, Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "3 ㎑", f.String())
	f, err = Per(4, Kilosecond)
	require.NoError(t, err)
	assert.Equal(t, "4 mHz", f.String())
}

func TestPeriodTo(t *testing.T) {
	assert.Equal(t, Minutes(285), Hours(4.75).To(Minute))
	assert.Equal(t, Milliseconds(2500), Seconds(2.5).To(Millisecond))
	assert.Equal(t, Seconds(3600), Hours(1).To(Second))
	assert.Equal(t, Nanoseconds(2.5), Picoseconds(2500).To(Nanosecond))
	// identity conversion is exact
	assert.Equal(t, Seconds(23.7), Seconds(23.7).To(Second))
}

func TestFrequencyTo(t *testing.T) {
	// a thousand repetitions per second is one per millisecond, a kilohertz
	converted := PerSecond(1000).To(Millisecond)
	assert.Equal(t, 1.0, converted.Value())
	assert.Equal(t, "1 ㎑", converted.String())

	f, err := Per(300, Millisecond)
	require.NoError(t, err)
	converted = f.To(Microsecond)
	assert.Equal(t, 0.3, converted.Value())
	assert.Equal(t, "0.3 ㎒", converted.String())

	assert.Equal(t, PerSecond(60), PerSecond(60).To(Second))
}

func TestFrequencyRoundTrip(t *testing.T) {
	units := Units()
	for i := range units {
		for j := range units {
			v := math.Abs(float64(faker.Latitude())) + 1.5
			f, err := Per(v, units[i])
			require.NoError(t, err)
			converted := f.To(units[j]).To(units[i])
			assert.InEpsilon(t, v, converted.Value(), 1e-9, "round-trip %v -> %v", units[i].Symbol(), units[j].Symbol())
			assert.Equal(t, units[i], converted.Unit())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	units := Units()
	for i := range units {
		for j := range units {
			v := math.Abs(float64(faker.Latitude())) + 1.5
			p, err := Of(v, units[i])
			require.NoError(t, err)
			converted := p.To(units[j]).To(units[i])
			assert.InEpsilon(t, v, converted.Value(), 1e-9, "round-trip %v -> %v", units[i].Symbol(), units[j].Symbol())
			assert.Equal(t, units[i], converted.Unit())
		}
	}
}

func TestPeriodAdd(t *testing.T) {
	sum, err := Days(3.5).Add(Days(1.25))
	require.NoError(t, err)
	assert.Equal(t, Days(4.75), sum)

	sum, err = Weeks(1).Add(Weeks(2.1))
	require.NoError(t, err)
	assert.Equal(t, Weeks(3.1), sum)

	_, err = Days(3.5).Add(Hours(1))
	errortest.AssertError(t, err, commonerrors.ErrIncompatibleUnits)
}

func TestPeriodSub(t *testing.T) {
	diff, err := Microseconds(567.8).Sub(Microseconds(123.4))
	require.NoError(t, err)
	assert.Equal(t, Microseconds(444.4), diff)

	_, err = Microseconds(567.8).Sub(Milliseconds(123.4))
	errortest.AssertError(t, err, commonerrors.ErrIncompatibleUnits)
}

func TestPeriodScalarOps(t *testing.T) {
	assert.Equal(t, Nanoseconds(78), Nanoseconds(6.5).Mul(12))
	assert.Equal(t, Hours(6), Hours(1.5).Mul(4))
	assert.Equal(t, Hours(1.5), Hours(6).Div(4))
	assert.Equal(t, Seconds(-23.7), Seconds(23.7).Neg())
}

func TestPeriodRatio(t *testing.T) {
	assert.Equal(t, 2.0, Seconds(10).Ratio(Seconds(5)))
	assert.Equal(t, 1.0, Minutes(1).Ratio(Seconds(60)))
	assert.Equal(t, 24.0, Days(1).Ratio(Hours(1)))
}

func TestFrequencyAdd(t *testing.T) {
	a, err := Per(5, Nanosecond)
	require.NoError(t, err)
	b, err := Per(4, Nanosecond)
	require.NoError(t, err)
	total, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 9.0, total.Value())

	_, err = PerSecond(5).Add(PerHour(4))
	errortest.AssertError(t, err, commonerrors.ErrIncompatibleUnits)
}

func TestFrequencySub(t *testing.T) {
	a, err := Per(23, Millisecond)
	require.NoError(t, err)
	b, err := Per(12, Millisecond)
	require.NoError(t, err)
	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, 11.0, diff.Value())

	_, err = a.Sub(PerSecond(1))
	errortest.AssertError(t, err, commonerrors.ErrIncompatibleUnits)
}

func TestFrequencyScalarOps(t *testing.T) {
	f, err := Per(2.5, Decisecond)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Mul(2).Value())
	assert.Equal(t, Decisecond, f.Mul(2).Unit())
	assert.Equal(t, 1.25, f.Div(2).Value())
	assert.Equal(t, -2.5, f.Neg().Value())
}

func TestFrequencyRatio(t *testing.T) {
	assert.Equal(t, 2.0, PerSecond(120).Ratio(PerSecond(60)))
	// one per millisecond is the same frequency as a thousand per second
	f, err := Per(1, Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.Ratio(PerSecond(1000)))
}

func TestDivideInto(t *testing.T) {
	// 1 / (1 s) is one hertz
	assert.Equal(t, PerSecond(1), Seconds(1).DivideInto(1))
	// 60 / (1 s) is "60 ㎐"
	assert.Equal(t, "60 ㎐", Seconds(1).DivideInto(60).String())
	// 2 / (1 /min) is a two minute period
	assert.Equal(t, Minutes(2), PerMinute(1).DivideInto(2))
	assert.Equal(t, PerHour(5), Hours(1).DivideInto(5))
}

func TestOfUndefinedUnit(t *testing.T) {
	_, err := Of(1, Unit{})
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = Per(1, Unit{})
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}
