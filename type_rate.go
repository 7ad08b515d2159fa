package fava

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

var one = decimal.NewFromInt(1)

// Rate is an exact decimal exchange rate: one unit of a base currency is
// worth Rate units of a quote currency. Rates are kept as decimals end to
// end, never as floats, so conversions carry no rounding drift.
type Rate struct {
	value decimal.Decimal
}

// R is a convenient factory for Rate.
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// One returns the identity rate.
func One() Rate { return Rate{value: one} }

// ParseRate parses a rate from its decimal string representation.
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, err
	}
	return Rate{value: d}, nil
}

// Inverse returns 1/r. Callers must not invert a zero rate.
func (r Rate) Inverse() Rate { return Rate{value: one.Div(r.value)} }

func (r Rate) Mul(p Rate) Rate   { return Rate{value: r.value.Mul(p.value)} }
func (r Rate) Equal(p Rate) bool { return r.value.Equal(p.value) }
func (r Rate) IsZero() bool      { return r.value.IsZero() }
func (r Rate) String() string    { return r.value.String() }

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (r Rate) AsFloat() float64 { return r.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface.
func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}
func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}
