package decfloat

import (
	"math"
	"math/big"

	"github.com/calebcase/hostdata/declet"
	"github.com/shopspring/decimal"
)

// Schema is an encoding configuration.
type Schema struct {
	Format Format

	// Precision defaults to Truncate.
	Precision PrecisionFunc

	// Rounding applies to digits dropped by Precision.
	Rounding RoundingMode
}

// NewSchema returns the default schema for f.
func NewSchema(f Format) Schema {
	return Schema{
		Format:    f,
		Precision: Truncate,
		Rounding:  HalfEven,
	}
}

// Encode encodes v with the default schema for f.
func Encode(v Value, f Format) ([]byte, error) {
	return NewSchema(f).Encode(v)
}

// EncodeSpecial encodes a special value with the default schema for f.
func EncodeSpecial(s Special, f Format) ([]byte, error) {
	return NewSchema(f).EncodeSpecial(s)
}

// EncodeDecimal encodes d with the default schema for f.
func EncodeDecimal(d decimal.Decimal, f Format) ([]byte, error) {
	return NewSchema(f).Encode(FromDecimal(d))
}

// EncodeString encodes decimal or special value text with the default
// schema for f.
func EncodeString(s string, f Format) ([]byte, error) {
	return NewSchema(f).EncodeString(s)
}

// EncodeAny encodes x with the default schema for f.
func EncodeAny(x interface{}, f Format) ([]byte, error) {
	return NewSchema(f).EncodeAny(x)
}

// Encode returns the interchange encoding of v.
func (s Schema) Encode(v Value) (data []byte, err error) {
	f := s.Format

	for _, d := range v.Digits {
		if d > 9 {
			return nil, Error.New("invalid digit: %d", d)
		}
	}

	v = v.normalize()

	pf := s.Precision
	if pf == nil {
		pf = Truncate
	}

	precision, dropped := pf(v, f.Digits)
	if precision < 1 || precision > f.Digits || precision+dropped != len(v.Digits) {
		return nil, Error.New("invalid precision for %d digits: %d+%d", len(v.Digits), precision, dropped)
	}

	digits, exponent := v.Digits[:precision], int64(v.Exponent)+int64(dropped)
	if dropped > 0 {
		digits, exponent = s.Rounding.round(v.Negative, digits, v.Digits[precision:], exponent)
	}

	if exponent > int64(f.PadThreshold) && len(digits) < f.Digits {
		pad := f.Digits - len(digits)
		digits = append(append([]byte(nil), digits...), make([]byte, pad)...)
		exponent -= int64(pad)
	}

	adjusted := exponent + int64(len(digits)) - 1
	if adjusted > int64(f.MaxAdjusted) || adjusted < -int64(f.MaxAdjusted-1) {
		return nil, RangeError.New("%s exponent out of range: %s (adjusted %d)", f.Name, v, adjusted)
	}

	full := make([]byte, f.Digits)
	copy(full[f.Digits-len(digits):], digits)

	biased := uint64(exponent + int64(f.Bias))

	return f.pack(fields{
		negative:     v.Negative,
		combination:  combine(byte(biased>>f.Continuation), full[0]),
		continuation: biased & (1<<f.Continuation - 1),
		declets:      packDeclets(full[1:]),
	}), nil
}

func packDeclets(digits []byte) []uint16 {
	declets := make([]uint16, len(digits)/3)
	for k := range declets {
		declets[k] = declet.Pack(digits[3*k], digits[3*k+1], digits[3*k+2])
	}

	return declets
}

// EncodeSpecial returns the interchange encoding of a special value. The
// coefficient and exponent fields hold a placeholder coefficient of 1 with
// exponent 0 under the forced combination field.
func (s Schema) EncodeSpecial(sv Special) ([]byte, error) {
	f := s.Format

	var comb byte

	switch sv.Kind {
	case NaN, SignalingNaN:
		comb = NotANum.Prefix
	case Infinity:
		comb = Inf.Prefix
	default:
		return nil, Error.New("invalid special value kind: %d", sv.Kind)
	}

	full := make([]byte, f.Digits)
	full[f.Digits-1] = 1

	biased := uint64(f.Bias)

	data := f.pack(fields{
		negative:     sv.Negative,
		combination:  comb,
		continuation: biased & (1<<f.Continuation - 1),
		declets:      packDeclets(full[1:]),
	})

	switch sv.Kind {
	case SignalingNaN:
		data[0] |= SignalBit
	case NaN:
		data[0] &^= SignalBit
	}

	return data, nil
}

// EncodeString encodes special value text (see ParseSpecial) or decimal
// text (see ParseValue).
func (s Schema) EncodeString(str string) ([]byte, error) {
	if sv, ok := ParseSpecial(str); ok {
		return s.EncodeSpecial(sv)
	}

	v, err := ParseValue(str)
	if err != nil {
		return nil, err
	}

	return s.Encode(v)
}

// EncodeAny encodes a Value, Special, decimal.Decimal, string, *big.Int,
// any sized signed or unsigned integer, float32 or float64, and pointers to
// Value or decimal.Decimal. A nil pointer or any other type is a
// TypeMismatchError.
func (s Schema) EncodeAny(x interface{}) ([]byte, error) {
	switch x := x.(type) {
	case Value:
		return s.Encode(x)
	case *Value:
		if x == nil {
			return nil, TypeMismatchError.New("nil %T", x)
		}

		return s.Encode(*x)
	case Special:
		return s.EncodeSpecial(x)
	case decimal.Decimal:
		return s.Encode(FromDecimal(x))
	case *decimal.Decimal:
		if x == nil {
			return nil, TypeMismatchError.New("nil %T", x)
		}

		return s.Encode(FromDecimal(*x))
	case string:
		return s.EncodeString(x)
	case int:
		return s.encodeInt(int64(x))
	case int8:
		return s.encodeInt(int64(x))
	case int16:
		return s.encodeInt(int64(x))
	case int32:
		return s.encodeInt(int64(x))
	case int64:
		return s.encodeInt(x)
	case uint:
		return s.encodeUint(uint64(x))
	case uint8:
		return s.encodeUint(uint64(x))
	case uint16:
		return s.encodeUint(uint64(x))
	case uint32:
		return s.encodeUint(uint64(x))
	case uint64:
		return s.encodeUint(x)
	case *big.Int:
		if x == nil {
			return nil, TypeMismatchError.New("nil %T", x)
		}

		return s.Encode(FromDecimal(decimal.NewFromBigInt(x, 0)))
	case float32:
		return s.encodeFloat(float64(x), func() decimal.Decimal {
			return decimal.NewFromFloat32(x)
		})
	case float64:
		return s.encodeFloat(x, func() decimal.Decimal {
			return decimal.NewFromFloat(x)
		})
	}

	return nil, TypeMismatchError.New("unsupported type: %T", x)
}

func (s Schema) encodeInt(i int64) ([]byte, error) {
	return s.Encode(FromDecimal(decimal.New(i, 0)))
}

func (s Schema) encodeUint(u uint64) ([]byte, error) {
	return s.Encode(FromDecimal(decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)))
}

// encodeFloat maps NaN and the infinities to special values and keeps the
// sign of zero. exact converts the finite value at its own precision.
func (s Schema) encodeFloat(f float64, exact func() decimal.Decimal) ([]byte, error) {
	switch {
	case math.IsNaN(f):
		return s.EncodeSpecial(Special{Kind: NaN})
	case math.IsInf(f, 0):
		return s.EncodeSpecial(Special{Kind: Infinity, Negative: f < 0})
	}

	v := FromDecimal(exact())
	v.Negative = math.Signbit(f)

	return s.Encode(v)
}
