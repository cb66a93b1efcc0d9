package decfloat

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a finite decimal number: (-1)^Negative * Digits * 10^Exponent.
//
// Digits are most significant first, each in the range 0 to 9. Unlike
// decimal.Decimal a Value keeps the sign of zero and its trailing zeros.
type Value struct {
	Negative bool
	Digits   []byte
	Exponent int32
}

// normalize strips leading zeros. The empty coefficient becomes zero.
func (v Value) normalize() Value {
	i := 0
	for i < len(v.Digits)-1 && v.Digits[i] == 0 {
		i++
	}

	digits := v.Digits[i:]
	if len(digits) == 0 {
		digits = []byte{0}
	}

	return Value{
		Negative: v.Negative,
		Digits:   digits,
		Exponent: v.Exponent,
	}
}

// Canonical strips leading zeros and moves trailing zeros into the
// exponent. Zero keeps its sign and exponent.
func (v Value) Canonical() Value {
	v = v.normalize()
	if v.IsZero() {
		return v
	}

	n := len(v.Digits)
	for n > 1 && v.Digits[n-1] == 0 {
		n--
	}

	return Value{
		Negative: v.Negative,
		Digits:   v.Digits[:n],
		Exponent: v.Exponent + int32(len(v.Digits)-n),
	}
}

// IsZero returns true if every digit is zero.
func (v Value) IsZero() bool {
	for _, d := range v.Digits {
		if d != 0 {
			return false
		}
	}

	return true
}

func (v Value) coefficient() string {
	var sb strings.Builder

	for _, d := range v.normalize().Digits {
		sb.WriteByte('0' + d)
	}

	return sb.String()
}

// String returns the value as coefficient and exponent, e.g. "-123E-2".
func (v Value) String() string {
	var sb strings.Builder

	if v.Negative {
		sb.WriteByte('-')
	}

	sb.WriteString(v.coefficient())

	if v.Exponent != 0 {
		sb.WriteByte('E')
		sb.WriteString(strconv.FormatInt(int64(v.Exponent), 10))
	}

	return sb.String()
}

// Decimal converts the value to a decimal.Decimal. Negative zero becomes
// zero.
func (v Value) Decimal() decimal.Decimal {
	c, ok := new(big.Int).SetString(v.coefficient(), 10)
	if !ok {
		panic(Error.New("invalid coefficient: %v", v.Digits))
	}

	if v.Negative {
		c.Neg(c)
	}

	return decimal.NewFromBigInt(c, v.Exponent)
}

// FromDecimal converts d to a Value, keeping its exponent.
func FromDecimal(d decimal.Decimal) Value {
	c := d.Coefficient()

	v := Value{
		Negative: c.Sign() < 0,
		Exponent: d.Exponent(),
	}

	s := new(big.Int).Abs(c).String()
	v.Digits = make([]byte, len(s))

	for i := range s {
		v.Digits[i] = s[i] - '0'
	}

	return v
}

// ParseValue parses decimal text such as "1.23", "-0", "1E+5" or "-4.50e-3".
// Trailing zeros are kept in the coefficient.
func ParseValue(s string) (v Value, err error) {
	s = strings.TrimSpace(s)

	negative := false

	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if s == "" || s[0] == '-' || s[0] == '+' {
		return v, TypeMismatchError.New("not a decimal: %q", s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return v, TypeMismatchError.Wrap(err)
	}

	v = FromDecimal(d)
	v.Negative = negative

	return v, nil
}
