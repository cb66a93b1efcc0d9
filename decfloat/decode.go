package decfloat

import (
	"github.com/calebcase/hostdata/declet"
	"github.com/calebcase/hostdata/integer"
	"github.com/shopspring/decimal"
)

// Decode decodes v with the default schema for f.
func Decode(data []byte, f Format) (Value, error) {
	return NewSchema(f).Decode(data)
}

// DecodeDecimal decodes data as a decimal.Decimal. Negative zero becomes
// zero.
func DecodeDecimal(data []byte, f Format) (decimal.Decimal, error) {
	v, err := Decode(data, f)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return v.Decimal(), nil
}

// Classify reports whether data holds a special value and which one.
func Classify(data []byte, f Format) (s Special, ok bool) {
	fs, err := f.unpack(data)
	if err != nil {
		return s, false
	}

	s.Negative = fs.negative

	switch {
	case NotANum.Match(fs.combination):
		s.Kind = NaN
		if data[0]&SignalBit != 0 {
			s.Kind = SignalingNaN
		}
	case Inf.Match(fs.combination):
		s.Kind = Infinity
	default:
		return Special{}, false
	}

	return s, true
}

// Decode returns the finite value encoded in data. NaN and Infinity are
// reported as a SpecialValueError.
func (s Schema) Decode(data []byte) (v Value, err error) {
	f := s.Format

	fs, err := f.unpack(data)
	if err != nil {
		return v, err
	}

	if sv, ok := Classify(data, f); ok {
		return v, SpecialValueError.New("%s is not a finite value", sv)
	}

	top, msd := split(fs.combination)
	biased := int64(top)<<f.Continuation | int64(fs.continuation)

	digits := make([]byte, 0, f.Digits)
	digits = append(digits, msd)

	for _, d := range fs.declets {
		d2, d1, d0 := declet.Unpack(d)
		digits = append(digits, d2, d1, d0)
	}

	mag, err := integer.FromBillions(fs.negative, billions(digits))
	if err != nil {
		return v, Error.Wrap(err)
	}

	return Value{
		Negative: mag.Negative,
		Digits:   mag.Digits(),
		Exponent: int32(biased - int64(f.Bias)),
	}, nil
}

// billions groups decimal digits into base 10^9 limbs from the right, most
// significant limb first.
func billions(digits []byte) []uint32 {
	limbs := make([]uint32, (len(digits)+8)/9)

	end := len(digits)
	for k := len(limbs) - 1; k >= 0; k-- {
		start := end - 9
		if start < 0 {
			start = 0
		}

		var limb uint32
		for _, d := range digits[start:end] {
			limb = limb*10 + uint32(d)
		}

		limbs[k] = limb
		end = start
	}

	return limbs
}
