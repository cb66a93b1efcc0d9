// Package integer provides an arbitrary size signed magnitude.
//
// Magnitudes are built from base 10^9 limbs (nine decimal digits each, the
// natural grouping of three declets) and stored big-endian in bytes. The
// conversion multiplies each limb by a power of 10^9 held in 32-bit limbs
// and accumulates with explicit carries, so no intermediate value exceeds 64
// bits.
package integer

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Billion is the radix of the decimal limbs.
const Billion = 1_000_000_000

// pow1e9[k] is 10^(9k) as little-endian 32-bit limbs.
var pow1e9 = [][]uint32{
	{0x00000001},
	{0x3b9aca00},
	{0xa7640000, 0x0de0b6b3},
	{0xe8000000, 0x9fd0803c, 0x033b2e3c},
}

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBillions builds a magnitude from base 10^9 limbs, most significant
// first. At most four limbs (36 decimal digits) are supported.
func FromBillions(negative bool, limbs []uint32) (b Block, err error) {
	if len(limbs) > len(pow1e9) {
		return b, Error.New("too many limbs: %d", len(limbs))
	}

	// Room for the largest power plus one limb of carry.
	acc := make([]uint32, len(pow1e9[len(pow1e9)-1])+1)

	for i, limb := range limbs {
		if limb >= Billion {
			return b, Error.New("limb out of range: %d", limb)
		}

		mulAdd(acc, pow1e9[len(limbs)-1-i], limb)
	}

	return Block{
		Value:    limbsToBytes(acc),
		Negative: negative,
	}, nil
}

// mulAdd adds p*m into acc.
func mulAdd(acc []uint32, p []uint32, m uint32) {
	var carry uint64

	for i := range acc {
		var prod uint64
		if i < len(p) {
			prod = uint64(p[i]) * uint64(m)
		}

		sum := uint64(acc[i]) + (prod & 0xffff_ffff) + carry
		acc[i] = uint32(sum)
		carry = sum>>32 + prod>>32
	}

	if carry != 0 {
		panic(Error.New("accumulator overflow"))
	}
}

func limbsToBytes(limbs []uint32) []byte {
	data := make([]byte, 4*len(limbs))
	for i, l := range limbs {
		binary.BigEndian.PutUint32(data[len(data)-4*(i+1):], l)
	}

	// Note: zero is kept as a single zero byte rather than an empty slice.
	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}

	return data
}

// IsZero returns true if the magnitude is zero.
func (b Block) IsZero() bool {
	for _, v := range b.Value {
		if v != 0 {
			return false
		}
	}

	return true
}

// BigInt returns the signed value. Negative zero becomes zero.
func (b Block) BigInt() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Digits returns the decimal digits of the magnitude, most significant
// first. Zero is a single 0 digit.
func (b Block) Digits() []byte {
	s := new(big.Int).SetBytes(b.Value).String()

	digits := make([]byte, len(s))
	for i := range s {
		digits[i] = s[i] - '0'
	}

	return digits
}

// String returns the signed decimal form, keeping the sign of negative
// zero.
func (b Block) String() string {
	s := new(big.Int).SetBytes(b.Value).String()
	if b.Negative {
		return "-" + s
	}

	return s
}
