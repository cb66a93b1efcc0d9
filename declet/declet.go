package declet

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("declet")

// Mask covers the ten bits of a declet.
const Mask uint16 = 0b_11_1111_1111

// Type is a decoding case of a declet.
type Type struct {
	Prefix uint16
	Mask   uint16
	Abbr   string
}

// Match returns true if this decoding case matches the given declet.
func (t Type) Match(v uint16) bool {
	return v&^t.Mask == t.Prefix
}

type types []Type

func (ts types) Match(v uint16) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(v) {
			return t, true
		}
	}

	return t, false
}

// Decoding cases, named for the digits that are 8 or 9 (h: hundreds, t:
// tens, u: units).
var (
	Unknown = Type{}
	Small   = Type{0b_00_0000_0000, 0b_11_1111_0111, "-"}
	U       = Type{0b_00_0000_1000, 0b_11_1111_0001, "u"}
	T       = Type{0b_00_0000_1010, 0b_11_1111_0001, "t"}
	H       = Type{0b_00_0000_1100, 0b_11_1111_0001, "h"}
	HT      = Type{0b_00_0000_1110, 0b_11_1001_0001, "ht"}
	HU      = Type{0b_00_0010_1110, 0b_11_1001_0001, "hu"}
	TU      = Type{0b_00_0100_1110, 0b_11_1001_0001, "tu"}
	HTU     = Type{0b_00_0110_1110, 0b_11_1001_0001, "htu"}

	Types = types{
		Small,
		U,
		T,
		H,
		HT,
		HU,
		TU,
		HTU,
	}
)

func bit(v uint16, n uint) uint16 {
	return (v >> n) & 1
}

// Pack encodes the hundreds, tens and units digits as a declet. Each digit
// must be in the range 0 to 9.
func Pack(d2, d1, d0 byte) uint16 {
	if d2 > 9 || d1 > 9 || d0 > 9 {
		panic(Error.New("invalid digits: %d%d%d", d2, d1, d0))
	}

	h, t, u := uint16(d2), uint16(d1), uint16(d0)

	a, b, c, d := bit(h, 3), bit(h, 2), bit(h, 1), bit(h, 0)
	e, f, g, hh := bit(t, 3), bit(t, 2), bit(t, 1), bit(t, 0)
	i, j, k, m := bit(u, 3), bit(u, 2), bit(u, 1), bit(u, 0)

	var p, q, r, s, tt, uu, v, w, x, y uint16

	r, uu, y = d, hh, m

	switch a<<2 | e<<1 | i {
	case 0b000:
		p, q, s, tt, v, w, x = b, c, f, g, 0, j, k
	case 0b001:
		p, q, s, tt, v, w, x = b, c, f, g, 1, 0, 0
	case 0b010:
		p, q, s, tt, v, w, x = b, c, j, k, 1, 0, 1
	case 0b100:
		p, q, s, tt, v, w, x = j, k, f, g, 1, 1, 0
	case 0b110:
		p, q, s, tt, v, w, x = j, k, 0, 0, 1, 1, 1
	case 0b101:
		p, q, s, tt, v, w, x = f, g, 0, 1, 1, 1, 1
	case 0b011:
		p, q, s, tt, v, w, x = b, c, 1, 0, 1, 1, 1
	case 0b111:
		p, q, s, tt, v, w, x = 0, 0, 1, 1, 1, 1, 1
	}

	return p<<9 | q<<8 | r<<7 | s<<6 | tt<<5 | uu<<4 | v<<3 | w<<2 | x<<1 | y
}

// Unpack decodes a declet into its hundreds, tens and units digits. Only
// the low ten bits of v are used.
func Unpack(v uint16) (d2, d1, d0 byte) {
	v &= Mask

	p, q, r := bit(v, 9), bit(v, 8), bit(v, 7)
	s, t, u := bit(v, 6), bit(v, 5), bit(v, 4)
	w, x, y := bit(v, 2), bit(v, 1), bit(v, 0)

	ty, ok := Types.Match(v)
	if !ok {
		// Every ten bit value matches one of the cases.
		panic(Error.New("unmatched declet: %010b", v))
	}

	var h, tn, un uint16

	switch ty {
	case Small:
		h, tn, un = p<<2|q<<1|r, s<<2|t<<1|u, w<<2|x<<1|y
	case U:
		h, tn, un = p<<2|q<<1|r, s<<2|t<<1|u, 8|y
	case T:
		h, tn, un = p<<2|q<<1|r, 8|u, s<<2|t<<1|y
	case H:
		h, tn, un = 8|r, s<<2|t<<1|u, p<<2|q<<1|y
	case HT:
		h, tn, un = 8|r, 8|u, p<<2|q<<1|y
	case HU:
		h, tn, un = 8|r, p<<2|q<<1|u, 8|y
	case TU:
		h, tn, un = p<<2|q<<1|r, 8|u, 8|y
	case HTU:
		h, tn, un = 8|r, 8|u, 8|y
	}

	return byte(h), byte(tn), byte(un)
}

// PackValue encodes a number between 0 and 999.
func PackValue(n uint16) uint16 {
	return Pack(byte(n/100), byte(n/10%10), byte(n%10))
}

// UnpackValue decodes a declet into a number between 0 and 999.
func UnpackValue(v uint16) uint16 {
	d2, d1, d0 := Unpack(v)

	return uint16(d2)*100 + uint16(d1)*10 + uint16(d0)
}
