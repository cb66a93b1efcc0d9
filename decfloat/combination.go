package decfloat

// Combination is a decoding case of the 5 bit combination field.
type Combination struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this case matches the given combination field.
func (c Combination) Match(b byte) bool {
	return b&^c.Mask == c.Prefix
}

type combinations []Combination

func (cs combinations) Match(b byte) (c Combination, ok bool) {
	for _, c := range cs {
		if c.Match(b) {
			return c, true
		}
	}

	return c, false
}

// Combination field cases. E0 through E2 carry the exponent top bits and a
// small most significant digit, L0 through L2 a large (8 or 9) one.
var (
	E0       = Combination{0b_00000, 0b_00111, "e0"}
	E1       = Combination{0b_01000, 0b_00111, "e1"}
	E2       = Combination{0b_10000, 0b_00111, "e2"}
	L0       = Combination{0b_11000, 0b_00001, "l0"}
	L1       = Combination{0b_11010, 0b_00001, "l1"}
	L2       = Combination{0b_11100, 0b_00001, "l2"}
	Inf      = Combination{0b_11110, 0b_00000, "inf"}
	NotANum  = Combination{0b_11111, 0b_00000, "nan"}
	Combined = combinations{
		E0,
		E1,
		E2,
		L0,
		L1,
		L2,
		Inf,
		NotANum,
	}
)

// combine builds the combination field from the top two bits of the biased
// exponent and the most significant digit.
func combine(top, msd byte) byte {
	if msd >= 8 {
		return 0b_11000 | top<<1 | msd&1
	}

	return top<<3 | msd
}

// split is the inverse of combine for finite numbers.
func split(comb byte) (top, msd byte) {
	if comb>>3 == 0b_11 {
		return (comb >> 1) & 0b_11, 8 | comb&1
	}

	return comb >> 3, comb & 0b_111
}
