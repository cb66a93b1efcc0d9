package decfloat

import "strings"

// PrecisionFunc decides how many leading digits of v fit a format with max
// digits of precision. It returns the number of digits kept and the number
// dropped from the right; the two must add up to the length of v.Digits.
type PrecisionFunc func(v Value, max int) (precision, dropped int)

// Truncate keeps every digit when they fit. Otherwise trailing zeros are
// trimmed only as far as needed and any digits still in excess are dropped
// for rounding.
func Truncate(v Value, max int) (precision, dropped int) {
	n := len(v.Digits)

	for n > max && v.Digits[n-1] == 0 {
		n--
	}

	if n > max {
		n = max
	}

	return n, len(v.Digits) - n
}

// RoundingMode selects how dropped digits affect the kept ones.
type RoundingMode int

// Rounding modes.
const (
	HalfEven RoundingMode = iota
	HalfUp
	HalfDown
	Up
	Down
	Ceiling
	Floor
)

var roundingNames = []string{
	HalfEven: "half-even",
	HalfUp:   "half-up",
	HalfDown: "half-down",
	Up:       "up",
	Down:     "down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingNames) {
		return "RoundingMode(?)"
	}

	return roundingNames[m]
}

// ParseRoundingMode accepts the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for m, name := range roundingNames {
		if name == s {
			return RoundingMode(m), nil
		}
	}

	return HalfEven, Error.New("unknown rounding mode: %q", s)
}

// half compares the dropped digits against one half of a unit in the last
// kept place.
func half(dropped []byte) int {
	if len(dropped) == 0 {
		return -1
	}

	switch {
	case dropped[0] < 5:
		return -1
	case dropped[0] > 5:
		return 1
	}

	for _, d := range dropped[1:] {
		if d != 0 {
			return 1
		}
	}

	return 0
}

func nonzero(dropped []byte) bool {
	for _, d := range dropped {
		if d != 0 {
			return true
		}
	}

	return false
}

// increment reports whether the kept digits must be incremented by one unit.
func (m RoundingMode) increment(negative bool, kept, dropped []byte) bool {
	switch m {
	case HalfEven:
		c := half(dropped)
		if c == 0 {
			return len(kept) > 0 && kept[len(kept)-1]%2 == 1
		}

		return c > 0
	case HalfUp:
		return half(dropped) >= 0
	case HalfDown:
		return half(dropped) > 0
	case Up:
		return nonzero(dropped)
	case Down:
		return false
	case Ceiling:
		return !negative && nonzero(dropped)
	case Floor:
		return negative && nonzero(dropped)
	}

	panic(Error.New("invalid rounding mode: %d", m))
}

// round applies the mode to kept and returns the new digits and exponent.
// A carry out of the most significant digit keeps the length by dropping a
// trailing zero and incrementing the exponent.
func (m RoundingMode) round(negative bool, kept, dropped []byte, exponent int64) ([]byte, int64) {
	digits := append([]byte(nil), kept...)

	if !m.increment(negative, kept, dropped) {
		return digits, exponent
	}

	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] < 9 {
			digits[i]++

			break
		}

		digits[i] = 0
	}

	if i < 0 {
		digits = append([]byte{1}, digits...)
		digits = digits[:len(digits)-1]
		exponent++
	}

	return digits, exponent
}
