package bidi

const (
	arabicIndicZero         = 0x0660
	extendedArabicIndicZero = 0x06F0
)

// shapeDigit rewrites r according to the numeral mode. arabic is set when
// the digit follows Arabic letters.
func shapeDigit(r rune, mode Numerals, arabic bool) rune {
	switch mode {
	case NumeralsNominal:
		switch {
		case r >= arabicIndicZero && r <= arabicIndicZero+9:
			return '0' + r - arabicIndicZero
		case r >= extendedArabicIndicZero && r <= extendedArabicIndicZero+9:
			return '0' + r - extendedArabicIndicZero
		}
	case NumeralsNational:
		if r >= '0' && r <= '9' {
			return arabicIndicZero + r - '0'
		}
	case NumeralsContextual:
		if arabic && r >= '0' && r <= '9' {
			return arabicIndicZero + r - '0'
		}
	}

	return r
}
