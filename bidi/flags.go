package bidi

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("bidi")

// Orientation is the paragraph direction of a text.
type Orientation int

// Orientations. The contextual orientations take the direction of the first
// strong character and fall back to the named direction.
const (
	LTR Orientation = iota
	RTL
	ContextualLTR
	ContextualRTL
)

func (o Orientation) String() string {
	switch o {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case ContextualLTR:
		return "contextual-ltr"
	case ContextualRTL:
		return "contextual-rtl"
	}

	return "Orientation(?)"
}

// Contextual returns true for the contextual orientations.
func (o Orientation) Contextual() bool {
	return o == ContextualLTR || o == ContextualRTL
}

// RTL resolves the orientation against text. The contextual orientations
// take the direction of the first strong character of text.
func (o Orientation) RTL(text []rune) bool {
	switch o {
	case RTL:
		return true
	case ContextualLTR, ContextualRTL:
		for _, c := range text {
			switch Classify(c) {
			case L:
				return false
			case R, AL:
				return true
			}
		}

		return o == ContextualRTL
	}

	return false
}

// Type is the storage order of a text.
type Type int

// Types.
const (
	// Implicit text is stored in logical (reading) order.
	Implicit Type = iota
	// Visual text is stored in display order.
	Visual
)

func (t Type) String() string {
	switch t {
	case Implicit:
		return "implicit"
	case Visual:
		return "visual"
	}

	return "Type(?)"
}

// Numerals selects the digit shapes written to a text.
type Numerals int

// Numeral shaping modes.
const (
	// NumeralsAny leaves digits unchanged.
	NumeralsAny Numerals = iota
	// NumeralsNominal writes ASCII digits.
	NumeralsNominal
	// NumeralsNational writes Arabic-Indic digits.
	NumeralsNational
	// NumeralsContextual writes Arabic-Indic digits after Arabic letters
	// and ASCII digits elsewhere.
	NumeralsContextual
)

func (n Numerals) String() string {
	switch n {
	case NumeralsAny:
		return "any"
	case NumeralsNominal:
		return "nominal"
	case NumeralsNational:
		return "national"
	case NumeralsContextual:
		return "contextual"
	}

	return "Numerals(?)"
}

// Shaping selects whether Arabic text is stored in presentation forms.
type Shaping int

// Shaping modes.
const (
	ShapingAuto Shaping = iota
	ShapingNone
)

func (s Shaping) String() string {
	switch s {
	case ShapingAuto:
		return "shape"
	case ShapingNone:
		return "noshape"
	}

	return "Shaping(?)"
}

// Flags describe the layout of a text.
type Flags struct {
	Orientation Orientation
	Type        Type
	Numerals    Numerals
	Shaping     Shaping

	// Swap is set when mirrored characters (brackets, comparison signs) at
	// right-to-left levels are stored as their mirror image.
	Swap bool
}

// RTL resolves the orientation of the flags against text.
func (f Flags) RTL(text []rune) bool {
	return f.Orientation.RTL(text)
}

// String returns the flags in the form accepted by ParseFlags.
func (f Flags) String() string {
	parts := []string{
		f.Type.String(),
		f.Orientation.String(),
		f.Numerals.String(),
		f.Shaping.String(),
	}

	if f.Swap {
		parts = append(parts, "swap")
	} else {
		parts = append(parts, "noswap")
	}

	return strings.Join(parts, ":")
}

// ParseFlags parses colon separated flag names, e.g.
// "visual:rtl:swap:national". Unnamed settings keep their zero value
// (implicit, ltr, any, shape, noswap).
func ParseFlags(s string) (f Flags, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return f, nil
	}

	for _, tok := range strings.Split(s, ":") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "implicit":
			f.Type = Implicit
		case "visual":
			f.Type = Visual
		case "ltr":
			f.Orientation = LTR
		case "rtl":
			f.Orientation = RTL
		case "contextual-ltr", "cltr":
			f.Orientation = ContextualLTR
		case "contextual-rtl", "crtl":
			f.Orientation = ContextualRTL
		case "any":
			f.Numerals = NumeralsAny
		case "nominal":
			f.Numerals = NumeralsNominal
		case "national":
			f.Numerals = NumeralsNational
		case "contextual":
			f.Numerals = NumeralsContextual
		case "shape":
			f.Shaping = ShapingAuto
		case "noshape":
			f.Shaping = ShapingNone
		case "swap":
			f.Swap = true
		case "noswap":
			f.Swap = false
		default:
			return Flags{}, Error.New("unknown flag: %q", tok)
		}
	}

	return f, nil
}
