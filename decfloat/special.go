package decfloat

import "strings"

// Kind is a kind of special value.
type Kind int

// Special value kinds.
const (
	NaN Kind = iota
	SignalingNaN
	Infinity
)

func (k Kind) String() string {
	switch k {
	case NaN:
		return "NaN"
	case SignalingNaN:
		return "sNaN"
	case Infinity:
		return "Infinity"
	}

	return "Kind(?)"
}

// Special is a non-finite value.
type Special struct {
	Kind     Kind
	Negative bool
}

func (s Special) String() string {
	if s.Negative {
		return "-" + s.Kind.String()
	}

	return s.Kind.String()
}

// ParseSpecial recognizes the textual forms of the special values. Case is
// ignored.
func ParseSpecial(str string) (s Special, ok bool) {
	str = strings.ToLower(strings.TrimSpace(str))

	switch {
	case strings.HasPrefix(str, "-"):
		s.Negative = true
		str = str[1:]
	case strings.HasPrefix(str, "+"):
		str = str[1:]
	}

	switch str {
	case "nan":
		s.Kind = NaN
	case "snan":
		s.Kind = SignalingNaN
	case "inf", "infinity":
		s.Kind = Infinity
	default:
		return Special{}, false
	}

	return s, true
}
