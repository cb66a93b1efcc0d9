package bidi

import "sort"

// Class is a bidirectional character class.
type Class uint8

// Classes used by the implicit level table.
const (
	B  Class = iota // paragraph (block) separator
	S               // segment separator
	L               // left to right
	R               // right to left
	EN              // European number
	AN              // Arabic number
	ET              // European terminator
	ES              // European separator
	CS              // common separator
	WS              // whitespace
	ON              // other neutral
	BS              // bidi special: embedding controls and format characters

	// AL (Arabic letter) and NSM (non-spacing mark) are resolved to one of
	// the classes above before the table is consulted.
	AL
	NSM
)

var classNames = [...]string{
	B:   "B",
	S:   "S",
	L:   "L",
	R:   "R",
	EN:  "EN",
	AN:  "AN",
	ET:  "ET",
	ES:  "ES",
	CS:  "CS",
	WS:  "WS",
	ON:  "ON",
	BS:  "BS",
	AL:  "AL",
	NSM: "NSM",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}

	return "Class(?)"
}

type classRange struct {
	lo, hi rune
	class  Class
}

// classRanges covers the supported repertoire. Characters outside every
// range are L.
var classRanges = []classRange{
	{0x0000, 0x0008, BS},
	{0x0009, 0x0009, S},
	{0x000A, 0x000A, B},
	{0x000B, 0x000B, S},
	{0x000C, 0x000C, WS},
	{0x000D, 0x000D, B},
	{0x000E, 0x001B, BS},
	{0x001C, 0x001E, B},
	{0x001F, 0x001F, S},
	{0x0020, 0x0020, WS},
	{0x0021, 0x0022, ON},
	{0x0023, 0x0025, ET},
	{0x0026, 0x002A, ON},
	{0x002B, 0x002B, ES},
	{0x002C, 0x002C, CS},
	{0x002D, 0x002D, ES},
	{0x002E, 0x002F, CS},
	{0x0030, 0x0039, EN},
	{0x003A, 0x003A, CS},
	{0x003B, 0x0040, ON},
	{0x005B, 0x0060, ON},
	{0x007B, 0x007E, ON},
	{0x007F, 0x0084, BS},
	{0x0085, 0x0085, B},
	{0x0086, 0x009F, BS},
	{0x00A0, 0x00A0, CS},
	{0x00A1, 0x00A1, ON},
	{0x00A2, 0x00A5, ET},
	{0x00A6, 0x00A9, ON},
	{0x00AB, 0x00AC, ON},
	{0x00AD, 0x00AD, BS},
	{0x00AE, 0x00AF, ON},
	{0x00B0, 0x00B1, ET},
	{0x00B2, 0x00B3, EN},
	{0x00B4, 0x00B4, ON},
	{0x00B6, 0x00B8, ON},
	{0x00B9, 0x00B9, EN},
	{0x00BB, 0x00BF, ON},
	{0x00D7, 0x00D7, ON},
	{0x00F7, 0x00F7, ON},
	{0x0300, 0x036F, NSM},
	{0x0483, 0x0489, NSM},
	{0x0591, 0x05BD, NSM},
	{0x05BE, 0x05BE, R},
	{0x05BF, 0x05BF, NSM},
	{0x05C0, 0x05C0, R},
	{0x05C1, 0x05C2, NSM},
	{0x05C3, 0x05C3, R},
	{0x05C4, 0x05C5, NSM},
	{0x05C6, 0x05C6, R},
	{0x05C7, 0x05C7, NSM},
	{0x05C8, 0x05FF, R},
	{0x0600, 0x0605, AN},
	{0x0606, 0x0607, ON},
	{0x0608, 0x0608, AL},
	{0x0609, 0x060A, ET},
	{0x060B, 0x060B, AL},
	{0x060C, 0x060C, CS},
	{0x060D, 0x060D, AL},
	{0x060E, 0x060F, ON},
	{0x0610, 0x061A, NSM},
	{0x061B, 0x064A, AL},
	{0x064B, 0x065F, NSM},
	{0x0660, 0x0669, AN},
	{0x066A, 0x066A, ET},
	{0x066B, 0x066C, AN},
	{0x066D, 0x066F, AL},
	{0x0670, 0x0670, NSM},
	{0x0671, 0x06D5, AL},
	{0x06D6, 0x06DC, NSM},
	{0x06DD, 0x06DD, AN},
	{0x06DE, 0x06DE, ON},
	{0x06DF, 0x06E4, NSM},
	{0x06E5, 0x06E6, AL},
	{0x06E7, 0x06E8, NSM},
	{0x06E9, 0x06E9, ON},
	{0x06EA, 0x06ED, NSM},
	{0x06EE, 0x06EF, AL},
	{0x06F0, 0x06F9, EN},
	{0x06FA, 0x07BF, AL},
	{0x07C0, 0x085F, R},
	{0x0860, 0x08FF, AL},
	{0x1680, 0x1680, WS},
	{0x2000, 0x200A, WS},
	{0x200B, 0x200D, BS},
	{0x200E, 0x200E, L},
	{0x200F, 0x200F, R},
	{0x2010, 0x2027, ON},
	{0x2028, 0x2028, WS},
	{0x2029, 0x2029, B},
	{0x202A, 0x202E, BS},
	{0x202F, 0x202F, CS},
	{0x2030, 0x2034, ET},
	{0x2035, 0x205E, ON},
	{0x205F, 0x205F, WS},
	{0x2060, 0x206F, BS},
	{0x2070, 0x2070, EN},
	{0x2074, 0x2079, EN},
	{0x207A, 0x207B, ES},
	{0x207C, 0x207E, ON},
	{0x2080, 0x2089, EN},
	{0x208A, 0x208B, ES},
	{0x208C, 0x208E, ON},
	{0x20A0, 0x20CF, ET},
	{0x20D0, 0x20FF, NSM},
	{0x2190, 0x2211, ON},
	{0x2212, 0x2212, ES},
	{0x2213, 0x2213, ET},
	{0x2214, 0x27FF, ON},
	{0x2900, 0x2BFF, ON},
	{0x3000, 0x3000, WS},
	{0x3001, 0x3004, ON},
	{0x3008, 0x3020, ON},
	{0xFB1D, 0xFB1D, R},
	{0xFB1E, 0xFB1E, NSM},
	{0xFB1F, 0xFB28, R},
	{0xFB29, 0xFB29, ES},
	{0xFB2A, 0xFB4F, R},
	{0xFB50, 0xFD3D, AL},
	{0xFD3E, 0xFD3F, ON},
	{0xFD40, 0xFDFF, AL},
	{0xFE00, 0xFE0F, NSM},
	{0xFE20, 0xFE2F, NSM},
	{0xFE50, 0xFE50, CS},
	{0xFE51, 0xFE51, ON},
	{0xFE52, 0xFE52, CS},
	{0xFE54, 0xFE54, ON},
	{0xFE55, 0xFE55, CS},
	{0xFE56, 0xFE5E, ON},
	{0xFE5F, 0xFE5F, ET},
	{0xFE60, 0xFE61, ON},
	{0xFE62, 0xFE63, ES},
	{0xFE64, 0xFE66, ON},
	{0xFE68, 0xFE68, ON},
	{0xFE69, 0xFE6A, ET},
	{0xFE6B, 0xFE6B, ON},
	{0xFE70, 0xFEFE, AL},
	{0xFEFF, 0xFEFF, BS},
	{0xFF01, 0xFF02, ON},
	{0xFF03, 0xFF05, ET},
	{0xFF06, 0xFF0A, ON},
	{0xFF0B, 0xFF0B, ES},
	{0xFF0C, 0xFF0C, CS},
	{0xFF0D, 0xFF0D, ES},
	{0xFF0E, 0xFF0F, CS},
	{0xFF10, 0xFF19, EN},
	{0xFF1A, 0xFF1A, CS},
	{0xFF1B, 0xFF20, ON},
	{0xFF3B, 0xFF40, ON},
	{0xFF5B, 0xFF65, ON},
	{0xFFE0, 0xFFE1, ET},
	{0xFFE2, 0xFFE4, ON},
	{0xFFE5, 0xFFE6, ET},
	{0xFFE8, 0xFFEE, ON},
	{0xFFF9, 0xFFFD, ON},
}

// Classify returns the class of r.
func Classify(r rune) Class {
	i := sort.Search(len(classRanges), func(i int) bool {
		return classRanges[i].hi >= r
	})

	if i < len(classRanges) && classRanges[i].lo <= r {
		return classRanges[i].class
	}

	return L
}

// IsMark returns true for the directional marks and embedding controls
// (LRM, RLM, LRE, RLE, PDF, LRO, RLO).
func IsMark(r rune) bool {
	return r == 0x200E || r == 0x200F || (r >= 0x202A && r <= 0x202E)
}
