package arabic

// Characters with special handling.
const (
	space      = ' '
	hamza      = 0x0621
	yehHamza   = 0x0626
	lam        = 0x0644
	alefMaksur = 0x0649
	tatweel    = 0x0640

	tashkeelFirst = 0x064B
	tashkeelLast  = 0x0652

	tashkeelForms = 0xFE70
	seenTail      = 0xFE73
	hamzaForm     = 0xFE80
	lamAlefFirst  = 0xFEF5
	lamAlefLast   = 0xFEFC
)

// Link values. A character with linkRight joins the character before it in
// logical order, one with linkLeft joins the character after it.
const (
	linkNone  uint8 = 0
	linkRight uint8 = 1
	linkLeft  uint8 = 2
	linkDual  uint8 = linkRight | linkLeft
)

// Forms, as offsets from the isolated presentation form.
const (
	formIsolated uint8 = iota
	formFinal
	formInitial
	formMedial
)

// shapeTable is indexed by the link values of the next character, the last
// character and the current character.
var shapeTable = [4][4][4]uint8{
	{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 1},
		{0, 1, 0, 1},
	},
	{
		{0, 0, 2, 2},
		{0, 0, 2, 2},
		{0, 1, 2, 3},
		{0, 1, 2, 3},
	},
	{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 1},
		{0, 1, 0, 1},
	},
	{
		{0, 0, 2, 2},
		{0, 0, 2, 2},
		{0, 1, 2, 3},
		{0, 1, 2, 3},
	},
}

// letter is the first presentation form of a letter and the number of
// forms it has: 1 (isolated), 2 (isolated, final) or 4 (isolated, final,
// initial, medial).
type letter struct {
	base  rune
	forms uint8
}

var letters = map[rune]letter{
	0x0621: {0xFE80, 1},
	0x0622: {0xFE81, 2},
	0x0623: {0xFE83, 2},
	0x0624: {0xFE85, 2},
	0x0625: {0xFE87, 2},
	0x0626: {0xFE89, 4},
	0x0627: {0xFE8D, 2},
	0x0628: {0xFE8F, 4},
	0x0629: {0xFE93, 2},
	0x062A: {0xFE95, 4},
	0x062B: {0xFE99, 4},
	0x062C: {0xFE9D, 4},
	0x062D: {0xFEA1, 4},
	0x062E: {0xFEA5, 4},
	0x062F: {0xFEA9, 2},
	0x0630: {0xFEAB, 2},
	0x0631: {0xFEAD, 2},
	0x0632: {0xFEAF, 2},
	0x0633: {0xFEB1, 4},
	0x0634: {0xFEB5, 4},
	0x0635: {0xFEB9, 4},
	0x0636: {0xFEBD, 4},
	0x0637: {0xFEC1, 4},
	0x0638: {0xFEC5, 4},
	0x0639: {0xFEC9, 4},
	0x063A: {0xFECD, 4},
	0x0641: {0xFED1, 4},
	0x0642: {0xFED5, 4},
	0x0643: {0xFED9, 4},
	0x0644: {0xFEDD, 4},
	0x0645: {0xFEE1, 4},
	0x0646: {0xFEE5, 4},
	0x0647: {0xFEE9, 4},
	0x0648: {0xFEED, 2},
	0x0649: {0xFEEF, 2},
	0x064A: {0xFEF1, 4},
	0x067E: {0xFB56, 4},
	0x0686: {0xFB7A, 4},
	0x0698: {0xFB8A, 2},
	0x06A9: {0xFB8E, 4},
	0x06AF: {0xFB92, 4},
	0x06CC: {0xFBFC, 4},
}

// lamAlefs maps the Alef variants to the isolated form of their Lam-Alef
// ligature. The final form follows it.
var lamAlefs = map[rune]rune{
	0x0622: 0xFEF5,
	0x0623: 0xFEF7,
	0x0625: 0xFEF9,
	0x0627: 0xFEFB,
}

// nominals maps presentation forms back to letters.
var nominals = func() map[rune]rune {
	m := map[rune]rune{}

	for r, l := range letters {
		for f := rune(0); f < rune(l.forms); f++ {
			m[l.base+f] = r
		}
	}

	for k := rune(0); k <= tashkeelLast-tashkeelFirst; k++ {
		m[tashkeelForms+2*k] = tashkeelFirst + k
		if hasMedialTashkeel(tashkeelFirst + k) {
			m[tashkeelForms+2*k+1] = tashkeelFirst + k
		}
	}

	return m
}()

// alefFor returns the Alef variant of a Lam-Alef ligature form.
func alefFor(r rune) rune {
	for alef, base := range lamAlefs {
		if r == base || r == base+1 {
			return alef
		}
	}

	return 0
}

func isSeen(r rune) bool {
	return r >= 0x0633 && r <= 0x0636
}

func isTashkeel(r rune) bool {
	return r >= tashkeelFirst && r <= tashkeelLast
}

func isLamAlef(r rune) bool {
	return r >= lamAlefFirst && r <= lamAlefLast
}

// hasMedialTashkeel is false for Dammatan and Kasratan. The slots after
// their isolated forms hold the Seen tail and nothing.
func hasMedialTashkeel(r rune) bool {
	return r != 0x064C && r != 0x064D
}

func link(r rune) uint8 {
	if l, ok := letters[r]; ok {
		switch l.forms {
		case 4:
			return linkDual
		case 2:
			return linkRight
		}

		return linkNone
	}

	switch {
	case r == tatweel:
		return linkDual
	case isLamAlef(r):
		return linkRight
	}

	return linkNone
}
