package arabic

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("arabic")

// LamAlef selects where the cell freed by a Lam-Alef ligature goes when
// shaping, and where the extra cell comes from when deshaping.
type LamAlef int

// Lam-Alef modes.
const (
	// LamAlefNear uses a space next to the ligature.
	LamAlefNear LamAlef = iota
	// LamAlefResize changes the length of the buffer.
	LamAlefResize
	// LamAlefAtBegin uses spaces at the visual beginning of the buffer.
	LamAlefAtBegin
	// LamAlefAtEnd uses spaces at the visual end of the buffer.
	LamAlefAtEnd
	// LamAlefAuto shapes like LamAlefNear. Deshaping tries a near space,
	// then the end, then the beginning and finally grows the buffer.
	LamAlefAuto
)

var lamAlefNames = []string{
	LamAlefNear:    "near",
	LamAlefResize:  "resize",
	LamAlefAtBegin: "begin",
	LamAlefAtEnd:   "end",
	LamAlefAuto:    "auto",
}

func (m LamAlef) String() string {
	return name(lamAlefNames, int(m))
}

// Seen selects how the tail of the Seen family is stored.
type Seen int

// Seen modes.
const (
	SeenOneCell Seen = iota
	// SeenTwoCell stores the tail of final and isolated forms in the
	// following space.
	SeenTwoCell
)

var seenNames = []string{
	SeenOneCell: "onecell",
	SeenTwoCell: "twocell",
}

func (m Seen) String() string {
	return name(seenNames, int(m))
}

// YehHamza selects how Yeh with Hamza above is stored.
type YehHamza int

// Yeh-Hamza modes.
const (
	YehHamzaOneCell YehHamza = iota
	// YehHamzaTwoCell stores final and isolated forms as Alef Maksura
	// followed by a Hamza in the following space.
	YehHamzaTwoCell
)

var yehHamzaNames = []string{
	YehHamzaOneCell: "onecell",
	YehHamzaTwoCell: "twocell",
}

func (m YehHamza) String() string {
	return name(yehHamzaNames, int(m))
}

// Tashkeel selects what happens to diacritics when shaping.
type Tashkeel int

// Tashkeel modes.
const (
	// TashkeelKeep writes the presentation forms of the marks.
	TashkeelKeep Tashkeel = iota
	// TashkeelAtBegin removes the marks and pads the visual beginning.
	TashkeelAtBegin
	// TashkeelAtEnd removes the marks and pads the visual end.
	TashkeelAtEnd
	// TashkeelResize removes the marks.
	TashkeelResize
	// TashkeelTatweel replaces marks inside a word with a Tatweel and
	// others with a space.
	TashkeelTatweel
)

var tashkeelNames = []string{
	TashkeelKeep:    "keep",
	TashkeelAtBegin: "begin",
	TashkeelAtEnd:   "end",
	TashkeelResize:  "resize",
	TashkeelTatweel: "tatweel",
}

func (m Tashkeel) String() string {
	return name(tashkeelNames, int(m))
}

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "?"
	}

	return names[i]
}

func lookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}

	return 0, false
}

// Options configure shaping and deshaping.
type Options struct {
	LamAlef  LamAlef
	Seen     Seen
	YehHamza YehHamza
	Tashkeel Tashkeel
}

func (o Options) String() string {
	return strings.Join([]string{
		"lamalef=" + o.LamAlef.String(),
		"seen=" + o.Seen.String(),
		"yehhamza=" + o.YehHamza.String(),
		"tashkeel=" + o.Tashkeel.String(),
	}, ",")
}

// ParseOptions parses comma separated key=value pairs, e.g.
// "lamalef=resize,seen=twocell". Missing keys keep their zero value.
func ParseOptions(s string) (o Options, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return o, nil
	}

	for _, kv := range strings.Split(s, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return Options{}, Error.New("invalid option: %q", kv)
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.ToLower(strings.TrimSpace(parts[1]))

		var names []string

		switch key {
		case "lamalef":
			names = lamAlefNames
		case "seen":
			names = seenNames
		case "yehhamza":
			names = yehHamzaNames
		case "tashkeel":
			names = tashkeelNames
		default:
			return Options{}, Error.New("unknown option: %q", key)
		}

		i, ok := lookup(names, value)
		if !ok {
			return Options{}, Error.New("invalid %s value: %q", key, value)
		}

		switch key {
		case "lamalef":
			o.LamAlef = LamAlef(i)
		case "seen":
			o.Seen = Seen(i)
		case "yehhamza":
			o.YehHamza = YehHamza(i)
		case "tashkeel":
			o.Tashkeel = Tashkeel(i)
		}
	}

	return o, nil
}
