package arabic

import (
	"github.com/calebcase/hostdata/bidi"
)

// Shape converts buf between nominal letters and presentation forms. Text
// going from visual to implicit order is deshaped, text going to visual
// order is shaped and anything else is returned unchanged. Contextual
// orientations are resolved against buf the way the bidi engine resolves
// them. The result may
// differ in length from buf when a resize option applies. buf is not
// modified.
func Shape(in, out bidi.Flags, buf []rune, opts Options) []rune {
	switch {
	case in.Type == bidi.Visual && out.Type == bidi.Implicit:
		return Deshape(buf, in.RTL(buf), opts)
	case out.Type == bidi.Visual:
		return ShapeVisual(buf, out.RTL(buf), opts)
	}

	return append([]rune(nil), buf...)
}

func reversed(buf []rune) []rune {
	r := make([]rune, len(buf))
	for i, c := range buf {
		r[len(buf)-1-i] = c
	}

	return r
}

// logical returns buf in logical order. Visual right to left buffers are
// already in logical order.
func logical(buf []rune, rtl bool) []rune {
	if rtl {
		return append([]rune(nil), buf...)
	}

	return reversed(buf)
}

// visual is the inverse of logical, padding the visual beginning and end
// with spaces.
func visual(buf []rune, rtl bool, begin, end int) []rune {
	if !rtl {
		buf = reversed(buf)
	}

	out := make([]rune, 0, begin+len(buf)+end)
	for i := 0; i < begin; i++ {
		out = append(out, space)
	}

	out = append(out, buf...)
	for i := 0; i < end; i++ {
		out = append(out, space)
	}

	return out
}

func at(buf []rune, i int) rune {
	if i < 0 || i >= len(buf) {
		panic(Error.New("index %d outside buffer of %d", i, len(buf)))
	}

	return buf[i]
}

// ShapeVisual replaces the nominal Arabic letters of a visual buffer with
// their contextual presentation forms. rtl is the orientation of the
// buffer.
func ShapeVisual(buf []rune, rtl bool, opts Options) []rune {
	text := logical(buf, rtl)

	var begin, end int

	free := func(lamAlef bool) {
		switch {
		case lamAlef && opts.LamAlef == LamAlefAtBegin:
			begin++
		case lamAlef && opts.LamAlef == LamAlefAtEnd:
			end++
		case !lamAlef && opts.Tashkeel == TashkeelAtBegin:
			begin++
		case !lamAlef && opts.Tashkeel == TashkeelAtEnd:
			end++
		}
	}

	// Merge Lam and a following Alef into the isolated ligature.
	merged := make([]rune, 0, len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]

		if c == lam && i+1 < len(text) {
			if lig, ok := lamAlefs[at(text, i+1)]; ok {
				merged = append(merged, lig)
				i++

				switch opts.LamAlef {
				case LamAlefNear, LamAlefAuto:
					merged = append(merged, space)
				default:
					free(true)
				}

				continue
			}
		}

		merged = append(merged, c)
	}

	text = merged
	out := make([]rune, 0, len(text))

	// Form of the last character that was not a mark.
	last := formIsolated

	for i := 0; i < len(text); i++ {
		c := text[i]

		if isTashkeel(c) {
			joined := last&formInitial != 0

			switch opts.Tashkeel {
			case TashkeelKeep:
				r := tashkeelForms + 2*(c-tashkeelFirst)
				if joined && hasMedialTashkeel(c) {
					r++
				}

				out = append(out, r)
			case TashkeelTatweel:
				if joined {
					out = append(out, tatweel)
				} else {
					out = append(out, space)
				}
			default:
				free(false)
			}

			continue
		}

		form := shapeTable[nextLink(text, i)][lastLink(text, i)][link(c)]
		last = form

		switch {
		case isLamAlef(c):
			out = append(out, c+rune(form&formFinal))
		case c == yehHamza && opts.YehHamza == YehHamzaTwoCell && form&formInitial == 0 && followedBySpace(text, i):
			out = append(out, letters[alefMaksur].base+rune(form), hamzaForm)
			i++
		case isSeen(c) && opts.Seen == SeenTwoCell && form&formInitial == 0 && followedBySpace(text, i):
			out = append(out, letters[c].base+rune(form), seenTail)
			i++
		default:
			if l, ok := letters[c]; ok {
				out = append(out, l.base+rune(form)%rune(l.forms))
			} else {
				out = append(out, c)
			}
		}
	}

	return visual(out, rtl, begin, end)
}

func followedBySpace(text []rune, i int) bool {
	return i+1 < len(text) && at(text, i+1) == space
}

// lastLink returns the link value of the nearest character before i that
// is not a mark.
func lastLink(text []rune, i int) uint8 {
	for j := i - 1; j >= 0; j-- {
		if !isTashkeel(text[j]) {
			return link(text[j])
		}
	}

	return linkNone
}

// nextLink returns the link value of the nearest character after i that is
// not a mark.
func nextLink(text []rune, i int) uint8 {
	for j := i + 1; j < len(text); j++ {
		if !isTashkeel(text[j]) {
			return link(text[j])
		}
	}

	return linkNone
}
