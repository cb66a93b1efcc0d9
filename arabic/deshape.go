package arabic

// Deshape replaces presentation forms in a visual buffer with nominal
// letters. rtl is the orientation of the buffer. The result is in the same
// visual order as buf; it is longer than buf only when a Lam-Alef ligature
// had to grow the buffer.
func Deshape(buf []rune, rtl bool, opts Options) []rune {
	text := logical(buf, rtl)
	n := len(text)

	// Yeh-Hamza stored as Alef Maksura and Hamza.
	if opts.YehHamza == YehHamzaTwoCell {
		for i := 0; i+1 < n; i++ {
			c := text[i]
			if (c == letters[alefMaksur].base || c == letters[alefMaksur].base+1) && at(text, i+1) == hamzaForm {
				text[i] = yehHamza
				text[i+1] = space
			}
		}
	}

	if opts.Seen == SeenTwoCell {
		for i, c := range text {
			if c == seenTail {
				text[i] = space
			}
		}
	}

	consumed, expand := lamAlefCells(text, rtl, opts.LamAlef)

	out := make([]rune, 0, n)

	for i, c := range text {
		switch {
		case consumed[i]:
			continue
		case expand[i]:
			out = append(out, lam, alefFor(c))
		default:
			if r, ok := nominals[c]; ok {
				c = r
			}

			out = append(out, c)
		}
	}

	if rtl {
		return out
	}

	return reversed(out)
}

// lamAlefCells decides which ligatures expand to Lam and Alef and which
// spaces they consume.
func lamAlefCells(text []rune, rtl bool, mode LamAlef) (consumed, expand []bool) {
	n := len(text)
	consumed = make([]bool, n)
	expand = make([]bool, n)

	// Spaces at the visual edges, outermost first. The visual beginning of
	// a right to left buffer is its logical start.
	begin, end := edgeSpaces(text, true), edgeSpaces(text, false)
	if !rtl {
		begin, end = end, begin
	}

	take := func(pool *[]int) bool {
		for len(*pool) > 0 {
			j := (*pool)[0]
			*pool = (*pool)[1:]

			if at(text, j) == space && !consumed[j] {
				consumed[j] = true

				return true
			}
		}

		return false
	}

	near := func(i int) bool {
		if i+1 < n && at(text, i+1) == space && !consumed[i+1] {
			consumed[i+1] = true

			return true
		}

		return false
	}

	for i, c := range text {
		if !isLamAlef(c) {
			continue
		}

		switch mode {
		case LamAlefNear:
			expand[i] = near(i)
		case LamAlefAtBegin:
			expand[i] = take(&begin)
		case LamAlefAtEnd:
			expand[i] = take(&end)
		case LamAlefAuto:
			// Grows the buffer when no space is left.
			if !near(i) && !take(&end) {
				take(&begin)
			}

			expand[i] = true
		case LamAlefResize:
			expand[i] = true
		}
	}

	return consumed, expand
}

// edgeSpaces returns the indexes of the run of spaces at the logical start
// (or end) of text, outermost first.
func edgeSpaces(text []rune, start bool) []int {
	var idx []int

	if start {
		for i := 0; i < len(text) && text[i] == space; i++ {
			idx = append(idx, i)
		}

		return idx
	}

	for i := len(text) - 1; i >= 0 && text[i] == space; i-- {
		idx = append(idx, i)
	}

	return idx
}
