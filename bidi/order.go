package bidi

// DefaultPlaceholder replaces directional marks in visual output when the
// engine has no placeholder of its own.
const DefaultPlaceholder rune = 0xFEFF

// MaxLevel is the deepest embedding level tracked while reordering.
const MaxLevel = 19

// entry is one character of the level map. The low 32 bits hold a
// position: the destination index after pass 2 and the source index after
// pass 3.
type entry uint64

const (
	entryPos        entry = 1<<32 - 1
	entryLevelShift       = 32
	entryLevel      entry = 0x1F << entryLevelShift
	entrySwap       entry = 1 << 40
	entryArabic     entry = 1 << 41
	entryMark       entry = 1 << 42
	entryProcessed  entry = 1 << 63
)

func (e entry) pos() int {
	return int(e & entryPos)
}

func (e entry) withPos(p int) entry {
	return e&^entryPos | entry(p)&entryPos
}

func (e entry) level() uint8 {
	return uint8((e & entryLevel) >> entryLevelShift)
}

func (e entry) withLevel(l uint8) entry {
	return e&^entryLevel | (entry(l)<<entryLevelShift)&entryLevel
}

// Maps relate source and destination positions of one Order call.
type Maps struct {
	SrcToDst []int
	DstToSrc []int

	// Levels holds the resolved embedding level of each source character.
	Levels []uint8

	// RTL reports whether the destination orientation resolved to right to
	// left.
	RTL bool
}

// Engine reorders text between logical and visual order.
type Engine struct {
	// Placeholder replaces directional marks when implicit text is
	// written in visual order. Zero selects DefaultPlaceholder.
	Placeholder rune
}

// Order reorders src into dst with the default engine.
func Order(src, dst *Text) (*Maps, error) {
	return Engine{}.Order(src, dst)
}

// Order writes the characters of src to dst, reordered according to the
// flags of both, and sets dst.Count. A zero length source leaves dst.Data
// untouched.
func (e Engine) Order(src, dst *Text) (*Maps, error) {
	if src == nil {
		return nil, Error.New("src: nil text")
	}

	err := src.check("src", src.Count)
	if err != nil {
		return nil, err
	}

	n := src.Count

	err = dst.check("dst", n)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		dst.Count = 0

		return &Maps{RTL: dst.Flags.RTL(nil)}, nil
	}

	placeholder := e.Placeholder
	if placeholder == 0 {
		placeholder = DefaultPlaceholder
	}

	r := newReorder(src, dst)
	r.classify()
	r.implicit()
	r.lineEnd()
	r.reverse()
	r.invert()

	return r.substitute(dst, placeholder), nil
}

// reorder is the working state of one Order call.
type reorder struct {
	src, dst Flags

	// text is the source in the order levels are resolved in: visual right
	// to left sources are reversed first.
	text     []rune
	reversed bool

	base       uint8
	contextual bool
	swap       bool
	marks      bool

	// Implicit processing.
	state   uint8
	condPos int
	etPos   int
	arabic  bool
	prev    Class
	classes []Class

	levels []entry
}

func newReorder(src, dst *Text) *reorder {
	r := &reorder{
		src:  src.Flags,
		dst:  dst.Flags,
		text: append([]rune(nil), src.Runes()...),
	}

	srcVisual := r.src.Type == Visual
	dstVisual := r.dst.Type == Visual

	r.contextual = r.src.Numerals == NumeralsContextual || r.dst.Numerals == NumeralsContextual
	r.marks = !srcVisual && dstVisual

	switch {
	case srcVisual && !dstVisual:
		r.swap = r.src.Swap
	case !srcVisual && dstVisual:
		r.swap = r.dst.Swap
	}

	if srcVisual && !dstVisual {
		if r.rtl(r.src.Orientation) {
			reverseRunes(r.text)
			r.reversed = true
		}

		r.base = r.baseLevel(r.dst.Orientation)
	} else {
		r.base = r.baseLevel(r.src.Orientation)
	}

	r.classes = make([]Class, len(r.text))
	r.levels = make([]entry, len(r.text))

	return r
}

func reverseRunes(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

// rtl resolves an orientation against the working text.
func (r *reorder) rtl(o Orientation) bool {
	return o.RTL(r.text)
}

func (r *reorder) baseLevel(o Orientation) uint8 {
	if r.rtl(o) {
		return 1
	}

	return 0
}

func (r *reorder) sosState() uint8 {
	if r.base&1 == 1 {
		return sR
	}

	return sL
}

func (r *reorder) sosClass() Class {
	if r.base&1 == 1 {
		return R
	}

	return L
}

func (r *reorder) levelL() uint8 {
	return (r.base + 1) &^ 1
}

func (r *reorder) levelR() uint8 {
	return r.base | 1
}

func (r *reorder) levelNumber() uint8 {
	return (r.base + 2) &^ 1
}

func (r *reorder) levelOf(k kind) uint8 {
	switch k {
	case kindL:
		return r.levelL()
	case kindR:
		return r.levelR()
	case kindNumber:
		return r.levelNumber()
	}

	return r.base
}

func (r *reorder) fill(from, to int, level uint8) {
	for i := from; i < to; i++ {
		r.levels[i] = r.levels[i].withLevel(level)
	}
}

// classify is the first half of pass 1. Non-spacing marks take the class of
// the character before them, Arabic letters become R and European numbers
// after Arabic letters become Arabic numbers when numerals are contextual.
func (r *reorder) classify() {
	r.prev = r.sosClass()

	for i, c := range r.text {
		cl := Classify(c)
		if cl == NSM {
			cl = r.prev
		}

		switch cl {
		case AL:
			r.arabic = true
		case L, R, B:
			r.arabic = false
		}

		r.prev = cl
		if cl == B {
			r.prev = r.sosClass()
		}

		var e entry
		if r.arabic {
			e |= entryArabic
		}

		if IsMark(c) {
			e |= entryMark
		}

		switch {
		case cl == AL:
			cl = R
		case cl == EN && r.arabic && r.contextual:
			cl = AN
		}

		r.classes[i] = cl
		r.levels[i] = e
	}
}

// implicit is the second half of pass 1: it runs the implicit level table
// over the classes and resolves pending runs as the table directs.
func (r *reorder) implicit() {
	r.state = r.sosState()

	for i, cl := range r.classes {
		c := implicitTable[r.state][cl]

		next, action := c.next(), c.action()
		if next == sos {
			next = r.sosState()
		}

		if action != actNone {
			r.act(action, next, i)
		}

		cur, ni := states[r.state], states[next]

		if ni.kind == kindPending && cur.kind != kindPending {
			r.condPos = i
		}

		if ni.etPending && !cur.etPending {
			r.etPos = i
		}

		switch {
		case cl == B:
			r.levels[i] = r.levels[i].withLevel(r.base)
		case ni.kind != kindPending:
			r.levels[i] = r.levels[i].withLevel(r.levelOf(ni.kind))
		}

		r.state = next
	}

	if states[r.state].kind == kindPending {
		r.fill(r.condPos, len(r.classes), r.base)
	}
}

// act resolves the pending run [condPos, i).
func (r *reorder) act(action, next uint8, i int) {
	switch action {
	case actL:
		r.fill(r.condPos, i, r.levelL())
	case actR:
		r.fill(r.condPos, i, r.levelR())
	case actBase:
		r.fill(r.condPos, i, r.base)
	case actNumber:
		r.fill(r.condPos, i, r.levelNumber())
	case actSplit:
		behind, ahead := states[r.state].dir, states[next].dir

		neutral := r.base

		switch {
		case behind == L && ahead == L:
			neutral = r.levelL()
		case behind == R && ahead == R:
			neutral = r.levelR()
		}

		r.fill(r.condPos, r.etPos, neutral)
		r.fill(r.etPos, i, r.levelOf(states[next].kind))
	default:
		panic(Error.New("invalid action %d in state %s", action, states[r.state].name))
	}
}

// lineEnd resets separators, and whitespace before them or at the end of
// the line, to the base level. It also marks mirrored characters at odd
// levels for swapping.
func (r *reorder) lineEnd() {
	trailing := true

	for i := len(r.classes) - 1; i >= 0; i-- {
		switch cl := r.classes[i]; {
		case cl == S || cl == B:
			r.levels[i] = r.levels[i].withLevel(r.base)
			trailing = true
		case trailing && (cl == WS || cl == BS):
			r.levels[i] = r.levels[i].withLevel(r.base)
		default:
			trailing = false
		}

		if r.swap && r.levels[i].level()&1 == 1 {
			r.levels[i] |= entrySwap
		}
	}
}

// reverse is pass 2. Each character's destination is found by reversing
// it within its run at every level from its own down to 1, then across the
// whole line when the destination is right to left.
func (r *reorder) reverse() {
	n := len(r.levels)

	srcVisual := r.src.Type == Visual
	dstVisual := r.dst.Type == Visual

	switch {
	case !srcVisual && !dstVisual:
		for i := range r.levels {
			r.levels[i] = r.levels[i].withPos(i)
		}

		return
	case srcVisual && dstVisual:
		flip := r.rtl(r.src.Orientation) != r.rtl(r.dst.Orientation)

		for i := range r.levels {
			p := i
			if flip {
				p = n - 1 - i
			}

			r.levels[i] = r.levels[i].withPos(p)
		}

		return
	}

	var lolim, hilim [MaxLevel + 1]int

	for i := 0; i < n; i++ {
		lv := r.levels[i].level()
		if lv > MaxLevel {
			panic(Error.New("level %d exceeds %d", lv, MaxLevel))
		}

		for k := uint8(1); k <= lv; k++ {
			if i == 0 || r.levels[i-1].level() < k {
				lolim[k] = i
				hilim[k] = i

				for hilim[k]+1 < n && r.levels[hilim[k]+1].level() >= k {
					hilim[k]++
				}
			}
		}

		p := i
		for k := lv; k >= 1; k-- {
			p = lolim[k] + hilim[k] - p
		}

		r.levels[i] = r.levels[i].withPos(p)
	}

	if dstVisual && r.rtl(r.dst.Orientation) {
		for i := range r.levels {
			r.levels[i] = r.levels[i].withPos(n - 1 - r.levels[i].pos())
		}
	}
}

// invert is pass 3. It moves every entry to its destination slot and
// replaces its position with the source index, following each cycle of
// the permutation once.
func (r *reorder) invert() {
	for i := range r.levels {
		if r.levels[i]&entryProcessed != 0 {
			continue
		}

		cur, e := i, r.levels[i]

		for {
			next := e.pos()
			if next < 0 || next >= len(r.levels) {
				panic(Error.New("position %d outside %d characters", next, len(r.levels)))
			}

			saved := r.levels[next]
			r.levels[next] = e.withPos(cur) | entryProcessed

			if next == i {
				break
			}

			cur, e = next, saved
		}
	}

	for i := range r.levels {
		r.levels[i] &^= entryProcessed
	}
}

func (r *reorder) srcIndex(w int) int {
	if r.reversed {
		return len(r.text) - 1 - w
	}

	return w
}

// substitute is pass 4. It writes the destination characters, replacing
// marks, swapping mirrored characters and shaping digits.
func (r *reorder) substitute(dst *Text, placeholder rune) *Maps {
	n := len(r.levels)

	maps := &Maps{
		SrcToDst: make([]int, n),
		DstToSrc: make([]int, n),
		Levels:   make([]uint8, n),
		RTL:      r.rtl(r.dst.Orientation),
	}

	for j, e := range r.levels {
		w := e.pos()
		c := r.text[w]

		switch {
		case r.marks && e&entryMark != 0:
			c = placeholder
		case e&entrySwap != 0:
			c = Mirror(c)
		}

		dst.Data[dst.Offset+j] = shapeDigit(c, r.dst.Numerals, e&entryArabic != 0)

		s := r.srcIndex(w)
		maps.DstToSrc[j] = s
		maps.SrcToDst[s] = j
		maps.Levels[s] = e.level()
	}

	dst.Count = n

	return maps
}
