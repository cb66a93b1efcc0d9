package bidi

// Text is a buffer descriptor. The characters are Data[Offset:Offset+Count].
type Text struct {
	Data   []rune
	Offset int
	Count  int
	Flags  Flags
}

// NewText returns a text holding s.
func NewText(s string, flags Flags) *Text {
	data := []rune(s)

	return &Text{
		Data:  data,
		Count: len(data),
		Flags: flags,
	}
}

// NewBuffer returns an empty text with room for n characters.
func NewBuffer(n int, flags Flags) *Text {
	return &Text{
		Data:  make([]rune, n),
		Flags: flags,
	}
}

// Runes returns the characters of the text.
func (t *Text) Runes() []rune {
	return t.Data[t.Offset : t.Offset+t.Count]
}

func (t *Text) String() string {
	return string(t.Runes())
}

func (t *Text) check(name string, count int) error {
	if t == nil {
		return Error.New("%s: nil text", name)
	}

	if t.Offset < 0 || count < 0 || t.Offset+count > len(t.Data) {
		return Error.New("%s: range [%d:%d] outside buffer of %d", name, t.Offset, t.Offset+count, len(t.Data))
	}

	return nil
}
