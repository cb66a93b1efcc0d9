package bidi

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	type TC struct {
		in    string
		flags Flags
		mark  error
	}

	tcs := []TC{
		{
			in:    "",
			flags: Flags{},
			mark:  oops.New("unexpected"),
		},
		{
			in:    "visual:rtl:swap",
			flags: Flags{Type: Visual, Orientation: RTL, Swap: true},
			mark:  oops.New("unexpected"),
		},
		{
			in:    "implicit:contextual-rtl:national",
			flags: Flags{Orientation: ContextualRTL, Numerals: NumeralsNational},
			mark:  oops.New("unexpected"),
		},
		{
			in:    " Visual : CLTR : contextual : noshape ",
			flags: Flags{Type: Visual, Orientation: ContextualLTR, Numerals: NumeralsContextual, Shaping: ShapingNone},
			mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			f, err := ParseFlags(tc.in)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.flags, f, tc.mark)

			again, err := ParseFlags(f.String())
			require.NoError(t, err, tc.mark)
			require.Equal(t, f, again, tc.mark)
		})
	}

	_, err := ParseFlags("visual:sideways")
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestOrientationRTL(t *testing.T) {
	type TC struct {
		o    Orientation
		text string
		rtl  bool
	}

	tcs := []TC{
		{o: LTR, text: "\u05d0", rtl: false},
		{o: RTL, text: "abc", rtl: true},
		{o: ContextualLTR, text: "12 \u05d0bc", rtl: true},
		{o: ContextualLTR, text: "12 \u0628a", rtl: true},
		{o: ContextualRTL, text: "- abc \u05d0", rtl: false},
		{o: ContextualLTR, text: "123", rtl: false},
		{o: ContextualRTL, text: "", rtl: true},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.rtl, tc.o.RTL([]rune(tc.text)), "%v %q", tc.o, tc.text)
		require.Equal(t, tc.rtl, Flags{Orientation: tc.o}.RTL([]rune(tc.text)), "%v %q", tc.o, tc.text)
	}
}
