package bidi

import (
	"testing"

	"github.com/stretchr/testify/require"
	xbidi "golang.org/x/text/unicode/bidi"
)

func TestClassRangesSorted(t *testing.T) {
	prev := rune(-1)

	for _, cr := range classRanges {
		require.LessOrEqual(t, cr.lo, cr.hi, "%04X-%04X", cr.lo, cr.hi)
		require.Greater(t, cr.lo, prev, "%04X-%04X", cr.lo, cr.hi)

		prev = cr.hi
	}
}

func TestClassify(t *testing.T) {
	type TC struct {
		r     rune
		class Class
	}

	tcs := []TC{
		{'a', L},
		{'Z', L},
		{0x00E9, L},
		{0x05D0, R},
		{0x0627, AL},
		{0xFEFB, AL},
		{'0', EN},
		{'9', EN},
		{0x06F5, EN},
		{0x0661, AN},
		{'$', ET},
		{'%', ET},
		{'+', ES},
		{'-', ES},
		{',', CS},
		{'.', CS},
		{':', CS},
		{' ', WS},
		{'\t', S},
		{'\n', B},
		{0x2029, B},
		{'(', ON},
		{'!', ON},
		{0x0301, NSM},
		{0x064B, NSM},
		{0x200E, L},
		{0x200F, R},
		{0x202B, BS},
		{0xFEFF, BS},
		{0x4E2D, L},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.class, Classify(tc.r), "%04X", tc.r)
	}
}

func TestClassifyMatchesUnicode(t *testing.T) {
	classes := map[xbidi.Class]Class{
		xbidi.L:   L,
		xbidi.R:   R,
		xbidi.AL:  AL,
		xbidi.EN:  EN,
		xbidi.AN:  AN,
		xbidi.ES:  ES,
		xbidi.ET:  ET,
		xbidi.CS:  CS,
		xbidi.NSM: NSM,
		xbidi.B:   B,
		xbidi.S:   S,
		xbidi.WS:  WS,
		xbidi.ON:  ON,
	}

	for _, r := range []rune{
		'a', 'Z', 0x00E9,
		0x05D0, 0x05EA,
		0x0627, 0x0645, 0xFEFB,
		'0', '9', 0x06F0,
		0x0660, 0x0669,
		0x064B,
		'+', '$', ',',
		'\n', 0x2029, '\t', ' ',
		'!', '(',
	} {
		p, _ := xbidi.LookupRune(r)

		expect, ok := classes[p.Class()]
		require.True(t, ok, "%04X: %v", r, p.Class())
		require.Equal(t, expect, Classify(r), "%04X", r)
	}
}

func TestIsMark(t *testing.T) {
	for _, r := range []rune{0x200E, 0x200F, 0x202A, 0x202B, 0x202C, 0x202D, 0x202E} {
		require.True(t, IsMark(r), "%04X", r)
	}

	for _, r := range []rune{'a', 0x200D, 0x2029, 0x202F, 0xFEFF} {
		require.False(t, IsMark(r), "%04X", r)
	}
}

func TestMirror(t *testing.T) {
	require.Equal(t, ')', Mirror('('))
	require.Equal(t, '(', Mirror(')'))
	require.Equal(t, ']', Mirror('['))
	require.Equal(t, '>', Mirror('<'))
	require.Equal(t, rune(0x00BB), Mirror(0x00AB))
	require.Equal(t, rune(0x3009), Mirror(0x3008))
	require.Equal(t, 'a', Mirror('a'))

	for _, p := range mirrorPairs {
		require.Equal(t, p.r, Mirror(Mirror(p.r)), "%04X", p.r)
	}
}

func TestShapeDigit(t *testing.T) {
	require.Equal(t, '5', shapeDigit(0x0665, NumeralsNominal, false))
	require.Equal(t, '5', shapeDigit(0x06F5, NumeralsNominal, false))
	require.Equal(t, rune(0x0665), shapeDigit('5', NumeralsNational, false))
	require.Equal(t, rune(0x0665), shapeDigit('5', NumeralsContextual, true))
	require.Equal(t, '5', shapeDigit('5', NumeralsContextual, false))
	require.Equal(t, '5', shapeDigit('5', NumeralsAny, true))
	require.Equal(t, 'x', shapeDigit('x', NumeralsNational, true))
}
