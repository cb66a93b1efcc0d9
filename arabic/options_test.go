package arabic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	o, err := ParseOptions("")
	require.NoError(t, err)
	require.Equal(t, Options{}, o)

	o, err = ParseOptions("lamalef=resize, seen=twocell,yehhamza=TwoCell,tashkeel=tatweel")
	require.NoError(t, err)
	require.Equal(t, Options{
		LamAlef:  LamAlefResize,
		Seen:     SeenTwoCell,
		YehHamza: YehHamzaTwoCell,
		Tashkeel: TashkeelTatweel,
	}, o)

	again, err := ParseOptions(o.String())
	require.NoError(t, err)
	require.Equal(t, o, again)

	for _, bad := range []string{"lamalef", "lamalef=far", "color=red"} {
		_, err = ParseOptions(bad)
		require.True(t, Error.Has(err), bad)
	}
}
