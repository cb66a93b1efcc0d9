package decfloat

import (
	"bytes"
	"encoding/hex"
	"io"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return data
}

func mustValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}

	return v
}

func TestEncode(t *testing.T) {
	type TC struct {
		name   string
		value  string
		format Format
		data   []byte
		mark   error
	}

	tcs := []TC{
		{
			name:   "1.23",
			value:  "1.23",
			format: Decimal64,
			data:   mustHex("22300000000000a3"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1.23",
			value:  "1.23",
			format: Decimal128,
			data:   mustHex("220780000000000000000000000000a3"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "+0",
			value:  "0",
			format: Decimal64,
			data:   mustHex("2238000000000000"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "-0",
			value:  "-0",
			format: Decimal64,
			data:   mustHex("a238000000000000"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1",
			value:  "1",
			format: Decimal128,
			data:   mustHex("22080000000000000000000000000001"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "8",
			value:  "8",
			format: Decimal64,
			data:   mustHex("2238000000000008"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "-7.50",
			value:  "-7.50",
			format: Decimal64,
			data:   mustHex("a2300000000003d0"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "9E10",
			value:  "9E10",
			format: Decimal128,
			data:   mustHex("220a8000000000000000000000000009"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "max",
			value:  "9999999999999999E369",
			format: Decimal64,
			data:   mustHex("77fcff3fcff3fcff"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1E384 padded",
			value:  "1E384",
			format: Decimal64,
			data:   mustHex("47fc000000000000"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1E369 padded",
			value:  "1E369",
			format: Decimal64,
			data:   mustHex("47c0000000000000"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1E-383",
			value:  "1E-383",
			format: Decimal64,
			data:   mustHex("003c000000000001"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "34 digits",
			value:  "1234567890123456789012345678901234",
			format: Decimal128,
			data:   mustHex("2608134b9c1e28e56f3c127177823534"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "-max",
			value:  "-9999999999999999999999999999999999E6111",
			format: Decimal128,
			data:   mustHex("f7ffcff3fcff3fcff3fcff3fcff3fcff"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1E6144 padded",
			value:  "1E6144",
			format: Decimal128,
			data:   mustHex("47ffc000000000000000000000000000"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "1E-6143",
			value:  "1E-6143",
			format: Decimal128,
			data:   mustHex("00084000000000000000000000000001"),
			mark:   oops.New("unexpected"),
		},
		{
			name:   "trailing zeros trimmed",
			value:  "12345678901234560000",
			format: Decimal64,
			data:   mustHex("264934b9c1e28e56"),
			mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.format.Name+"/"+tc.name, func(t *testing.T) {
			v := mustValue(tc.value)

			data, err := Encode(v, tc.format)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.data, data, "%x %v", data, tc.mark)

			decoded, err := Decode(data, tc.format)
			require.NoError(t, err, tc.mark)
			t.Logf("decoded: %s", spew.Sdump(decoded))

			require.Equal(t, v.Negative, decoded.Negative, tc.mark)
			require.Equal(t, v.Canonical(), decoded.Canonical(), tc.mark)
		})
	}
}

func TestEncodeRange(t *testing.T) {
	type TC struct {
		value  string
		format Format
		ok     bool
	}

	tcs := []TC{
		{"1E384", Decimal64, true},
		{"1E385", Decimal64, false},
		{"9.999999999999999E384", Decimal64, true},
		{"10E384", Decimal64, false},
		{"1E-383", Decimal64, true},
		{"1E-384", Decimal64, false},
		{"100E-385", Decimal64, true},
		{"1E6144", Decimal128, true},
		{"1E6145", Decimal128, false},
		{"1E-6143", Decimal128, true},
		{"1E-6144", Decimal128, false},
		{"-1E6145", Decimal128, false},
	}

	for _, tc := range tcs {
		t.Run(tc.format.Name+"/"+tc.value, func(t *testing.T) {
			_, err := EncodeString(tc.value, tc.format)
			if tc.ok {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			require.True(t, RangeError.Has(err), "%+v", err)
		})
	}
}

func TestRounding(t *testing.T) {
	type TC struct {
		name   string
		mode   RoundingMode
		value  string
		expect string
	}

	tcs := []TC{
		{"half-even tie down", HalfEven, "12345678901234565", "1234567890123456E1"},
		{"half-even tie up", HalfEven, "12345678901234575", "1234567890123458E1"},
		{"half-even above", HalfEven, "123456789012345651", "1234567890123457E2"},
		{"half-up tie", HalfUp, "12345678901234565", "1234567890123457E1"},
		{"half-down tie", HalfDown, "12345678901234565", "1234567890123456E1"},
		{"half-down above", HalfDown, "123456789012345651", "1234567890123457E2"},
		{"up", Up, "12345678901234561", "1234567890123457E1"},
		{"down", Down, "12345678901234569", "1234567890123456E1"},
		{"ceiling positive", Ceiling, "12345678901234561", "1234567890123457E1"},
		{"ceiling negative", Ceiling, "-12345678901234561", "-1234567890123456E1"},
		{"floor positive", Floor, "12345678901234561", "1234567890123456E1"},
		{"floor negative", Floor, "-12345678901234561", "-1234567890123457E1"},
		{"carry", HalfEven, "99999999999999995", "1000000000000000E2"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			schema := NewSchema(Decimal64)
			schema.Rounding = tc.mode

			data, err := schema.Encode(mustValue(tc.value))
			require.NoError(t, err)

			v, err := schema.Decode(data)
			require.NoError(t, err)
			require.Equal(t, tc.expect, v.String())
		})
	}
}

func TestParseRoundingMode(t *testing.T) {
	for m := HalfEven; m <= Floor; m++ {
		parsed, err := ParseRoundingMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	_, err := ParseRoundingMode("sideways")
	require.True(t, Error.Has(err))
}

func TestTruncate(t *testing.T) {
	precision, dropped := Truncate(mustValue("12345678901234560000"), 16)
	require.Equal(t, 16, precision)
	require.Equal(t, 4, dropped)

	precision, dropped = Truncate(mustValue("123456789012345670"), 16)
	require.Equal(t, 16, precision)
	require.Equal(t, 2, dropped)

	precision, dropped = Truncate(mustValue("1.000"), 16)
	require.Equal(t, 4, precision)
	require.Equal(t, 0, dropped)
}

func TestPrecisionFunc(t *testing.T) {
	schema := NewSchema(Decimal64)
	schema.Precision = func(v Value, max int) (int, int) {
		return 1, len(v.Digits) - 1
	}

	data, err := schema.Encode(mustValue("1.5"))
	require.NoError(t, err)

	v, err := schema.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "2", v.String())

	schema.Precision = func(v Value, max int) (int, int) {
		return 0, 0
	}

	_, err = schema.Encode(mustValue("1.5"))
	require.True(t, Error.Has(err))
}

func TestSpecial(t *testing.T) {
	type TC struct {
		special Special
		format  Format
		data    []byte
		mark    error
	}

	tcs := []TC{
		{
			special: Special{Kind: NaN},
			format:  Decimal64,
			data:    mustHex("7c38000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: SignalingNaN},
			format:  Decimal64,
			data:    mustHex("7e38000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: NaN, Negative: true},
			format:  Decimal64,
			data:    mustHex("fc38000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: Infinity},
			format:  Decimal64,
			data:    mustHex("7a38000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: Infinity, Negative: true},
			format:  Decimal64,
			data:    mustHex("fa38000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: NaN},
			format:  Decimal128,
			data:    mustHex("7c080000000000000000000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: SignalingNaN, Negative: true},
			format:  Decimal128,
			data:    mustHex("fe080000000000000000000000000001"),
			mark:    oops.New("unexpected"),
		},
		{
			special: Special{Kind: Infinity},
			format:  Decimal128,
			data:    mustHex("7a080000000000000000000000000001"),
			mark:    oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.format.Name+"/"+tc.special.String(), func(t *testing.T) {
			data, err := EncodeSpecial(tc.special, tc.format)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.data, data, "%x %v", data, tc.mark)

			s, ok := Classify(data, tc.format)
			require.True(t, ok, tc.mark)
			require.Equal(t, tc.special, s, tc.mark)

			_, err = Decode(data, tc.format)
			require.Error(t, err, tc.mark)
			require.True(t, SpecialValueError.Has(err), tc.mark)
			require.Contains(t, err.Error(), tc.special.String(), tc.mark)

			str, err := EncodeString(tc.special.String(), tc.format)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.data, str, tc.mark)
		})
	}
}

func TestNaNSignalBit(t *testing.T) {
	for _, f := range []Format{Decimal64, Decimal128} {
		quiet, err := EncodeSpecial(Special{Kind: NaN}, f)
		require.NoError(t, err)

		signaling, err := EncodeSpecial(Special{Kind: SignalingNaN}, f)
		require.NoError(t, err)

		require.Equal(t, quiet[1:], signaling[1:])
		require.Equal(t, SignalBit, quiet[0]^signaling[0])
		require.Equal(t, NotANum.Prefix, (quiet[0]>>2)&0b_11111)
	}
}

func TestParseSpecial(t *testing.T) {
	type TC struct {
		in string
		s  Special
		ok bool
	}

	tcs := []TC{
		{"NaN", Special{Kind: NaN}, true},
		{"-nan", Special{Kind: NaN, Negative: true}, true},
		{"SNaN", Special{Kind: SignalingNaN}, true},
		{"-SNaN", Special{Kind: SignalingNaN, Negative: true}, true},
		{"Infinity", Special{Kind: Infinity}, true},
		{"+Infinity", Special{Kind: Infinity}, true},
		{"-Infinity", Special{Kind: Infinity, Negative: true}, true},
		{"Inf", Special{Kind: Infinity}, true},
		{"-INF", Special{Kind: Infinity, Negative: true}, true},
		{"1.5", Special{}, false},
		{"infinite", Special{}, false},
	}

	for _, tc := range tcs {
		s, ok := ParseSpecial(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.s, s, tc.in)
	}
}

func TestSignedZero(t *testing.T) {
	for _, f := range []Format{Decimal64, Decimal128} {
		pos, err := EncodeString("0", f)
		require.NoError(t, err)

		neg, err := EncodeString("-0", f)
		require.NoError(t, err)

		require.Equal(t, byte(0x80), pos[0]^neg[0])
		require.Equal(t, pos[1:], neg[1:])

		v, err := Decode(neg, f)
		require.NoError(t, err)
		require.True(t, v.Negative)
		require.True(t, v.IsZero())
		require.Equal(t, "-0", v.String())
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, f := range []Format{Decimal64, Decimal128} {
		for n := 0; n < 1000; n++ {
			digits := make([]byte, 1+rng.Intn(f.Digits))
			for i := range digits {
				digits[i] = byte(rng.Intn(10))
			}

			v := Value{
				Negative: rng.Intn(2) == 1,
				Digits:   digits,
			}.normalize()

			low := -int(f.MaxAdjusted-1) - len(v.Digits) + 1
			v.Exponent = int32(low + rng.Intn(int(f.PadThreshold)-low+1))

			data, err := Encode(v, f)
			require.NoError(t, err, spew.Sdump(v))
			require.Len(t, data, f.Size)

			decoded, err := Decode(data, f)
			require.NoError(t, err, spew.Sdump(v))
			require.Equal(t, v, decoded, "%x", data)
		}
	}
}

func TestEncodeAny(t *testing.T) {
	type TC struct {
		name  string
		value interface{}
		data  []byte
	}

	tcs := []TC{
		{"Value", mustValue("1.23"), mustHex("22300000000000a3")},
		{"*Value", func() *Value { v := mustValue("1.23"); return &v }(), mustHex("22300000000000a3")},
		{"decimal", decimal.RequireFromString("1.23"), mustHex("22300000000000a3")},
		{"string", "1.23", mustHex("22300000000000a3")},
		{"special", Special{Kind: Infinity}, mustHex("7a38000000000001")},
		{"int", 8, mustHex("2238000000000008")},
		{"int8", int8(8), mustHex("2238000000000008")},
		{"int16", int16(8), mustHex("2238000000000008")},
		{"int32", int32(8), mustHex("2238000000000008")},
		{"int64", int64(8), mustHex("2238000000000008")},
		{"uint", uint(8), mustHex("2238000000000008")},
		{"uint8", uint8(8), mustHex("2238000000000008")},
		{"uint16", uint16(8), mustHex("2238000000000008")},
		{"uint32", uint32(8), mustHex("2238000000000008")},
		{"uint64", uint64(8), mustHex("2238000000000008")},
		{"*big.Int", big.NewInt(8), mustHex("2238000000000008")},
		{"float", 1.23, mustHex("22300000000000a3")},
		{"float32", float32(1.5), mustHex("2234000000000015")},
		{"float32 NaN", float32(math.NaN()), mustHex("7c38000000000001")},
		{"-0.0 float", func() float64 { z := 0.0; return -z }(), mustHex("a238000000000000")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeAny(tc.value, Decimal64)
			require.NoError(t, err)
			require.Equal(t, tc.data, data, "%x", data)
		})
	}

	_, err := EncodeAny(struct{}{}, Decimal64)
	require.True(t, TypeMismatchError.Has(err))

	for _, x := range []interface{}{
		(*Value)(nil),
		(*decimal.Decimal)(nil),
		(*big.Int)(nil),
	} {
		require.NotPanics(t, func() {
			_, err = EncodeAny(x, Decimal64)
		})
		require.True(t, TypeMismatchError.Has(err), "%T", x)
	}

	_, err = EncodeAny("one", Decimal64)
	require.True(t, TypeMismatchError.Has(err))

	_, err = EncodeString("--1", Decimal64)
	require.True(t, TypeMismatchError.Has(err))
}

func TestDecodeDecimal(t *testing.T) {
	d, err := DecodeDecimal(mustHex("22300000000000a3"), Decimal64)
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.RequireFromString("1.23")), d.String())

	_, err = DecodeDecimal(mustHex("2230"), Decimal64)
	require.True(t, Error.Has(err))
}

func TestValue(t *testing.T) {
	v := mustValue("-0012.3400")
	require.Equal(t, "-123400E-4", v.String())
	require.Equal(t, "-1234E-2", v.Canonical().String())
	require.True(t, v.Decimal().Equal(decimal.RequireFromString("-12.34")))

	v = FromDecimal(decimal.New(-5, 3))
	require.Equal(t, Value{Negative: true, Digits: []byte{5}, Exponent: 3}, v)
}

func TestCombinationMatchIsTotal(t *testing.T) {
	for b := byte(0); b < 32; b++ {
		var matches int

		for _, c := range Combined {
			if c.Match(b) {
				matches++
			}
		}

		require.Equal(t, 1, matches, "%05b", b)
	}

	for top := byte(0); top < 3; top++ {
		for msd := byte(0); msd < 10; msd++ {
			gotTop, gotMSD := split(combine(top, msd))
			require.Equal(t, [2]byte{top, msd}, [2]byte{gotTop, gotMSD})
		}
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer

	schema := NewSchema(Decimal128)
	enc := NewEncoder(schema, &buf)

	values := []Value{
		mustValue("1.23"),
		mustValue("-0"),
		mustValue("1234567890123456789012345678901234"),
	}

	for _, v := range values {
		require.NoError(t, enc.Encode(v))
	}

	require.NoError(t, enc.EncodeSpecial(Special{Kind: SignalingNaN}))
	require.Equal(t, 4*Decimal128.Size, buf.Len())

	dec := NewDecoder(schema, &buf)

	for _, v := range values {
		got, raw, err := dec.Next()
		require.NoError(t, err)
		require.Len(t, raw, Decimal128.Size)
		require.Equal(t, v.normalize(), got)
	}

	_, raw, err := dec.Next()
	require.True(t, SpecialValueError.Has(err))

	s, ok := Classify(raw, Decimal128)
	require.True(t, ok)
	require.Equal(t, SignalingNaN, s.Kind)

	_, _, err = dec.Next()
	require.Equal(t, io.EOF, err)
}

func TestStreamShortRead(t *testing.T) {
	dec := NewDecoder(NewSchema(Decimal64), bytes.NewReader([]byte{0x22, 0x30}))

	_, _, err := dec.Next()
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestEncoderEncodeString(t *testing.T) {
	var buf bytes.Buffer

	enc := NewEncoder(NewSchema(Decimal64), &buf)
	require.NoError(t, enc.EncodeString("1.23"))
	require.NoError(t, enc.EncodeString("-inf"))
	require.Equal(t, mustHex("22300000000000a3fa38000000000001"), buf.Bytes())

	err := enc.EncodeString("1.2.3")
	require.Error(t, err)
	require.Equal(t, 2*Decimal64.Size, buf.Len())
}

func BenchmarkEncode(b *testing.B) {
	v := mustValue("1234567890123456789012345678901234")

	for n := 0; n < b.N; n++ {
		_, err := Encode(v, Decimal128)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := mustHex("2608134b9c1e28e56f3c127177823534")

	for n := 0; n < b.N; n++ {
		_, err := Decode(data, Decimal128)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
