package decfloat

import (
	"encoding/binary"

	"github.com/zeebo/errs"
)

// Error classes.
var (
	Error             = errs.Class("decfloat")
	RangeError        = errs.Class("decfloat range")
	TypeMismatchError = errs.Class("decfloat type mismatch")
	SpecialValueError = errs.Class("decfloat special value")
)

// SignalBit is set in the first byte of a signaling NaN.
const SignalBit byte = 0b_0000_0010

// Format describes one of the decimal interchange formats.
type Format struct {
	Name string

	// Digits is the coefficient precision and Size the encoded length in
	// bytes.
	Digits int
	Size   int

	// Bias is added to the exponent before it is stored. Continuation is
	// the number of exponent bits outside the combination field.
	Bias         int32
	Continuation uint

	// MaxAdjusted bounds the exponent of the most significant digit:
	// -(MaxAdjusted-1) <= exponent+precision-1 <= MaxAdjusted.
	MaxAdjusted int32

	// PadThreshold is the exponent above which short coefficients are
	// padded with trailing zeros.
	PadThreshold int32
}

// Formats.
var (
	Decimal64 = Format{
		Name:         "DECFLOAT16",
		Digits:       16,
		Size:         8,
		Bias:         398,
		Continuation: 8,
		MaxAdjusted:  384,
		PadThreshold: 368,
	}
	Decimal128 = Format{
		Name:         "DECFLOAT34",
		Digits:       34,
		Size:         16,
		Bias:         6176,
		Continuation: 12,
		MaxAdjusted:  6144,
		PadThreshold: 6110,
	}
)

// FormatFor returns the format with the given precision (16 or 34).
func FormatFor(digits int) (Format, error) {
	switch digits {
	case Decimal64.Digits:
		return Decimal64, nil
	case Decimal128.Digits:
		return Decimal128, nil
	}

	return Format{}, Error.New("unsupported precision: %d", digits)
}

// Declets returns the number of declets in the coefficient continuation.
func (f Format) Declets() int {
	return (f.Digits - 1) / 3
}

func (f Format) String() string {
	return f.Name
}

// word holds up to 128 bits. DECFLOAT16 only uses lo.
type word struct {
	hi, lo uint64
}

// put ors v in at bit offset off (0 is the least significant bit). A value
// crossing bit 64 is split between the two halves.
func (w *word) put(v uint64, off uint) {
	if off >= 64 {
		w.hi |= v << (off - 64)

		return
	}

	w.lo |= v << off
	if off > 0 {
		w.hi |= v >> (64 - off)
	}
}

// get returns n bits starting at bit offset off.
func (w word) get(off, n uint) uint64 {
	mask := uint64(1)<<n - 1

	if off >= 64 {
		return (w.hi >> (off - 64)) & mask
	}

	v := w.lo >> off
	if off > 0 {
		v |= w.hi << (64 - off)
	}

	return v & mask
}

// fields is the raw content of an encoded number.
type fields struct {
	negative     bool
	combination  byte
	continuation uint64
	declets      []uint16
}

func (f Format) offsets() (sign, comb, cont uint) {
	sign = uint(8*f.Size) - 1
	comb = sign - 5
	cont = comb - f.Continuation

	return sign, comb, cont
}

func (f Format) pack(fs fields) []byte {
	signOff, combOff, contOff := f.offsets()

	var w word

	if fs.negative {
		w.put(1, signOff)
	}
	w.put(uint64(fs.combination), combOff)
	w.put(fs.continuation, contOff)

	for k, d := range fs.declets {
		w.put(uint64(d), uint(10*(len(fs.declets)-1-k)))
	}

	data := make([]byte, f.Size)

	switch f.Size {
	case 8:
		binary.BigEndian.PutUint64(data, w.lo)
	case 16:
		binary.BigEndian.PutUint64(data[:8], w.hi)
		binary.BigEndian.PutUint64(data[8:], w.lo)
	default:
		panic(Error.New("invalid format size: %d", f.Size))
	}

	return data
}

func (f Format) unpack(data []byte) (fs fields, err error) {
	if len(data) != f.Size {
		return fs, Error.New("invalid %s length: %d", f.Name, len(data))
	}

	var w word

	switch f.Size {
	case 8:
		w.lo = binary.BigEndian.Uint64(data)
	case 16:
		w.hi = binary.BigEndian.Uint64(data[:8])
		w.lo = binary.BigEndian.Uint64(data[8:])
	default:
		return fs, Error.New("invalid format size: %d", f.Size)
	}

	signOff, combOff, contOff := f.offsets()

	fs.negative = w.get(signOff, 1) == 1
	fs.combination = byte(w.get(combOff, 5))
	fs.continuation = w.get(contOff, f.Continuation)

	fs.declets = make([]uint16, f.Declets())
	for k := range fs.declets {
		fs.declets[k] = uint16(w.get(uint(10*(len(fs.declets)-1-k)), 10))
	}

	return fs, nil
}
