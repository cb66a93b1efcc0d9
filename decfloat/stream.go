package decfloat

import (
	"errors"
	"io"
)

// Encoder writes fixed size encoded values to a stream.
type Encoder struct {
	schema Schema
	w      io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes the encoding of v.
func (e *Encoder) Encode(v Value) error {
	data, err := e.schema.Encode(v)
	if err != nil {
		return err
	}

	return e.write(data)
}

// EncodeSpecial writes the encoding of a special value.
func (e *Encoder) EncodeSpecial(s Special) error {
	data, err := e.schema.EncodeSpecial(s)
	if err != nil {
		return err
	}

	return e.write(data)
}

// EncodeString writes the encoding of decimal or special value text.
func (e *Encoder) EncodeString(str string) error {
	data, err := e.schema.EncodeString(str)
	if err != nil {
		return err
	}

	return e.write(data)
}

func (e *Encoder) write(data []byte) error {
	_, err := e.w.Write(data)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Decoder reads fixed size encoded values from a stream.
type Decoder struct {
	schema Schema
	r      io.Reader
	buf    []byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(schema Schema, r io.Reader) *Decoder {
	return &Decoder{
		schema: schema,
		r:      r,
		buf:    make([]byte, schema.Format.Size),
	}
}

// Next reads the next encoded value. It returns io.EOF at a clean end of
// the stream. A special value is returned as the SpecialValueError from
// Decode along with the raw bytes (see Classify); reading may continue.
func (d *Decoder) Next() (v Value, raw []byte, err error) {
	_, err = io.ReadFull(d.r, d.buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return v, nil, io.EOF
		}

		return v, nil, Error.Wrap(err)
	}

	raw = append([]byte(nil), d.buf...)

	v, err = d.schema.Decode(raw)

	return v, raw, err
}
