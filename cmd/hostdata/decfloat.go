package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calebcase/hostdata/decfloat"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type decfloatOptions struct {
	precision int
	rounding  string
	binary    bool
	decimal   bool
}

func (o decfloatOptions) schema() (s decfloat.Schema, err error) {
	f, err := decfloat.FormatFor(o.precision)
	if err != nil {
		return s, err
	}

	mode, err := decfloat.ParseRoundingMode(o.rounding)
	if err != nil {
		return s, err
	}

	s = decfloat.NewSchema(f)
	s.Rounding = mode

	return s, nil
}

func newDecfloatCmd() *cobra.Command {
	var opts decfloatOptions

	cmd := &cobra.Command{
		Use:   "decfloat",
		Short: "`decfloat` encodes and decodes DECFLOAT16 and DECFLOAT34 values",
		Long:  "`decfloat` encodes and decodes DECFLOAT16 and DECFLOAT34 values",
	}

	cmd.PersistentFlags().IntVarP(&opts.precision, "precision", "p", 16, "digits of precision (16 or 34)")
	cmd.PersistentFlags().StringVarP(&opts.rounding, "rounding", "r", decfloat.HalfEven.String(), "rounding mode for excess digits")
	cmd.PersistentFlags().BoolVarP(&opts.binary, "binary", "b", false, "read or write raw encodings instead of hex lines")

	encode := &cobra.Command{
		Use:   "encode [value...]",
		Short: "`encode` writes the encoding of each value, one hex line per value",
		Long:  "`encode` writes the encoding of each value, one hex line per value. Values are read one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, args)
		},
	}

	decode := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "`decode` writes the value of each encoding",
		Long:  "`decode` writes the value of each encoding. Encodings are read one hex line at a time from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args)
		},
	}

	decode.Flags().BoolVarP(&opts.decimal, "decimal", "d", false, "write plain decimal notation")

	cmd.AddCommand(encode, decode)

	return cmd
}

// lines returns args, or the non-empty lines of r when args is empty.
func lines(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var out []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			out = append(out, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, Error.Wrap(err)
	}

	return out, nil
}

func runEncode(cmd *cobra.Command, opts decfloatOptions, args []string) error {
	schema, err := opts.schema()
	if err != nil {
		return err
	}

	values, err := lines(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if opts.binary {
		enc := decfloat.NewEncoder(schema, w)

		for _, s := range values {
			err = enc.EncodeString(s)
			if err != nil {
				log.WithField("value", s).WithError(err).Error("encode failed")

				return err
			}
		}

		return nil
	}

	for _, s := range values {
		data, err := schema.EncodeString(s)
		if err != nil {
			log.WithFields(log.Fields{
				"value":  s,
				"format": schema.Format.Name,
			}).WithError(err).Error("encode failed")

			return err
		}

		log.WithFields(log.Fields{
			"value":  s,
			"format": schema.Format.Name,
			"hex":    hex.EncodeToString(data),
		}).Debug("encoded")

		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

func runDecode(cmd *cobra.Command, opts decfloatOptions, args []string) error {
	schema, err := opts.schema()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if opts.binary {
		dec := decfloat.NewDecoder(schema, cmd.InOrStdin())

		for {
			v, raw, err := dec.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}

			err = printValue(w, schema, opts, v, raw, err)
			if err != nil {
				return err
			}
		}
	}

	encodings, err := lines(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	for _, s := range encodings {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return Error.New("invalid hex %q: %v", s, err)
		}

		v, err := schema.Decode(raw)

		err = printValue(w, schema, opts, v, raw, err)
		if err != nil {
			return err
		}
	}

	return nil
}

// printValue writes the result of one decode. Special values are written
// by name.
func printValue(w io.Writer, schema decfloat.Schema, opts decfloatOptions, v decfloat.Value, raw []byte, err error) error {
	var out string

	switch {
	case decfloat.SpecialValueError.Has(err):
		sv, _ := decfloat.Classify(raw, schema.Format)
		out = sv.String()
	case err != nil:
		log.WithField("hex", hex.EncodeToString(raw)).WithError(err).Error("decode failed")

		return err
	case opts.decimal:
		out = v.Decimal().String()
		if v.Negative && v.IsZero() {
			out = "-" + out
		}
	default:
		out = v.String()
	}

	log.WithFields(log.Fields{
		"hex":   hex.EncodeToString(raw),
		"value": out,
	}).Debug("decoded")

	_, err = fmt.Fprintln(w, out)

	return Error.Wrap(err)
}
