package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/calebcase/hostdata"
	"github.com/calebcase/hostdata/arabic"
	"github.com/calebcase/hostdata/bidi"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

type bidiOptions struct {
	src         string
	dst         string
	arabic      string
	charset     string
	placeholder string
	profile     string
	name        string
}

func newBidiCmd() *cobra.Command {
	var opts bidiOptions

	cmd := &cobra.Command{
		Use:   "bidi [text]",
		Short: "`bidi` reorders and shapes bidirectional text",
		Long:  "`bidi` reorders and shapes bidirectional text. Text is read from stdin when not given and each line is converted separately.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBidi(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.src, "src", "implicit:ltr", "source flags, e.g. visual:rtl:swap")
	cmd.Flags().StringVar(&opts.dst, "dst", "visual:ltr", "destination flags, e.g. implicit:ltr:national")
	cmd.Flags().StringVar(&opts.arabic, "arabic", "", "Arabic shaping options, e.g. lamalef=auto,tashkeel=keep")
	cmd.Flags().StringVar(&opts.charset, "charset", "utf-8", "charset of input and output ("+strings.Join(charsetNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.placeholder, "placeholder", "", "character written for directional marks, e.g. U+0020")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "YAML file of named profiles")
	cmd.Flags().StringVar(&opts.name, "name", "default", "profile to use from --profile")

	return cmd
}

// applyProfile fills the settings that were not given on the command line
// from the selected profile.
func (o *bidiOptions) applyProfile(cmd *cobra.Command) error {
	if o.profile == "" {
		return nil
	}

	p, err := loadProfile(o.profile, o.name)
	if err != nil {
		return err
	}

	set := func(flag string, dst *string, v string) {
		if v != "" && !cmd.Flags().Changed(flag) {
			*dst = v
		}
	}

	set("src", &o.src, p.Src)
	set("dst", &o.dst, p.Dst)
	set("arabic", &o.arabic, p.Arabic)
	set("charset", &o.charset, p.Charset)
	set("placeholder", &o.placeholder, p.Placeholder)

	log.WithFields(log.Fields{
		"profile": o.name,
		"path":    o.profile,
	}).Debug("loaded profile")

	return nil
}

// parsePlaceholder accepts a single character or a U+XXXX code point. The
// empty string selects the engine default.
func parsePlaceholder(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}

	if strings.HasPrefix(strings.ToUpper(s), "U+") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, Error.New("invalid placeholder %q: %v", s, err)
		}

		return rune(v), nil
	}

	rs := []rune(s)
	if len(rs) != 1 {
		return 0, Error.New("invalid placeholder %q: want one character", s)
	}

	return rs[0], nil
}

func runBidi(cmd *cobra.Command, opts bidiOptions, args []string) error {
	err := opts.applyProfile(cmd)
	if err != nil {
		return err
	}

	src, err := bidi.ParseFlags(opts.src)
	if err != nil {
		return err
	}

	dst, err := bidi.ParseFlags(opts.dst)
	if err != nil {
		return err
	}

	shaping, err := arabic.ParseOptions(opts.arabic)
	if err != nil {
		return err
	}

	placeholder, err := parsePlaceholder(opts.placeholder)
	if err != nil {
		return err
	}

	enc, err := lookupCharset(opts.charset)
	if err != nil {
		return err
	}

	var input string

	if len(args) == 1 {
		input = args[0] + "\n"
	} else {
		data, err := io.ReadAll(transform.NewReader(cmd.InOrStdin(), enc.NewDecoder()))
		if err != nil {
			return Error.Wrap(err)
		}

		input = string(data)
	}

	log.WithFields(log.Fields{
		"src":     src.String(),
		"dst":     dst.String(),
		"arabic":  shaping.String(),
		"charset": opts.charset,
	}).Debug("converting")

	topts := hostdata.Options{
		Engine: bidi.Engine{Placeholder: placeholder},
		Arabic: shaping,
	}

	w := transform.NewWriter(cmd.OutOrStdout(), encoding.ReplaceUnsupported(enc.NewEncoder()))

	for i, line := range strings.SplitAfter(input, "\n") {
		text := strings.TrimRight(line, "\r\n")

		out, maps, err := convertLine(text, src, dst, topts)
		if err != nil {
			log.WithField("line", i+1).WithError(err).Error("conversion failed")

			return err
		}

		log.WithFields(log.Fields{
			"line":   i + 1,
			"levels": maps.Levels,
		}).Trace("converted")

		_, err = io.WriteString(w, out+line[len(text):])
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return Error.Wrap(w.Close())
}

func convertLine(line string, src, dst bidi.Flags, opts hostdata.Options) (string, *bidi.Maps, error) {
	in := bidi.NewText(line, src)

	// Deshaping expands each Lam-Alef ligature into at most two characters.
	out := bidi.NewBuffer(2*in.Count, dst)

	maps, err := hostdata.Transform(in, out, opts)
	if err != nil {
		return "", nil, err
	}

	return out.String(), maps, nil
}
