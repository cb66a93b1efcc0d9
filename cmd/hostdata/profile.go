package main

import (
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v2"
)

// Profile is a named set of bidi command settings. Empty fields leave the
// command line value in place.
//
//	profiles:
//	  host-arabic:
//	    src: visual:ltr
//	    dst: implicit:rtl
//	    arabic: lamalef=auto
//	    charset: cp037
type Profile struct {
	Src         string `yaml:"src"`
	Dst         string `yaml:"dst"`
	Arabic      string `yaml:"arabic"`
	Charset     string `yaml:"charset"`
	Placeholder string `yaml:"placeholder"`
}

type profiles struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// readProfile decodes a profiles document and returns the named profile.
func readProfile(r io.Reader, name string) (p Profile, err error) {
	var doc profiles

	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	err = dec.Decode(&doc)
	if err != nil {
		return p, Error.Wrap(err)
	}

	p, ok := doc.Profiles[name]
	if !ok {
		return p, Error.New("unknown profile %q", name)
	}

	return p, nil
}

func loadProfile(path, name string) (p Profile, err error) {
	f, err := os.Open(path)
	if err != nil {
		return p, Error.Wrap(err)
	}
	defer func() { err = Error.Wrap(errs.Combine(err, f.Close())) }()

	return readProfile(f, name)
}
