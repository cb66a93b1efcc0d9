package main

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charsets are the single byte code pages accepted for text input and
// output, besides UTF-8.
var charsets = map[string]*charmap.Charmap{
	"iso-8859-6":   charmap.ISO8859_6,
	"windows-1256": charmap.Windows1256,
	"iso-8859-8":   charmap.ISO8859_8,
	"windows-1255": charmap.Windows1255,
	"cp037":        charmap.CodePage037,
	"cp1047":       charmap.CodePage1047,
}

func charsetNames() []string {
	names := []string{"utf-8"}
	for name := range charsets {
		names = append(names, name)
	}

	sort.Strings(names[1:])

	return names
}

// lookupCharset returns the encoding for name. Characters the encoding
// cannot represent are replaced when writing.
func lookupCharset(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	}

	cm, ok := charsets[name]
	if !ok {
		return nil, Error.New("unknown charset %q (known: %s)", name, strings.Join(charsetNames(), ", "))
	}

	return cm, nil
}
