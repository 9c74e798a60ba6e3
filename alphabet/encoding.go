package alphabet

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	asciiName  = "US-ASCII"
	asciiLimit = 0x80  // first code point outside US-ASCII
	byteLimit  = 0x100 // number of single-byte code points
)

// asciiAliases are the IANA aliases of US-ASCII; ianaindex does not expose a
// charmap for them, so they are enumerated directly.
var asciiAliases = map[string]struct{}{
	"us-ascii":         {},
	"ascii":            {},
	"us":               {},
	"iso646-us":        {},
	"iso_646.irv:1991": {},
	"ansi_x3.4-1968":   {},
	"ansi_x3.4-1986":   {},
	"cp367":            {},
	"ibm367":           {},
	"csascii":          {},
}

// repertoire returns every character the named single-byte encoding can
// represent, in byte order, together with the canonical encoding name.
func repertoire(name string) ([]rune, string, error) {
	if _, ok := asciiAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return asciiRepertoire(), asciiName, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, "", fmt.Errorf("encoding %q: %w", name, ErrUnknownEncoding)
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	if canonical == asciiName {
		return asciiRepertoire(), asciiName, nil
	}

	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, "", fmt.Errorf("encoding %q: %w", name, ErrUnsupportedEncoding)
	}

	seen := make(map[rune]struct{}, byteLimit)
	out := make([]rune, 0, byteLimit)
	for b := 0; b < byteLimit; b++ {
		r := cm.DecodeByte(byte(b))
		if r == utf8.RuneError {
			// undefined position in this code page
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out, canonical, nil
}

func asciiRepertoire() []rune {
	out := make([]rune, asciiLimit)
	for i := range out {
		out[i] = rune(i)
	}

	return out
}
