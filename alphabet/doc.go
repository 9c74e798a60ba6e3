// Package alphabet defines the character repertoire a generator draws from.
//
// An Alphabet enumerates every character a single-byte encoding can represent
// and partitions them with two class expressions:
//
//   - badExpr  — characters that match are forbidden;
//   - goodExpr — remaining characters that match are allowed.
//
// Characters matching neither expression stay unclassified: they belong to the
// repertoire but IsAllowed reports ErrUnclassified for them.
//
// Class expressions are compiled by Matcher, which full-matches a single
// character against a Perl/.NET compatible expression (github.com/dlclark/regexp2):
// bracket classes with ranges and negation, class subtraction, \p{Name}
// categories and the usual escapes.
//
// Encodings are resolved by IANA name through golang.org/x/text. Only single-byte
// charmaps (ISO-8859-x, Windows-125x, KOI8, IBM code pages, …) and US-ASCII are
// accepted; anything multi-byte fails with ErrUnsupportedEncoding.
//
// Alphabets are immutable after New and are safe to share between goroutines.
// Inverse returns a fresh Alphabet with the allowed and forbidden sets swapped.
//
// Registry is an explicit, caller-owned name → *Alphabet map. There is no
// process-wide registry; pass the Registry to whatever needs to resolve names.
//
// Example:
//
//	a, err := alphabet.New("ISO-8859-1", `[A-Za-z0-9-]`, `[^A-Za-z0-9-]`)
//	if err != nil {
//		return err
//	}
//	reg := alphabet.NewRegistry()
//	_ = reg.Register("ids", a)
package alphabet
