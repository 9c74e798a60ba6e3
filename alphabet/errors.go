// SPDX-License-Identifier: MIT
// Package: alphabet
//
// errors.go — sentinel errors for the alphabet package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining messages.

package alphabet

import "errors"

// ErrUnknownEncoding indicates the encoding name is not a registered IANA name,
// or names an encoding golang.org/x/text does not implement.
var ErrUnknownEncoding = errors.New("alphabet: unknown encoding")

// ErrUnsupportedEncoding indicates a known encoding that is not single-byte
// (UTF-8, UTF-16, Shift_JIS, …). Alphabets enumerate at most 256 code points.
var ErrUnsupportedEncoding = errors.New("alphabet: unsupported multi-byte encoding")

// ErrBadExpression indicates a class expression that does not compile.
var ErrBadExpression = errors.New("alphabet: invalid class expression")

// ErrUnclassified indicates IsAllowed was asked about a character that matched
// neither the good nor the bad expression, or is outside the repertoire.
var ErrUnclassified = errors.New("alphabet: character not classified")

// ErrEmptyName indicates a Registry operation with an empty alphabet name.
var ErrEmptyName = errors.New("alphabet: empty alphabet name")

// ErrDuplicateAlphabet indicates Register was called twice for the same name.
var ErrDuplicateAlphabet = errors.New("alphabet: alphabet already registered")

// ErrAlphabetNotFound indicates Lookup of a name that was never registered.
var ErrAlphabetNotFound = errors.New("alphabet: alphabet not found")

// ErrNilAlphabet indicates a nil *Alphabet was passed where one is required.
var ErrNilAlphabet = errors.New("alphabet: alphabet is nil")
